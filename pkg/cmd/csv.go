package cmd

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/c9s/tago/pkg/fixedpoint"
	"github.com/c9s/tago/pkg/types"
)

// loadCandlesCSV reads rows of "time,price,volume" (millisecond timestamp;
// a header row is skipped) into a bounded candle series.
func loadCandlesCSV(path string, capacity int) (*types.CandleSeries[fixedpoint.Value], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not open input file %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 3
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "can not parse csv file %s", path)
	}

	series, err := types.NewCandleSeries[fixedpoint.Value](capacity)
	if err != nil {
		return nil, err
	}

	for i, record := range records {
		ts, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, errors.Wrapf(err, "invalid timestamp at row %d", i+1)
		}

		price, err := fixedpoint.NewFromString(record[1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid price at row %d", i+1)
		}

		volume, err := fixedpoint.NewFromString(record[2])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid volume at row %d", i+1)
		}

		series.Push(price, ts, volume)
	}

	return series, nil
}
