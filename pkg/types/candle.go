package types

import (
	"fmt"

	"github.com/c9s/tago/pkg/num"
)

// Candle is a single observation. Time is a caller-supplied millisecond
// timestamp; monotonicity is the caller's responsibility and is not
// enforced here.
type Candle[T num.Value[T]] struct {
	Price  T
	Time   int64
	Volume T
}

func (c Candle[T]) String() string {
	return fmt.Sprintf("Candle[P:%.4f T:%d V:%.2f]", c.Price.Float64(), c.Time, c.Volume.Float64())
}
