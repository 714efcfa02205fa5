package indicator

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned when a config fails
	// construction-time validation.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInsufficientData is returned when an indicator has fewer
	// observations than its warm-up window needs. No partial output is
	// ever produced.
	ErrInsufficientData = errors.New("insufficient data")
)

// SmoothingType selects the running-average formula applied after the
// seed window.
type SmoothingType string

const (
	// SmoothingWilder updates avg = (avg*(period-1) + x) / period.
	SmoothingWilder SmoothingType = "wilder"

	// SmoothingEMA updates avg = alpha*x + (1-alpha)*avg with
	// alpha = 2/(period+1).
	SmoothingEMA SmoothingType = "ema"

	// SmoothingSMA is the unweighted mean over the trailing period window.
	SmoothingSMA SmoothingType = "sma"
)

// MomentumConfig carries the shared parameters of the momentum and
// volatility indicators. Construct it through NewMomentumConfig; invalid
// parameters fail there instead of being clamped later.
type MomentumConfig struct {
	// Period is the smoothing window length.
	Period int `yaml:"period"`

	// MaxHistory bounds the trailing computation window; derived
	// sequences (gains, losses, true ranges) are trimmed to their last
	// MaxHistory entries before smoothing.
	MaxHistory int `yaml:"maxHistory"`

	Smoothing SmoothingType `yaml:"smoothing"`
}

// RsiConfig is the RSI-specific alias of MomentumConfig.
type RsiConfig = MomentumConfig

// NewMomentumConfig validates period >= 1, maxHistory >= period and a known
// smoothing type.
func NewMomentumConfig(period, maxHistory int, smoothing SmoothingType) (MomentumConfig, error) {
	c := MomentumConfig{Period: period, MaxHistory: maxHistory, Smoothing: smoothing}
	if err := c.Validate(); err != nil {
		return MomentumConfig{}, err
	}
	return c, nil
}

// DefaultMomentumConfig returns the conventional 14-period Wilder setup
// with ten periods of history.
func DefaultMomentumConfig() MomentumConfig {
	return MomentumConfig{
		Period:     14,
		MaxHistory: 140,
		Smoothing:  SmoothingWilder,
	}
}

func (c MomentumConfig) Validate() error {
	if c.Period < 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "period must be >= 1, got %d", c.Period)
	}
	if c.MaxHistory < c.Period {
		return errors.Wrapf(ErrInvalidConfiguration, "max history %d must be >= period %d", c.MaxHistory, c.Period)
	}

	switch c.Smoothing {
	case SmoothingWilder, SmoothingEMA, SmoothingSMA:
	default:
		return errors.Wrapf(ErrInvalidConfiguration, "unknown smoothing type %q", c.Smoothing)
	}

	return nil
}
