package expand

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid expand config")

// Config holds the thresholds and sizes a Controller works with. Lengths are
// in pixels of the event coordinate space.
type Config struct {
	// SmallSize and LargeSize bound every height the controller applies.
	SmallSize float64 `env:"EXPAND_SMALL_SIZE" envDefault:"64"`
	LargeSize float64 `env:"EXPAND_LARGE_SIZE" envDefault:"400"`

	// StretchInterval is the overstretch allowance expressed in SmallSize
	// units; see MaximumStretch.
	StretchInterval float64 `env:"EXPAND_STRETCH_INTERVAL" envDefault:"2"`

	// PopThreshold is the blinds drag distance before the item visibly moves.
	PopThreshold float64       `env:"EXPAND_POP_THRESHOLD" envDefault:"32"`
	PopDuration  time.Duration `env:"EXPAND_POP_DURATION"  envDefault:"10ms"`

	// PullMinXSpan is the horizontal finger separation that turns a
	// two-finger vertical drag into a pull gesture.
	PullMinXSpan float64 `env:"EXPAND_PULL_MIN_X_SPAN" envDefault:"25"`

	TouchSlop      float64       `env:"EXPAND_TOUCH_SLOP"       envDefault:"8"`
	SettleDuration time.Duration `env:"EXPAND_SETTLE_DURATION"  envDefault:"250ms"`

	// UseDrag and UseSpan switch the two fused channels on and off. At least
	// one should stay on.
	UseDrag bool `env:"EXPAND_USE_DRAG" envDefault:"true"`
	UseSpan bool `env:"EXPAND_USE_SPAN" envDefault:"true"`

	// ScaleMinSpan is the smallest finger span the pinch detector reports.
	ScaleMinSpan float64 `env:"EXPAND_SCALE_MIN_SPAN" envDefault:"27"`

	HapticMagnitude float64 `env:"EXPAND_HAPTIC_MAGNITUDE" envDefault:"0.5"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		SmallSize:       64,
		LargeSize:       400,
		StretchInterval: 2,
		PopThreshold:    32,
		PopDuration:     10 * time.Millisecond,
		PullMinXSpan:    25,
		TouchSlop:       8,
		SettleDuration:  250 * time.Millisecond,
		UseDrag:         true,
		UseSpan:         true,
		ScaleMinSpan:    27,
		HapticMagnitude: 0.5,
	}
}

// LoadConfigFromEnv reads EXPAND_* environment variables over the defaults and
// validates the result.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MaximumStretch is how far past SmallSize an item may be overstretched. The
// controller clamps to LargeSize and never applies it; hosts use it to size
// rows, as the expandlist example does.
func (c Config) MaximumStretch() float64 {
	return c.SmallSize * c.StretchInterval
}

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	switch {
	case c.SmallSize <= 0:
		return fmt.Errorf("%w: small size %v must be positive", ErrInvalidConfig, c.SmallSize)
	case c.LargeSize < c.SmallSize:
		return fmt.Errorf("%w: large size %v below small size %v", ErrInvalidConfig, c.LargeSize, c.SmallSize)
	case c.PopThreshold < 0:
		return fmt.Errorf("%w: negative pop threshold", ErrInvalidConfig)
	case c.PullMinXSpan < 0:
		return fmt.Errorf("%w: negative pull span", ErrInvalidConfig)
	case c.TouchSlop < 0:
		return fmt.Errorf("%w: negative touch slop", ErrInvalidConfig)
	case c.SettleDuration <= 0:
		return fmt.Errorf("%w: settle duration must be positive", ErrInvalidConfig)
	case !c.UseDrag && !c.UseSpan:
		return fmt.Errorf("%w: both drag and span channels disabled", ErrInvalidConfig)
	}
	return nil
}
