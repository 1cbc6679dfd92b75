package dm

import (
	"github.com/peter-kozarec/forecasteval/pkg/utility/math/special"
	"go.uber.org/zap"
)

type options struct {
	loss             LossFunc
	horizon          int
	oneSided         bool
	harveyCorrection bool
	fraction         special.FractionConfig
	logger           *zap.Logger
}

// defaultOptions builds a fresh option set for every call.
func defaultOptions() options {
	return options{
		loss:             SquaredError,
		horizon:          1,
		oneSided:         false,
		harveyCorrection: true,
		fraction:         special.DefaultFractionConfig(),
		logger:           zap.NewNop(),
	}
}

type Option func(*options)

func WithLoss(loss LossFunc) Option {
	return func(o *options) {
		o.loss = loss
	}
}

func WithHorizon(h int) Option {
	return func(o *options) {
		o.horizon = h
	}
}

// WithOneSided tests against the alternative that the second forecast is more
// accurate; a negative statistic then yields a small p-value.
func WithOneSided(oneSided bool) Option {
	return func(o *options) {
		o.oneSided = oneSided
	}
}

func WithHarveyCorrection(enabled bool) Option {
	return func(o *options) {
		o.harveyCorrection = enabled
	}
}

func WithFractionConfig(cfg special.FractionConfig) Option {
	return func(o *options) {
		o.fraction = cfg
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
