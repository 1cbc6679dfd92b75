package dm

import (
	"errors"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrZeroVariance     = errors.New("long-run variance of the loss differential is zero")
	ErrNegativeVariance = errors.New("long-run variance of the loss differential is negative")
)

// ErrorKind tags the failure classes of Test so callers can switch on them.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidParameter
	KindZeroVariance
	KindNegativeVariance
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindZeroVariance:
		return "zero_variance"
	case KindNegativeVariance:
		return "negative_variance"
	default:
		return "unknown"
	}
}

func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidParameter):
		return KindInvalidParameter
	case errors.Is(err, ErrZeroVariance):
		return KindZeroVariance
	case errors.Is(err, ErrNegativeVariance):
		return KindNegativeVariance
	default:
		return KindUnknown
	}
}
