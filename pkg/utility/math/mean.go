package math

import (
	"golang.org/x/exp/constraints"
)

func Mean[T constraints.Float](data []T) T {
	if len(data) == 0 {
		return 0
	}
	var sum T
	for _, r := range data {
		sum += r
	}
	return sum / T(len(data))
}
