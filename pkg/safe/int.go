// Package safe provides checked conversions between Solana's unsigned counters
// and the signed integer columns used by SQL storage.
package safe

import (
	"fmt"
	"math"
)

// Int64 converts an unsigned value to int64, rejecting values above math.MaxInt64.
func Int64[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", uint64(v))
	}
	return int64(v), nil
}

// Uint64 converts a signed value to uint64, rejecting negatives.
func Uint64[T ~int | ~int8 | ~int16 | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", int64(v))
	}
	return uint64(v), nil
}

// OptionalInt64 converts a nullable unsigned value, keeping nil as nil.
func OptionalInt64(v *uint64) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	out, err := Int64(*v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
