package resolver

import (
	"errors"
	"fmt"
)

// MaxRepeatLen bounds the size of any value built by repetition: bytes for
// strings, elements for sequences.
const MaxRepeatLen = 1 << 24

// ErrRepeatTooLarge is wrapped by RepeatLen when a result would exceed
// MaxRepeatLen.
var ErrRepeatTooLarge = errors.New("repeated value is too large")

// RepeatLen returns size*n, the length of a value of length size repeated n
// times. A non-positive n yields 0. The product is checked by division so
// it cannot overflow.
func RepeatLen(size, n int) (int, error) {
	if n <= 0 || size <= 0 {
		return 0, nil
	}
	if n > MaxRepeatLen/size {
		return 0, fmt.Errorf("%w: %d repeated %d times exceeds %d", ErrRepeatTooLarge, size, n, MaxRepeatLen)
	}
	return size * n, nil
}
