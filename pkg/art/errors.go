package art

import (
	"fmt"

	"github.com/flier/artindex/pkg/xerrors"
)

// OutOfMemoryError is returned by Insert when a configured memory limit
// would be exceeded by the pending allocation. The tree is left unchanged
// and any partial accounting charge is reversed.
type OutOfMemoryError struct {
	// Requested is the number of additional bytes the operation needed.
	Requested int
	// Limit is the configured memory_limit that was in effect.
	Limit uint64
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("art: out of memory: requesting %d bytes would exceed limit %d", e.Requested, e.Limit)
}

// ValueTooLongError is returned by Insert when a value exceeds the maximum
// encodable length (2^32 - 1 bytes). The tree is left unchanged.
type ValueTooLongError struct {
	// Len is the offending value's length.
	Len int
}

func (e *ValueTooLongError) Error() string {
	return fmt.Sprintf("art: value too long: %d bytes exceeds %d", e.Len, maxValueLen)
}

// IsOutOfMemory reports whether err is (or wraps) an *OutOfMemoryError.
func IsOutOfMemory(err error) bool {
	_, ok := xerrors.AsA[*OutOfMemoryError](err)
	return ok
}

// IsValueTooLong reports whether err is (or wraps) a *ValueTooLongError.
func IsValueTooLong(err error) bool {
	_, ok := xerrors.AsA[*ValueTooLongError](err)
	return ok
}
