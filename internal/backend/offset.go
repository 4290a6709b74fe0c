package backend

import "fmt"

// Offset is an absolute position within a partition.
type Offset struct {
	value int64
}

func AbsoluteOffset(offset int64) (Offset, error) {
	if offset < 0 {
		return Offset{}, fmt.Errorf("%w: absolute offset must be non-negative, got %d", ErrInvalidOffset, offset)
	}
	return Offset{value: offset}, nil
}

func (o Offset) Value() int64 {
	return o.value
}

func (o Offset) String() string {
	return fmt.Sprintf("absolute(%d)", o.value)
}
