package containers

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrIndexOutOfRange is wrapped by every error the strict accessors return.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports a strict access outside [0, Size).
type IndexError struct {
	Index int
	Size  int
	Frame string
}

func (e *IndexError) Error() string {
	if e.Frame == "" {
		return fmt.Sprintf("containers: %v [%d] with size %d", ErrIndexOutOfRange, e.Index, e.Size)
	}
	return fmt.Sprintf("containers: %v [%d] with size %d on %s", ErrIndexOutOfRange, e.Index, e.Size, e.Frame)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// newIndexError records the frame of whoever called the strict accessor,
// skip frames above newIndexError itself.
func newIndexError(index, size, skip int) error {
	err := &IndexError{Index: index, Size: size}
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return err
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	err.Frame = fmt.Sprintf("%s (%s:%d)", name, file, line)
	return err
}

// IsIndexError reports whether err is an out-of-range error and, if so,
// returns the index and size it carries.
func IsIndexError(err error) (index, size int, ok bool) {
	var ie *IndexError
	if !errors.As(err, &ie) {
		return 0, 0, false
	}
	return ie.Index, ie.Size, true
}
