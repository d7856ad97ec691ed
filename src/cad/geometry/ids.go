package geometry

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"go.jetify.com/typeid/v2"
)

// IDAllocator hands out shape identifiers. Callers own the allocator and pass
// it to NewShape; nothing in this package keeps a process-wide counter.
type IDAllocator interface {
	NextID() string
}

// Counter allocates sequential decimal ids starting at 1.
// The zero value is ready to use and safe for concurrent use.
type Counter struct {
	last atomic.Uint32
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) NextID() string {
	return strconv.FormatUint(uint64(c.last.Add(1)), 10)
}

// Peek returns the id the next call to NextID will hand out.
func (c *Counter) Peek() uint32 {
	return c.last.Load() + 1
}

// Reset restarts the sequence at 1.
func (c *Counter) Reset() {
	c.last.Store(0)
}

const ShapeIDPrefix = "shape"

// TypeIDs allocates prefixed, sortable ids such as "shape_01h455vb4pex5vsknk084sn02q".
type TypeIDs struct {
	Prefix string
}

func NewTypeIDs() TypeIDs {
	return TypeIDs{Prefix: ShapeIDPrefix}
}

func (t TypeIDs) NextID() string {
	return typeid.MustGenerate(t.Prefix).String()
}

// ValidateTypeID checks that id parses as a typeid carrying expectedPrefix.
func ValidateTypeID(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}

// UUIDs allocates random version 4 UUIDs.
type UUIDs struct{}

func (UUIDs) NextID() string {
	return uuid.NewString()
}
