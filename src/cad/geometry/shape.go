package geometry

import "fmt"

const DefaultShapeName = "Default Shape"

// Shape carries the naming and visibility state shared by drawable objects.
// Copying a Shape copies its id; only NewShape allocates a fresh one.
type Shape struct {
	name    string
	id      string
	visible bool
}

// NewShape returns a visible shape named name, with an id drawn from ids.
func NewShape(ids IDAllocator, name string) Shape {
	return Shape{
		name:    name,
		id:      ids.NextID(),
		visible: true,
	}
}

// NewDefaultShape is NewShape with DefaultShapeName.
func NewDefaultShape(ids IDAllocator) Shape {
	return NewShape(ids, DefaultShapeName)
}

func (s Shape) Name() string {
	return s.name
}

func (s *Shape) SetName(name string) {
	s.name = name
}

func (s Shape) ID() string {
	return s.id
}

func (s Shape) Visible() bool {
	return s.visible
}

func (s *Shape) SetVisible(visible bool) {
	s.visible = visible
}

func (s *Shape) Show() {
	s.visible = true
}

func (s *Shape) Hide() {
	s.visible = false
}

func (s Shape) Description() string {
	return fmt.Sprintf("Shape '%s' (ID: %s, Visible: %t)", s.name, s.id, s.visible)
}

// CopyWithName returns a copy of s renamed to name. The id is kept.
func (s Shape) CopyWithName(name string) Shape {
	cpy := s
	cpy.name = name
	return cpy
}

func (s Shape) Equal(other Shape) bool {
	return s == other
}

func (s Shape) String() string {
	if s.visible {
		return fmt.Sprintf("Shape[name: '%s', id: %s]", s.name, s.id)
	}
	return fmt.Sprintf("Shape[name: '%s', id: %s, HIDDEN]", s.name, s.id)
}
