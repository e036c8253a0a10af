package entity

// Pet is the on-screen sprite: its window position, its size (taken from the
// decoded frames) and the drag bookkeeping.
type Pet struct {
	X, Y   int
	Width  int
	Height int

	Dragging   bool
	DragStartX int // cursor offset inside the window at press time
	DragStartY int
}
