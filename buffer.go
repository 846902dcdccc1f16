package pointview

// DefaultCapacity is the number of points kept when no capacity is given.
const DefaultCapacity = 256

// Buffer holds the most recent points in insertion order.
//
// A Buffer always has exactly Cap() slots. It starts with every slot empty;
// each Append drops the front slot and adds the point at the back, so the
// oldest point is evicted once Cap() points have been appended.
//
// Buffer is not safe for concurrent use. The Loop is its only writer.
type Buffer struct {
	slots []Slot
	head  int // index of the oldest slot
	n     int // number of valid slots
}

// NewBuffer creates a buffer with capacity slots, all empty.
// A capacity below 1 is treated as 1.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{slots: make([]Slot, capacity)}
}

// Cap returns the fixed number of slots.
func (b *Buffer) Cap() int {
	return len(b.slots)
}

// Len returns the number of slots holding a point.
func (b *Buffer) Len() int {
	return b.n
}

// Append adds p as the newest point, evicting the oldest slot.
func (b *Buffer) Append(p Point) {
	if !b.slots[b.head].Valid {
		b.n++
	}
	// The slot at head is the oldest; overwriting it and advancing head
	// removes the front and appends at the back in one step.
	b.slots[b.head] = Slot{Point: p, Valid: true}
	b.head = (b.head + 1) % len(b.slots)
}

// At returns slot i, where 0 is the oldest.
func (b *Buffer) At(i int) Slot {
	return b.slots[(b.head+i)%len(b.slots)]
}

// Slots returns a copy of all slots, oldest first.
func (b *Buffer) Slots() []Slot {
	return b.AppendSlots(make([]Slot, 0, len(b.slots)))
}

// AppendSlots appends all slots, oldest first, to dst and returns the
// extended slice. It lets callers reuse a snapshot buffer between frames.
func (b *Buffer) AppendSlots(dst []Slot) []Slot {
	dst = append(dst, b.slots[b.head:]...)
	return append(dst, b.slots[:b.head]...)
}

// Points returns the valid points, oldest first.
func (b *Buffer) Points() []Point {
	pts := make([]Point, 0, b.n)
	for i := range b.slots {
		if s := b.At(i); s.Valid {
			pts = append(pts, s.Point)
		}
	}
	return pts
}
