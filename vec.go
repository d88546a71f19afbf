// package vec implements a growable vector data
// structure which supports:
//  1. amortized constant time append via power of two doubling
//  2. insertion and removal at arbitrary positions
//  3. user supplied element lifecycle callbacks
//  4. owning or shallow (borrowed) storage policies
package vec

import "fmt"

// GrowthFactor is how much the vector grows by in automatic
// reallocation (2 means double).
const GrowthFactor = 2

// Vector is an ordered, resizable sequence of owned element handles.
// Slots hold *T; a nil slot is the empty marker. Slots at index >=
// Size never reference a live payload.
type Vector[T any] struct {
	slots    []*T
	size     uint
	behavior Behavior[T]
}

// New returns an empty vector bound to the given behavior, sized at
// InitialCapacity.
func New[T any](b Behavior[T]) *Vector[T] {
	return NewWithConfig(b, Config{})
}

// NewWithConfig returns an empty vector bound to the given behavior.
// Nil behavior fields are backfilled with the shallow defaults.
func NewWithConfig[T any](b Behavior[T], c Config) *Vector[T] {
	var v Vector[T]
	if b.Copy == nil {
		b.Copy = shallowCopy[T]
	}
	if b.Destroy == nil {
		b.Destroy = noopDestroy[T]
	}
	if b.Default == nil {
		b.Default = nilDefault[T]
	}
	v.behavior = b
	v.slots = make([]*T, c.initialCapacity())
	return &v
}

// Size returns the number of elements currently held in the vector,
// which is not necessarily equal to its capacity.
func (v *Vector[T]) Size() uint {
	return v.size
}

// Capacity returns the number of allocated slots, always a power of
// GrowthFactor and always >= Size.
func (v *Vector[T]) Capacity() uint {
	return uint(len(v.slots))
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Reserve grows capacity to the smallest power of GrowthFactor >= n.
// Reservation never shrinks; if capacity is already sufficient this is
// a no-op. Size is unchanged.
func (v *Vector[T]) Reserve(n uint) {
	if n <= v.Capacity() {
		return
	}
	grown := make([]*T, nextCapacity(n))
	copy(grown, v.slots)
	v.slots = grown
}

// Resize sets the element count to n. Shrinking destroys and clears
// the tail. Growing appends default constructed elements which the
// vector owns; note the slots hold live defaults rather than empty
// markers.
func (v *Vector[T]) Resize(n uint) {
	if n > v.Capacity() {
		v.Reserve(n)
	}
	if n > v.size {
		for v.size < n {
			v.slots[v.size] = v.behavior.Default()
			v.size++
		}
	} else if n < v.size {
		for i := n; i < v.size; i++ {
			v.release(i)
		}
		v.size = n
	}
}

// PushBack appends an owned copy of element as the new last element.
// A nil element is stored as the empty marker without invoking the
// copy callback.
func (v *Vector[T]) PushBack(element *T) {
	if v.size == v.Capacity() {
		v.Reserve(v.Capacity() + 1)
	}
	v.slots[v.size] = v.adopt(element)
	v.size++
}

// PopBack destroys and clears the last element. Calling PopBack on an
// empty vector is a caller bug and panics.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.size--
	v.release(v.size)
}

// Insert places an owned copy of element at position, shifting
// elements at [position, Size) one slot toward higher index. The
// relative order of all other elements is preserved. Position may be
// at most Size; anything past that is a caller bug and panics.
func (v *Vector[T]) Insert(position uint, element *T) {
	if position > v.size {
		panic(fmt.Sprintf("vec: Insert position %d beyond size %d", position, v.size))
	}
	if v.size == v.Capacity() {
		v.Reserve(v.Capacity() + 1)
	}
	copy(v.slots[position+1:v.size+1], v.slots[position:v.size])
	v.slots[position] = v.adopt(element)
	v.size++
}

// Erase destroys the element at position and shifts elements at
// [position+1, Size) one slot toward lower index. Positions at or
// beyond Size are silently ignored.
func (v *Vector[T]) Erase(position uint) {
	if position >= v.size {
		return
	}
	v.release(position)
	copy(v.slots[position:v.size-1], v.slots[position+1:v.size])
	v.size--
	v.slots[v.size] = nil
}

// Clear destroys and clears every element. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	for i := uint(0); i < v.size; i++ {
		v.release(i)
	}
	v.size = 0
}

// Get returns the owned element at position without copying. Reading
// past Size is a caller bug and panics.
func (v *Vector[T]) Get(position uint) *T {
	if position >= v.size {
		panic(fmt.Sprintf("vec: Get position %d beyond size %d", position, v.size))
	}
	return v.slots[position]
}

// Set overwrites the element at position with an owned copy of
// element, destroying the previous occupant, or appends when position
// equals Size. Positions beyond Size are silently ignored; this
// diverges from the fail fast policy of Get and is kept for
// overwrite-or-append compatibility.
func (v *Vector[T]) Set(position uint, element *T) {
	if position > v.size {
		return
	}
	if position < v.size {
		v.release(position)
		v.slots[position] = v.adopt(element)
		return
	}
	if position == v.Capacity() {
		v.Reserve(v.Capacity() + 1)
	}
	v.slots[position] = v.adopt(element)
	v.size++
}

// At returns an addressable handle to the slot at position for in
// place access. Swapping the stored element through the handle hands
// lifecycle responsibility for the previous occupant to the caller.
func (v *Vector[T]) At(position uint) **T {
	return &v.slots[position]
}

// Front returns an addressable handle to the first slot.
func (v *Vector[T]) Front() **T {
	return &v.slots[0]
}

// Back returns an addressable handle to the last occupied slot.
// Calling Back on an empty vector is a caller bug and panics.
func (v *Vector[T]) Back() **T {
	if v.size == 0 {
		panic("vec: Back on empty vector")
	}
	return &v.slots[v.size-1]
}

// Slots returns the half open window [begin, end) over the occupied
// slots, bounded by Size at call time. The window is a live view;
// operations which reallocate or shift elements invalidate it.
func (v *Vector[T]) Slots() []*T {
	return v.slots[:v.size]
}

// Each calls cb once per occupied slot in index order. Returning
// false from cb stops the walk early.
func (v *Vector[T]) Each(cb func(ix uint, el *T) bool) {
	for i := uint(0); i < v.size; i++ {
		if !cb(i, v.slots[i]) {
			return
		}
	}
}

// Destroy releases every owned payload in [0, Capacity), frees the
// slot storage and invalidates the vector. Must be called at most
// once; calling any other operation afterward is undefined.
func (v *Vector[T]) Destroy() {
	for i := uint(0); i < uint(len(v.slots)); i++ {
		v.release(i)
	}
	v.slots = nil
	v.size = 0
}

// adopt produces the owned handle for an incoming element. Nil stays
// the empty marker without invoking the copy callback.
func (v *Vector[T]) adopt(element *T) *T {
	if element == nil {
		return nil
	}
	return v.behavior.Copy(element)
}

// release destroys the payload at slot ix and clears the slot. Empty
// markers are tolerated as a no-op.
func (v *Vector[T]) release(ix uint) {
	if v.slots[ix] != nil {
		v.behavior.Destroy(v.slots[ix])
		v.slots[ix] = nil
	}
}

// CheckConsistency verifies the structural invariants: capacity is a
// power of GrowthFactor and >= size, and no slot at or beyond size
// references a payload.
func (v *Vector[T]) CheckConsistency() error {
	capacity := v.Capacity()
	if capacity&(capacity-1) != 0 {
		return fmt.Errorf("capacity %d is not a power of %d", capacity, GrowthFactor)
	}
	if v.size > capacity {
		return fmt.Errorf("size %d exceeds capacity %d", v.size, capacity)
	}
	for i := v.size; i < capacity; i++ {
		if v.slots[i] != nil {
			return fmt.Errorf("slot %d beyond size %d references a payload", i, v.size)
		}
	}
	return nil
}

// DebugDump prints a textual representation of the vector to stdout
func (v *Vector[T]) DebugDump() {
	fmt.Printf("\n    slot  element\n")
	skipped := 0
	for i := uint(0); i < v.size; i++ {
		el := v.slots[i]
		if el == nil {
			skipped++
			continue
		}
		if skipped > 0 {
			fmt.Printf("          ...\n")
			skipped = 0
		}
		fmt.Printf("%8d  %v\n", i, *el)
	}
	if skipped > 0 {
		fmt.Printf("          ...\n")
	}
	fmt.Printf("%d/%d slots occupied\n", v.size, v.Capacity())
}
