package cache

// nilIndex marks a missing neighbour or an empty list end.
const nilIndex = -1

// entry is one arena slot. prev points toward the front (more recently
// used), next toward the back (less recently used).
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// recencyList is a doubly linked list stored in a slice. Slots are addressed
// by index and recycled through a free list, so the lookup index never holds
// a pointer into the list.
type recencyList[K comparable, V any] struct {
	slots []entry[K, V]
	free  []int
	front int
	back  int
	size  int
}

func newRecencyList[K comparable, V any](capacity int) *recencyList[K, V] {
	return &recencyList[K, V]{
		slots: make([]entry[K, V], 0, capacity),
		front: nilIndex,
		back:  nilIndex,
	}
}

// alloc stores key/value in a free slot and returns its index. The slot is
// not linked.
func (l *recencyList[K, V]) alloc(key K, value V) int {
	e := entry[K, V]{key: key, value: value, prev: nilIndex, next: nilIndex}
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[i] = e
		return i
	}
	l.slots = append(l.slots, e)
	return len(l.slots) - 1
}

// release zeroes an unlinked slot so it stops referencing the key and value,
// then returns it to the free list.
func (l *recencyList[K, V]) release(i int) {
	l.slots[i] = entry[K, V]{prev: nilIndex, next: nilIndex}
	l.free = append(l.free, i)
}

// pushFront links an unlinked slot in front of the current front.
func (l *recencyList[K, V]) pushFront(i int) {
	e := &l.slots[i]
	e.prev = nilIndex
	e.next = l.front
	if l.front != nilIndex {
		l.slots[l.front].prev = i
	} else {
		l.back = i
	}
	l.front = i
	l.size++
}

// unlink detaches a linked slot from its neighbours and fixes up front and
// back when the slot sat at either end.
func (l *recencyList[K, V]) unlink(i int) {
	e := &l.slots[i]
	if e.prev != nilIndex {
		l.slots[e.prev].next = e.next
	} else {
		l.front = e.next
	}
	if e.next != nilIndex {
		l.slots[e.next].prev = e.prev
	} else {
		l.back = e.prev
	}
	e.prev, e.next = nilIndex, nilIndex
	l.size--
}

// moveToFront promotes a linked slot. Promoting the front is a no-op.
func (l *recencyList[K, V]) moveToFront(i int) {
	if l.front == i {
		return
	}
	l.unlink(i)
	l.pushFront(i)
}

// reset drops every slot and returns the list to its empty state.
func (l *recencyList[K, V]) reset() {
	clear(l.slots)
	l.slots = l.slots[:0]
	l.free = l.free[:0]
	l.front, l.back = nilIndex, nilIndex
	l.size = 0
}
