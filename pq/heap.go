// SPDX-License-Identifier: MIT

package pq

// binaryHeap holds the sift logic shared by both queue flavours.
// higher reports whether a outranks b. onSwap, when set, runs after every swap
// so that index-tracking queues can keep their bookkeeping current.
type binaryHeap[E any] struct {
	items  []E
	higher func(a, b E) bool
	onSwap func(i, j int)
}

func parent(i int) int { return (i - 1) / 2 }

func (h *binaryHeap[E]) len() int { return len(h.items) }

func (h *binaryHeap[E]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	if h.onSwap != nil {
		h.onSwap(i, j)
	}
}

// push appends x and sifts it up. It returns x's final index.
func (h *binaryHeap[E]) push(x E) int {
	h.items = append(h.items, x)

	return h.up(len(h.items) - 1)
}

func (h *binaryHeap[E]) up(i int) int {
	for i > 0 {
		p := parent(i)
		if !h.higher(h.items[i], h.items[p]) {
			break
		}
		h.swap(i, p)
		i = p
	}

	return i
}

// down sifts items[i] toward the leaves. The left child wins priority ties.
func (h *binaryHeap[E]) down(i int) int {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		best := left
		if right := left + 1; right < n && h.higher(h.items[right], h.items[left]) {
			best = right
		}
		if !h.higher(h.items[best], h.items[i]) {
			break
		}
		h.swap(i, best)
		i = best
	}

	return i
}

// fix restores the heap property around i after its key changed.
func (h *binaryHeap[E]) fix(i int) {
	if i > 0 && h.higher(h.items[i], h.items[parent(i)]) {
		h.up(i)
		return
	}
	h.down(i)
}

// popLast removes and returns the last array slot.
func (h *binaryHeap[E]) popLast() E {
	last := len(h.items) - 1
	x := h.items[last]
	var zero E
	h.items[last] = zero // drop the reference for the GC
	h.items = h.items[:last]

	return x
}

// popRoot swaps the root with the last slot, pops it and re-sifts the new root.
// The caller guarantees the heap is non-empty.
func (h *binaryHeap[E]) popRoot() E {
	h.swap(0, len(h.items)-1)
	x := h.popLast()
	if len(h.items) > 0 {
		h.down(0)
	}

	return x
}

// removeAt pulls out items[i]. If i is already the last slot it is popped
// directly; otherwise it is swapped with the last slot first and the vacated
// position is re-heapified in whichever direction it needs.
func (h *binaryHeap[E]) removeAt(i int) E {
	last := len(h.items) - 1
	if i == last {
		return h.popLast()
	}
	h.swap(i, last)
	x := h.popLast()
	h.fix(i)

	return x
}
