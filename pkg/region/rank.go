package region

import "container/heap"

// regionHeap is a max-heap over Region by Length, implementing
// container/heap.Interface.
type regionHeap []Region

func (h regionHeap) Len() int            { return len(h) }
func (h regionHeap) Less(i, j int) bool  { return h[i].Length() > h[j].Length() }
func (h regionHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *regionHeap) Push(x interface{}) { *h = append(*h, x.(Region)) }
func (h *regionHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Rank pushes every expanded region into a max-priority-queue keyed by
// length and pops them longest-first, keeping only those meeting
// regionLength.
//
// The source implementation's post-processing loop popped the first
// (longest) element from its max-heap and used it only as a
// truthiness/comparison check before the loop body ran, which
// unconditionally discarded the longest region from the output. This
// emits every region meeting the threshold, longest first, inclusive
// of the top.
func Rank(regions []Region, regionLength int) []Region {
	h := make(regionHeap, len(regions))
	copy(h, regions)
	heap.Init(&h)

	out := make([]Region, 0, len(regions))
	for h.Len() > 0 {
		r := heap.Pop(&h).(Region)
		if r.Length() >= regionLength {
			out = append(out, r)
		}
	}
	return out
}
