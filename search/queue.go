package search

import "container/heap"

// PriorityQueue is a min-heap of node handles keyed by an int64 priority.
// Equal priorities pop in insertion order, which makes uniform-cost, greedy
// and A* runs deterministic.
//
// Stale duplicates are tolerated: strategies push a state again when they
// find it again and skip entries for already-explored states on pop
// ("lazy decrease-key").
type PriorityQueue struct {
	items pqItems
	seq   uint64
}

// Push adds h with the given priority.
func (q *PriorityQueue) Push(h Handle, priority int64) {
	heap.Push(&q.items, pqItem{handle: h, priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the entry with the lowest priority.
// It must not be called on an empty queue.
func (q *PriorityQueue) Pop() (Handle, int64) {
	it := heap.Pop(&q.items).(pqItem)

	return it.handle, it.priority
}

// Len returns the number of queued entries, stale ones included.
func (q *PriorityQueue) Len() int { return q.items.Len() }

type pqItem struct {
	handle   Handle
	priority int64
	seq      uint64 // insertion sequence; breaks priority ties
}

// pqItems implements heap.Interface.
type pqItems []pqItem

func (pq pqItems) Len() int { return len(pq) }

func (pq pqItems) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

func (pq pqItems) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pqItems) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

func (pq *pqItems) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
