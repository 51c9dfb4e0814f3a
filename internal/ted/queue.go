package ted

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// backtrackQueue holds whole-subtree (i, j) node pairs still awaiting their
// own forest-distance backtrack, ordered by packed (i, j) key so the
// highest-keyed pair is processed next — a nested subtree always has a
// lower postorder id than its ancestor, so the outermost, already-decided
// subtree is walked before any subtree nested inside it.
type backtrackQueue struct {
	set *treeset.Set
}

func newBacktrackQueue() *backtrackQueue {
	return &backtrackQueue{set: treeset.NewWith(utils.Int64Comparator)}
}

func pack(i, j int) int64 { return int64(i)<<32 | int64(uint32(j)) }

func unpack(k int64) (i, j int) {
	return int(k >> 32), int(int32(uint32(k)))
}

func (q *backtrackQueue) enqueue(i, j int) {
	q.set.Add(pack(i, j))
}

func (q *backtrackQueue) hasMore() bool {
	return !q.set.Empty()
}

// takeCurrent removes and returns the highest-keyed pair still queued.
func (q *backtrackQueue) takeCurrent() (i, j int) {
	values := q.set.Values()
	k := values[len(values)-1].(int64)
	q.set.Remove(k)
	return unpack(k)
}
