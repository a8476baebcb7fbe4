package orderbook

import "github.com/google/btree"

const sideBookDegree = 32

// bookKey is the immutable priority view of an order. Only price and seq take
// part in ordering; seq is unique so two keys never compare equal.
type bookKey struct {
	price int64
	seq   uint64
	id    string
}

// sideBook keeps the resting orders of one side in matching priority, best first.
type sideBook struct {
	side Side
	tree *btree.BTreeG[bookKey]
}

func newSideBook(side Side) *sideBook {
	var less btree.LessFunc[bookKey]
	if side == BUY {
		// higher price first, then earlier arrival
		less = func(a, b bookKey) bool {
			if a.price != b.price {
				return a.price > b.price
			}
			return a.seq < b.seq
		}
	} else {
		// lower price first, then earlier arrival
		less = func(a, b bookKey) bool {
			if a.price != b.price {
				return a.price < b.price
			}
			return a.seq < b.seq
		}
	}

	return &sideBook{
		side: side,
		tree: btree.NewG(sideBookDegree, less),
	}
}

func (sb *sideBook) insert(o *Order) {
	sb.tree.ReplaceOrInsert(o.key())
}

// remove is a no-op when the order is not resident.
func (sb *sideBook) remove(o *Order) bool {
	_, ok := sb.tree.Delete(o.key())
	return ok
}

func (sb *sideBook) peekBest() (bookKey, bool) {
	return sb.tree.Min()
}

func (sb *sideBook) isEmpty() bool {
	return sb.tree.Len() == 0
}

func (sb *sideBook) len() int {
	return sb.tree.Len()
}

// walk visits keys best first until fn returns false.
func (sb *sideBook) walk(fn func(k bookKey) bool) {
	sb.tree.Ascend(fn)
}
