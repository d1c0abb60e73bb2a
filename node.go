package slist

// node is one link cell of a list. It holds a single element and owns the
// link to its successor, so the chain is strictly forward-owning: dropping a
// node releases everything it still links to.
type node[E any] struct {
	entry E
	next  *node[E]
}

func newNode[E any](entry E, next *node[E]) *node[E] {
	return &node[E]{
		entry: entry,
		next:  next,
	}
}
