package dlx

// Index addresses an entry in a Solver's arena. Zero is reserved as the
// null sentinel and is never dereferenced.
type Index = int

// entry is one node of the quadruply-linked sparse matrix: a header, the
// root, or a data cell, depending on where it sits in the arena.
//
// left/right and up/down link the entry into its circular horizontal and
// vertical rings. x1 and x2 carry different meanings depending on the
// entry's kind:
//
//   - header: x1 is the public column number, x2 is the live count of
//     data cells currently in that column. The root leaves both at zero.
//   - data cell: x1 is the arena index of the cell's column header, x2 is
//     1 if this cell starts its row, 0 otherwise.
type entry struct {
	left, right, up, down Index
	x1, x2                Index
}

// arena is a dense, append-only indexed store of entries. Index 0 is
// taken by newArena's first append as the null sentinel, so no later
// append returns it. Entries are never freed — coverage is logical (re-linking),
// never physical removal from the slice.
type arena struct {
	es []entry
}

func newArena() *arena {
	a := &arena{es: make([]entry, 0, 64)}
	a.append(entry{}) // index 0: unused sentinel
	return a
}

func (a *arena) append(e entry) Index {
	a.es = append(a.es, e)
	return len(a.es) - 1
}

func (a *arena) len() int {
	return len(a.es)
}
