package dlx

import "log"

// cover removes header hdr from the header ring and, for every row that
// has a cell in hdr's column, splices that row's other cells out of their
// own column rings. Horizontal links are left untouched — that is what
// lets uncover walk the same rows back in.
func (s *Solver) cover(hdr Index) {
	if s.Debug {
		log.Printf("dlx: cover %d", s.a.es[hdr].x1)
	}
	es := s.a.es
	es[es[hdr].right].left = es[hdr].left
	es[es[hdr].left].right = es[hdr].right

	for row := es[hdr].down; row != hdr; row = es[row].down {
		for col := es[row].right; col != row; col = es[col].right {
			colHdr := es[col].x1
			es[colHdr].x2--
			es[es[col].up].down = es[col].down
			es[es[col].down].up = es[col].up
		}
	}
}

// uncover is the exact inverse of cover: it must be called in LIFO order
// against a balanced sequence of covers for the arena to be restored
// bit-for-bit.
func (s *Solver) uncover(hdr Index) {
	if s.Debug {
		log.Printf("dlx: uncover %d", s.a.es[hdr].x1)
	}
	es := s.a.es
	for row := es[hdr].up; row != hdr; row = es[row].up {
		for col := es[row].left; col != row; col = es[col].left {
			colHdr := es[col].x1
			es[colHdr].x2++
			es[es[col].up].down = col
			es[es[col].down].up = col
		}
	}

	es[es[hdr].right].left = hdr
	es[es[hdr].left].right = hdr
}
