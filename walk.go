package fiber

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Direction selects where Traverse moves through the retained tree.
type Direction uint8

const (
	// Up walks toward the root, following parent links.
	Up Direction = iota
	// Down walks toward the leaves, following first-child links.
	Down
)

func (dir Direction) String() string {
	if dir == Down {
		return "down"
	}
	return "up"
}

// Predicate is a function type to match against nodes of a tree.
// Traverse calls it once per visited node and halts at the first match.
// A predicate is free to have side effects, e.g. accumulating every
// visited provider token, even when it keeps returning false; callers
// rely on this for exhaustive collection.
type Predicate func(*Node) bool

// Traverse walks the retained tree from start in the given direction and
// returns the first node the predicate selects, or nil if the walk is
// exhausted without a match.
//
// The walk keeps two cursors. The main cursor begins at the start node's
// parent (Up) or first child (Down); the sibling cursor begins at the
// start node's next sibling. At every level the remaining sibling chain is
// drained first, then the main cursor itself is tested; only then does the
// main cursor advance, with the sibling cursor moving to the advanced
// cursor's next sibling. Siblings thus take precedence over continuing the
// main walk.
//
// The start node itself is never visited. Traverse does not mutate the
// tree and terminates on any acyclic tree.
func Traverse(start *Node, dir Direction, match Predicate) *Node {
	if start == nil || match == nil {
		return nil
	}
	tracer().Debugf("traversing %s from %v", dir, start)
	cursor := start.parent
	if dir == Down {
		cursor = start.child
	}
	sibling := start.sibling
	for cursor != nil {
		for sibling != nil {
			if match(sibling) {
				return sibling
			}
			sibling = sibling.sibling
		}
		if match(cursor) {
			return cursor
		}
		if dir == Up {
			cursor = cursor.parent
		} else {
			cursor = cursor.child
		}
		if cursor != nil {
			sibling = cursor.sibling
		}
	}
	return nil
}
