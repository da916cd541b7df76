package hooks

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/fiber"
	"github.com/npillmayer/fiber/option"
)

// Ref is a stable mutable cell holding an optional instance handle. The
// cell keeps its identity for the lifetime of the component instance; its
// contents are rewritten by the nearest-instance finders after every
// commit. An empty cell is a valid steady state: a component whose
// subtree renders no host output simply never gets a child instance.
type Ref[T any] struct {
	val option.Option[T]
}

// Current returns the instance handle the cell holds right now.
func (r *Ref[T]) Current() option.Option[T] {
	return r.val
}

func (r *Ref[T]) put(v T) {
	r.val = option.Some(v)
}

func (r *Ref[T]) drop() {
	r.val = option.None[T]()
}

// NearestChild exposes the instance handle of the nearest host node below
// the current component. The returned ref cell is stable across renders;
// its contents are recomputed after every commit, never during render,
// because the set of host descendants may shift while the engine finishes
// committing the whole tree.
func NearestChild[T any](h *Hooks) (*Ref[T], error) {
	return nearest[T](h, &h.childCell, fiber.Down)
}

// NearestParent is the upward counterpart of NearestChild: it exposes the
// instance handle of the nearest host node above the current component.
func NearestParent[T any](h *Hooks) (*Ref[T], error) {
	return nearest[T](h, &h.parentCell, fiber.Up)
}

func nearest[T any](h *Hooks, cell *any, dir fiber.Direction) (*Ref[T], error) {
	node, err := h.Fiber()
	if err != nil {
		return nil, err
	}
	ref, ok := (*cell).(*Ref[T])
	if !ok {
		ref = &Ref[T]{}
		*cell = ref
	}
	h.host.AfterCommit(func() {
		match := fiber.Traverse(node, dir, isHost)
		if match == nil {
			ref.drop()
			return
		}
		v, ok := match.Payload().(T)
		if !ok {
			tracer().Errorf("host instance is %T, not the requested type", match.Payload())
			ref.drop()
			return
		}
		ref.put(v)
	})
	return ref, nil
}

// isHost matches rendered nodes, as opposed to logical/composite ones.
func isHost(n *fiber.Node) bool {
	return n.Kind() == fiber.KindHost
}
