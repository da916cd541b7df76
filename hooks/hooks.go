package hooks

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/fiber"
)

// ErrNotRendering is returned when a hook is invoked outside any render
// pass. This is a programming error on the caller's side; there is no
// internal recovery.
var ErrNotRendering = errors.New("no node is currently rendering; hooks must be called during render")

// ErrNoContainer is returned when no managed render root encloses the
// current node, i.e. the component is not mounted under a managed root.
var ErrNoContainer = errors.New("current node is not mounted under a managed root")

// ErrContainerType is returned when the container payload found at the
// render root is not of the requested type.
var ErrContainerType = errors.New("container payload has unexpected type")

// Host is the read-only capability a rendering engine hands to this
// package. It replaces the process-wide renderer-owned state a reconciler
// usually exposes for introspection, so that the operations here stay
// testable without a real engine attached.
type Host interface {
	// Rendering returns the retained-tree node associated with the
	// component currently being rendered, or nil outside any render pass.
	Rendering() *fiber.Node

	// AfterCommit schedules fn to run once, after the commit for the
	// current render pass has completed. The engine invokes the callback
	// synchronously, at most once per commit.
	AfterCommit(fn func())

	// ContextValue reads the value established by the nearest provider of
	// tok above the currently rendering node. The second return value is
	// false if no such provider is mounted above it.
	ContextValue(tok *fiber.Token) (any, bool)
}

// Hooks bundles the per-instance state behind the introspection
// operations: the cached current node, the container memo, the ref cells
// of the nearest-instance finders and the memoized context bridge.
//
// Create one Hooks value per mounted component instance and keep it for
// the instance's lifetime; a remounted component gets a fresh one, which
// is what invalidates every memoized result. Hooks values are not safe
// for concurrent use; the host's single-writer render discipline is
// assumed, as everywhere in this library.
type Hooks struct {
	host Host
	node *fiber.Node // current node, read once and cached

	containerFor *fiber.Node // memo key: node the container was located from
	containerVal any

	childCell  any // *Ref[T] of the nearest-child finder, created on first use
	parentCell any

	bridgeFor *fiber.Node // memo key: node the bridge was built from
	bridge    Component
}

// New creates the hooks state for one mounted component instance.
func New(host Host) *Hooks {
	return &Hooks{host: host}
}

// Fiber returns the retained-tree node of the component instance this
// Hooks value belongs to. The node is read from the host exactly once and
// cached; its identity is stable across re-renders of the same mounted
// instance. Calling Fiber outside any render pass before the first
// successful read returns ErrNotRendering.
func (h *Hooks) Fiber() (*fiber.Node, error) {
	if h.node == nil {
		n := h.host.Rendering()
		if n == nil {
			return nil, ErrNotRendering
		}
		h.node = n
		tracer().Debugf("hooks bound to %v", n)
	}
	return h.node, nil
}

// locateContainer walks upward from the current node to the enclosing
// render root and returns its container payload. The result is memoized
// by node identity, not recomputed on every call.
func (h *Hooks) locateContainer() (any, error) {
	node, err := h.Fiber()
	if err != nil {
		return nil, err
	}
	if h.containerFor == node {
		return h.containerVal, nil
	}
	match := fiber.Traverse(node, fiber.Up, func(n *fiber.Node) bool {
		return n.Kind() == fiber.KindRoot && n.Payload() != nil
	})
	if match == nil {
		return nil, ErrNoContainer
	}
	h.containerFor = node
	h.containerVal = match.Payload()
	return h.containerVal, nil
}

// Container returns the container payload of the render root enclosing
// the current component, e.g. the DOM element or scene the tree was
// mounted into. It returns ErrNoContainer if the component is not mounted
// under a managed root, and ErrContainerType if the payload is not a T.
func Container[T any](h *Hooks) (T, error) {
	var none T
	payload, err := h.locateContainer()
	if err != nil {
		return none, err
	}
	c, ok := payload.(T)
	if !ok {
		tracer().Errorf("container payload is %T, not the requested type", payload)
		return none, ErrContainerType
	}
	return c, nil
}
