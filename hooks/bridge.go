package hooks

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/fiber"
)

// Component renders children into an element the host engine can mount.
// Elements are opaque to this package; the only element shape it produces
// itself is Provider.
type Component func(children any) any

// Provider is the element a bridge emits for one captured context. A host
// engine mounting a Provider establishes Value for Token in the subtree
// below Children.
type Provider struct {
	Token    *fiber.Token
	Value    any
	Children any
}

// Bridge builds a composite component which re-establishes, in a disjoint
// render tree, every context active above the current component.
//
// It walks the ancestor chain exhaustively, collecting each distinct
// provider token in discovery order, snapshots the token's current value
// through the host's subscription mechanism, and folds the pairs into a
// single component: mounted, it nests one Provider per context with the
// furthest ancestor outermost, children innermost.
//
// Values are snapshot at build time, not re-subscribed in the target
// tree: consumers inside the bridged subtree will not observe later
// updates until the bridge is rebuilt. A rebuild happens when the source
// component remounts (a fresh Hooks value); the result is otherwise
// memoized by node identity.
func (h *Hooks) Bridge() (Component, error) {
	node, err := h.Fiber()
	if err != nil {
		return nil, err
	}
	if h.bridgeFor == node && h.bridge != nil {
		return h.bridge, nil
	}
	var tokens []*fiber.Token
	seen := make(map[*fiber.Token]bool)
	fiber.Traverse(node, fiber.Up, func(n *fiber.Node) bool {
		if tok, ok := fiber.TokenOf(n); ok && !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
		return false // never halt: the walk has to see the whole ancestor chain
	})
	tracer().Debugf("bridging %d context(s) above %v", len(tokens), node)
	compose := Component(func(children any) any {
		return children
	})
	for _, tok := range tokens {
		value, ok := h.host.ContextValue(tok)
		if !ok {
			// token was discovered on a sibling branch, not above us
			continue
		}
		tok := tok
		inner := compose
		compose = func(children any) any {
			return Provider{Token: tok, Value: value, Children: inner(children)}
		}
	}
	h.bridgeFor = node
	h.bridge = compose
	return compose, nil
}
