/*
Package hooks is the render-time surface of the fiber library.

Components obtain a Hooks value, one per mounted component instance,
from which they derive the enclosing container, the nearest rendered
instance above or below them, and a context bridge for mounting a subtree
in a disjoint renderer. Everything is computed by reading the host
engine's retained tree through the fiber.Traverse primitive; the host
engine itself is consumed as a small read-only capability (interface
Host) rather than as hidden global state, so the package works against
any reconciler-style engine and tests run without a real one attached.

All operations run synchronously inside a render pass or a post-commit
callback of the host engine. They never block, spawn work or perform I/O,
and there is no locking: the host guarantees it does not mutate the tree
concurrently with a render pass reading it.
*/
package hooks

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fiber.hooks'.
func tracer() tracing.Trace {
	return tracing.Select("fiber.hooks")
}
