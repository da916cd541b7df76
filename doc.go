/*
Package fiber provides introspection utilities over the retained tree
("fiber" tree) of a reconciler-based rendering engine.

Overview

Rendering engines of the reconciler family keep a retained tree of nodes
between commits: composite nodes for components, providers and fragments,
host nodes for everything backed by a real rendered instance, and root
nodes holding the container the tree was mounted into. This package reads
such a tree (it never builds or mutates one on its own behalf) and offers
a single directional traversal primitive, Traverse, on top of which the
hooks subpackage derives container lookup, nearest-instance lookup and
context bridging.

The tree is owned by the host engine. All links into it are non-owning;
a traversal is a bounded, synchronous read of whatever the engine has
committed last, and results become stale as soon as the engine commits
again.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fiber

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fiber.tree'.
func tracer() tracing.Trace {
	return tracing.Select("fiber.tree")
}
