package fiber

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We mirror the retained tree of a host rendering engine. Nodes link to their
parent, their first child and their next sibling, the way reconcilers lay
out fiber records. The engine creates, rewires and destroys nodes during
its render/commit cycle; this package only ever follows the links.
*/

// Kind discriminates what backs a node of the retained tree.
type Kind uint8

const (
	// KindComposite marks logical nodes: components, context providers,
	// fragments. They render children but own no instance of their own.
	KindComposite Kind = iota
	// KindHost marks nodes backed by a real rendered instance, e.g. a DOM
	// element or a scene-graph object.
	KindHost
	// KindRoot marks a render root. Its payload is the container the host
	// engine mounted the tree into.
	KindRoot
)

func (k Kind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindRoot:
		return "root"
	}
	return "composite"
}

// Node is one record of a renderer's retained tree. A node carries an
// opaque payload supplied by the host engine: an instance handle for host
// nodes, the container for root nodes, a context token for provider nodes.
// Traversal never interprets the payload.
type Node struct {
	kind    Kind
	payload any
	parent  *Node // back reference, never owned
	child   *Node // first child
	sibling *Node // next sibling, in creation order
}

// NewNode creates a detached node with a given kind and payload.
func NewNode(kind Kind, payload any) *Node {
	return &Node{kind: kind, payload: payload}
}

// AppendChild links ch as the last child of this node.
// The newly linked node is connected to this node as its parent and to the
// previously last child as its next sibling. It returns the parent node to
// allow for chaining.
//
// AppendChild is intended for host engines and tests building a tree; the
// introspection operations themselves never mutate one.
func (node *Node) AppendChild(ch *Node) *Node {
	if node == nil || ch == nil {
		return node
	}
	ch.parent = node
	if node.child == nil {
		node.child = ch
		return node
	}
	last := node.child
	for last.sibling != nil {
		last = last.sibling
	}
	last.sibling = ch
	return node
}

// Kind returns the node's discriminator.
func (node *Node) Kind() Kind {
	return node.kind
}

// Payload returns the externally-supplied payload attached to this node.
func (node *Node) Payload() any {
	return node.payload
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node) Parent() *Node {
	if node == nil {
		return nil
	}
	return node.parent
}

// FirstChild returns the first child node or nil (for leaves).
func (node *Node) FirstChild() *Node {
	if node == nil {
		return nil
	}
	return node.child
}

// NextSibling returns the next node sharing this node's parent, in
// creation order, or nil for the last child.
func (node *Node) NextSibling() *Node {
	if node == nil {
		return nil
	}
	return node.sibling
}

func (node *Node) String() string {
	return fmt.Sprintf("(Node %s %v)", node.kind, node.payload)
}
