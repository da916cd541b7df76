package fiber

import (
	"fmt"
)

// Token identifies one context type. Tokens compare by pointer identity:
// two providers share a context exactly if they carry the same *Token.
// The value currently established for a token is owned by the host engine
// and read through its subscription mechanism, never off the tree.
type Token struct {
	name string
}

// NewToken creates a distinct context token. The name is for diagnostics
// only and takes no part in identity.
func NewToken(name string) *Token {
	return &Token{name: name}
}

// Name returns the diagnostic name of the token.
func (t *Token) Name() string {
	return t.name
}

func (t *Token) String() string {
	return fmt.Sprintf("Context(%s)", t.name)
}

// Tokenized is implemented by node payloads which attach a context token
// to their node, marking it as a provider.
type Tokenized interface {
	ContextToken() *Token
}

// TokenOf returns the context token attached to a node's payload, if any.
// Provider nodes either carry the token itself as their payload or a
// payload implementing Tokenized.
func TokenOf(n *Node) (*Token, bool) {
	if n == nil {
		return nil, false
	}
	switch p := n.Payload().(type) {
	case *Token:
		return p, true
	case Tokenized:
		return p.ContextToken(), true
	}
	return nil, false
}
