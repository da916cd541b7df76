package fiber_test

import (
	"testing"

	. "github.com/npillmayer/fiber"
)

func TestNodeLinking(t *testing.T) {
	parent := NewNode(KindComposite, "parent")
	a := NewNode(KindHost, "a")
	b := NewNode(KindHost, "b")
	c := NewNode(KindHost, "c")
	if parent.AppendChild(a).AppendChild(b).AppendChild(c) != parent {
		t.Error("expected AppendChild to return the parent for chaining, doesn't")
	}
	if parent.FirstChild() != a {
		t.Errorf("expected first child to be a, is %v", parent.FirstChild())
	}
	if a.NextSibling() != b || b.NextSibling() != c || c.NextSibling() != nil {
		t.Error("expected sibling chain a → b → c, isn't")
	}
	for _, ch := range []*Node{a, b, c} {
		if ch.Parent() != parent {
			t.Errorf("expected %v to have its parent link set, hasn't", ch)
		}
	}
	if parent.Parent() != nil {
		t.Error("expected detached parent node to have no parent, has one")
	}
}

func TestNodeAppendNil(t *testing.T) {
	parent := NewNode(KindComposite, "parent")
	if parent.AppendChild(nil) != parent {
		t.Error("expected AppendChild(nil) to be a no-op returning the parent, isn't")
	}
	if parent.FirstChild() != nil {
		t.Error("expected no child after AppendChild(nil), have one")
	}
}

func TestKindString(t *testing.T) {
	if KindComposite.String() != "composite" || KindHost.String() != "host" || KindRoot.String() != "root" {
		t.Error("expected kinds to print as composite|host|root, don't")
	}
}

type tokenizedPayload struct {
	tok *Token
	val string
}

func (p tokenizedPayload) ContextToken() *Token { return p.tok }

func TestTokenOf(t *testing.T) {
	theme := NewToken("theme")
	if theme.Name() != "theme" {
		t.Errorf("expected token name 'theme', is %q", theme.Name())
	}
	direct := NewNode(KindComposite, theme)
	if tok, ok := TokenOf(direct); !ok || tok != theme {
		t.Error("expected TokenOf to find a token carried as payload, didn't")
	}
	wrapped := NewNode(KindComposite, tokenizedPayload{tok: theme, val: "dark"})
	if tok, ok := TokenOf(wrapped); !ok || tok != theme {
		t.Error("expected TokenOf to find a token via Tokenized, didn't")
	}
	plain := NewNode(KindHost, "div")
	if _, ok := TokenOf(plain); ok {
		t.Error("expected TokenOf to find no token on a host node, found one")
	}
	if _, ok := TokenOf(nil); ok {
		t.Error("expected TokenOf(nil) to find no token, found one")
	}
}
