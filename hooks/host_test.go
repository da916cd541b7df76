package hooks_test

import (
	"github.com/npillmayer/fiber"
)

// renderEnv is a minimal host engine for tests. It exposes the currently
// rendering node, queues post-commit callbacks until commit() is called,
// and resolves context subscriptions by walking the ancestor chain of the
// current node, nearest provider first.
type renderEnv struct {
	current *fiber.Node
	queue   []func()
	values  map[*fiber.Node]any // provider node → currently provided value
}

func newRenderEnv() *renderEnv {
	return &renderEnv{values: make(map[*fiber.Node]any)}
}

func (env *renderEnv) Rendering() *fiber.Node {
	return env.current
}

func (env *renderEnv) AfterCommit(fn func()) {
	env.queue = append(env.queue, fn)
}

func (env *renderEnv) ContextValue(tok *fiber.Token) (any, bool) {
	if env.current == nil {
		return nil, false
	}
	for n := env.current.Parent(); n != nil; n = n.Parent() {
		if t, ok := fiber.TokenOf(n); ok && t == tok {
			v, ok := env.values[n]
			return v, ok
		}
	}
	return nil, false
}

// provide sets the value the provider node currently holds.
func (env *renderEnv) provide(node *fiber.Node, v any) {
	env.values[node] = v
}

// commit runs the queued post-commit callbacks, once each.
func (env *renderEnv) commit() {
	q := env.queue
	env.queue = nil
	for _, fn := range q {
		fn()
	}
}
