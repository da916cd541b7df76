/*
Package option provides an optional-value type.

An Option[T] either holds a value of type T ("Some") or nothing ("None").
The introspection operations use it for every soft not-found outcome:
a missing container, a direction without a host instance, an empty ref
cell. These are valid, common states and deliberately not errors.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"fmt"
)

// Option holds a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	tag   bool
}

// Some wraps a present value.
func Some[T any](x T) Option[T] {
	return Option[T]{value: x, tag: true}
}

// None is the absent value for type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.tag
}

// Get returns the held value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.tag
}

// WithDefault returns the held value, or def if o is None.
func (o Option[T]) WithDefault(def T) T {
	if o.tag {
		return o.value
	}
	return def
}

// Map applies f to a present value and re-wraps the result.
// None stays None.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if o.tag {
		return Some(f(o.value))
	}
	return o
}

func (o Option[T]) String() string {
	if o.tag {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to a present value, possibly changing the value type.
func Map[T, S any](f func(T) S, x Option[T]) Option[S] {
	if v, ok := x.Get(); ok {
		return Some(f(v))
	}
	return None[S]()
}

// AndThen chains a computation which may itself come up empty.
func AndThen[T, S any](f func(T) Option[S], x Option[T]) Option[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return None[S]()
}
