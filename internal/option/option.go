package option

import "errors"

// ErrMissingValue is returned when unwrapping an absent value.
var ErrMissingValue = errors.New("missing value")

// Option is either a present payload or absent. The zero value is absent.
type Option[T any] struct {
	val T
	ok  bool
}

// Some wraps a present payload.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, ok: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromLookup adapts a comma-ok lookup.
func FromLookup[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Truthy treats the zero value of T as absent. Only use it where a falsy
// payload should behave like a missing one.
func Truthy[T comparable](v T) Option[T] {
	var zero T
	if v == zero {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool { return o.ok }
func (o Option[T]) IsNone() bool { return !o.ok }

// ValOf returns the payload or ErrMissingValue.
func (o Option[T]) ValOf() (T, error) {
	if !o.ok {
		var zero T
		return zero, ErrMissingValue
	}
	return o.val, nil
}

// Value returns the payload, or def when absent.
func (o Option[T]) Value(def T) T {
	if !o.ok {
		return def
	}
	return o.val
}

// Map converts a present payload; absent stays absent.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.val))
}
