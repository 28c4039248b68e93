// Package options implements a small generic functional-options mechanism,
// used by container.Option to configure Compress and the Decompress*
// drivers.
//
// Adapted from mebo's internal/options package (same Option[T]/Apply[T]
// shape), kept generic rather than duplicated per configurable type.
package options

// Option configures a value of type T, returning an error if the supplied
// configuration is invalid.
type Option[T any] interface {
	apply(T) error
}

// optionFunc adapts a plain function to Option.
type optionFunc[T any] struct {
	fn func(T) error
}

func (o *optionFunc[T]) apply(target T) error { return o.fn(target) }

// New wraps fn as an Option[T].
func New[T any](fn func(T) error) Option[T] {
	return &optionFunc[T]{fn: fn}
}

// NoError wraps a function that cannot fail as an Option[T].
func NoError[T any](fn func(T)) Option[T] {
	return &optionFunc[T]{fn: func(target T) error {
		fn(target)
		return nil
	}}
}

// Apply runs each option against target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
