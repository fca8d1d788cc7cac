// Package options implements the generic functional-option pattern used by the encoder,
// decoder and config packages.
package options

import "go.uber.org/multierr"

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a function to the Option interface.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies every option in order. Unlike a fail-fast loop, all options are applied and
// every rejection is reported, combined into a single error.
func Apply[T any](target T, opts ...Option[T]) error {
	var err error
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		err = multierr.Append(err, opt.apply(target))
	}

	return err
}
