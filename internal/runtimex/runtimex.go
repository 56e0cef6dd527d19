// Package runtimex contains runtime extensions. This package is inspired to
// https://pkg.go.dev/github.com/m-lab/go/rtx, except that it's simpler.
package runtimex

import (
	"errors"
	"fmt"
)

// PanicOnError calls panic() if err is not nil.
func PanicOnError(err error, message string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", message, err))
	}
}

// PanicIfFalse calls panic if assertion is false.
func PanicIfFalse(assertion bool, message string) {
	if !assertion {
		panic(message)
	}
}

// PanicIfTrue calls panic if assertion is true.
func PanicIfTrue(assertion bool, message string) {
	PanicIfFalse(!assertion, message)
}

// PanicIfNil calls panic if the given interface is nil.
func PanicIfNil(v interface{}, message string) {
	PanicIfTrue(v == nil, message)
}

// ErrPanic is the error returned by Try when fn panicked.
var ErrPanic = errors.New("runtimex: recovered panic")

// Try calls fn and converts a panic into an error wrapping ErrPanic. We
// use it around calls into host-provided code that we do not control.
func Try(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn()
}
