// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Argument guards shared by the search entry points.

package core

import (
	"fmt"
	"reflect"
)

// IsNil reports whether v is an untyped nil or a nil value of a nillable
// kind (pointer, map, slice, chan, func, interface).
// Node identifiers of non-nillable types such as string or int are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Arg names a search argument for RequireArgs.
type Arg struct {
	Name  string
	Value any
}

// RequireArgs returns ErrInvalidArgument, wrapped with the argument name,
// for the first nil argument in args. Arguments are checked in order.
func RequireArgs(args ...Arg) error {
	for _, a := range args {
		if IsNil(a.Value) {
			return fmt.Errorf("%w: %s is nil", ErrInvalidArgument, a.Name)
		}
	}

	return nil
}
