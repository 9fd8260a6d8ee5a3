/*
File    : lox/builtins/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtins provides the handful of natives Lox seeds its global
// environment with -- just "clock". Adapted from a std package (a
// Builtin{Name, Callback} registry) down to the single entry Lox actually
// calls for -- file I/O, collections, and the rest of that package's surface
// have no Lox equivalent, but the registry shape itself is carried forward.
package builtins

import (
	"time"

	"github.com/loxlang/lox/values"
)

// All returns every native function Lox's global environment is seeded
// with, keyed by the name Lox source refers to them by.
func All() map[string]values.Callable {
	return map[string]values.Callable{
		"clock": &values.NativeFunction{
			Name: "clock",
			Ar:   0,
			Fn: func(args []interface{}) (interface{}, error) {
				return float64(time.Now().UnixNano()) / float64(time.Second), nil
			},
		},
	}
}
