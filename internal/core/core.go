package core

import (
	"regexp"

	"github.com/ygrebnov/autobind/constants"
	"github.com/ygrebnov/autobind/object"
)

// Engine performs method discovery, filtering and binding over the object
// runtime. It is stateless; every binding call recomputes the method set.
type Engine struct{}

// NewEngine returns the binding engine.
func NewEngine() Engine { return Engine{} }

// Config carries the recognized binding options for a single call.
type Config struct {
	// Include, when non-nil, restricts the method set to exactly these keys.
	Include []object.Key
	// Exclude removes keys from the method set.
	Exclude []object.Key
	// Pattern keeps only string keys matching the expression; symbol keys
	// are dropped entirely when a pattern is set.
	Pattern *regexp.Regexp
	// Lazy selects deferred binding: accessors that build and memoize the
	// wrapper on first read.
	Lazy bool
}

// builtinRootMethods is the fixed string-keyed exclusion set; symbol keys are
// exempt.
var builtinRootMethods = func() map[object.Name]struct{} {
	m := make(map[object.Name]struct{}, len(constants.BuiltinRootMethods))
	for _, n := range constants.BuiltinRootMethods {
		m[object.Name(n)] = struct{}{}
	}
	return m
}()

func isBuiltinRootMethod(k object.Key) bool {
	n, ok := k.(object.Name)
	if !ok {
		return false
	}
	_, skip := builtinRootMethods[n]
	return skip
}
