// Package autobind binds an object's methods to that object instance, so the
// methods keep working when detached from it, e.g. when passed around as
// callbacks. Binding can be eager or deferred until first read, and the
// method set can be narrowed with include, exclude and pattern filters.
package autobind

import (
	"regexp"

	"github.com/ygrebnov/autobind/internal/core"
	"github.com/ygrebnov/autobind/object"
)

// bindingEngine is the discovery and binding engine; the implementation
// lives in internal/core.
type bindingEngine interface {
	MethodKeys(obj *object.Object) []object.Key
	FilterKeys(keys []object.Key, cfg core.Config) []object.Key
	BindEager(obj *object.Object, keys []object.Key)
	BindLazy(obj *object.Object, keys []object.Key)
}

func newBindingEngine() bindingEngine { return core.NewEngine() }

// config collects the recognized binding options of a single call.
type config struct {
	include []object.Key
	exclude []object.Key
	pattern *regexp.Regexp
	lazy    bool
}

// Option configures a single Bind call.
type Option func(*config)

// WithInclude restricts binding to exactly the given keys. Membership is by
// key identity, not pattern.
func WithInclude(keys ...object.Key) Option {
	return func(c *config) {
		if c.include == nil {
			c.include = make([]object.Key, 0, len(keys))
		}
		c.include = append(c.include, keys...)
	}
}

// WithExclude removes the given keys from the method set.
func WithExclude(keys ...object.Key) Option {
	return func(c *config) {
		if c.exclude == nil {
			c.exclude = make([]object.Key, 0, len(keys))
		}
		c.exclude = append(c.exclude, keys...)
	}
}

// WithPattern keeps only string-named methods matching the expression.
// Symbol-keyed methods are dropped entirely.
func WithPattern(pattern *regexp.Regexp) Option {
	return func(c *config) { c.pattern = pattern }
}

// WithLazy defers wrapper creation for each method until its first read.
// After the first read, repeat reads return the identical wrapper reference.
func WithLazy() Option {
	return func(c *config) { c.lazy = true }
}

// Bind discovers the callable members reachable through obj's prototype
// chain, applies the configured filters, and installs a receiver-fixed
// wrapper for each surviving member as an own, non-enumerable, writable
// property of obj. The prototype chain itself is never mutated; later direct
// assignment to a bound name replaces the wrapper. Bind returns the same obj
// reference to support chaining; a nil obj or an object without qualifying
// methods is a no-op.
func Bind(obj *object.Object, opts ...Option) *object.Object {
	if obj == nil {
		return nil
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return bind(obj, c)
}

// BindNames is the shorthand form of Bind: it binds exactly the named
// members, equivalent to an include list with no other option applied.
func BindNames(obj *object.Object, names ...string) *object.Object {
	if obj == nil {
		return nil
	}
	c := config{include: make([]object.Key, 0, len(names))}
	for _, n := range names {
		c.include = append(c.include, object.Name(n))
	}
	return bind(obj, c)
}

func bind(obj *object.Object, c config) *object.Object {
	eng := newBindingEngine()
	keys := eng.FilterKeys(eng.MethodKeys(obj), core.Config{
		Include: c.include,
		Exclude: c.exclude,
		Pattern: c.pattern,
	})
	if c.lazy {
		eng.BindLazy(obj, keys)
	} else {
		eng.BindEager(obj, keys)
	}
	return obj
}
