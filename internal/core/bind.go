package core

import "github.com/ygrebnov/autobind/object"

// BoundMethod returns a wrapper permanently fixing self as fn's receiver.
// The receiver the wrapper is later invoked through is ignored; arguments,
// result and failure pass through unchanged.
func BoundMethod(self *object.Object, fn object.Callable) object.Callable {
	return func(_ *object.Object, args ...any) (any, error) {
		return fn(self, args...)
	}
}

// BindEager installs a receiver-fixed wrapper for every key as an own data
// property of obj (writable, configurable, non-enumerable), shadowing the
// prototype chain. The current value is read through full chain lookup; keys
// that no longer resolve to a callable are skipped. The chain itself is
// never mutated.
func (Engine) BindEager(obj *object.Object, keys []object.Key) {
	for _, k := range keys {
		v, ok := obj.Get(k)
		if !ok {
			continue
		}
		fn, ok := v.(object.Callable)
		if !ok {
			continue
		}
		obj.Define(k, object.DataProperty(BoundMethod(obj, fn)))
	}
}

// BindLazy installs a getter-only accessor for every key as an own property
// of obj. On first read the getter resolves the original callable starting
// at the immediate prototype level, builds the receiver-fixed wrapper, and
// replaces the accessor in place with a plain data property holding it, so
// repeat reads return the identical reference. When no callable resolves,
// the accessor stays installed and reads keep yielding nil.
func (Engine) BindLazy(obj *object.Object, keys []object.Key) {
	for _, k := range keys {
		key := k
		obj.Define(key, object.AccessorProperty(func(_ *object.Object) any {
			fn, ok := lookupCallable(obj.Proto(), key)
			if !ok {
				return nil
			}
			bound := BoundMethod(obj, fn)
			obj.Define(key, object.DataProperty(bound))
			return bound
		}))
	}
}

// lookupCallable resolves key starting at the given prototype level and
// walking upward, without triggering accessors. The nearest declaration
// wins; a nearest non-callable declaration shadows deeper callables.
func lookupCallable(start *object.Object, key object.Key) (object.Callable, bool) {
	for proto := start; proto != nil; proto = proto.Proto() {
		if p, ok := proto.GetOwn(key); ok {
			return p.Callable()
		}
	}
	return nil, false
}
