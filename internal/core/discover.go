package core

import "github.com/ygrebnov/autobind/object"

// MethodKeys walks obj's prototype chain, nearest level first, stopping
// before the shared root prototype, and returns the callable member keys.
// Keys are deduplicated across levels; only data properties holding a
// Callable qualify, so accessor members never appear. The `constructor`
// back-reference and the fixed universal-root names are excluded even when a
// level below the root declares them.
func (Engine) MethodKeys(obj *object.Object) []object.Key {
	if obj == nil {
		return nil
	}
	var keys []object.Key
	seen := make(map[object.Key]struct{})
	for proto := obj.Proto(); proto != nil && proto != object.Root(); proto = proto.Proto() {
		for _, k := range proto.OwnKeys() {
			if k == object.Name("constructor") || isBuiltinRootMethod(k) {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			p, _ := proto.GetOwn(k)
			if !p.IsCallable() {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}
