package autobind

import (
	"github.com/ygrebnov/autobind/constants"
	"github.com/ygrebnov/autobind/object"
)

// BindComponent is Bind with the common UI-component lifecycle hook names
// merged into the exclude list. The framework invokes those hooks itself, so
// rebinding their receiver is never useful; they stay excluded even when the
// caller's own options do not mention them. All other options pass through
// unchanged.
func BindComponent(obj *object.Object, opts ...Option) *object.Object {
	merged := make([]Option, 0, len(opts)+1)
	merged = append(merged, WithExclude(lifecycleKeys()...))
	merged = append(merged, opts...)
	return Bind(obj, merged...)
}

func lifecycleKeys() []object.Key {
	keys := make([]object.Key, 0, len(constants.LifecycleMethods))
	for _, n := range constants.LifecycleMethods {
		keys = append(keys, object.Name(n))
	}
	return keys
}
