package autobind

import (
	"github.com/ygrebnov/autobind/constants"
	"github.com/ygrebnov/autobind/object"
)

// reservedStatics are introspection members never copied by WrapConstructor.
var reservedStatics = func() map[object.Name]struct{} {
	m := make(map[object.Name]struct{}, len(constants.ReservedStaticProperties))
	for _, n := range constants.ReservedStaticProperties {
		m[object.Name(n)] = struct{}{}
	}
	return m
}()

// WrapConstructor returns a constructor that builds instances exactly as
// ctor does and then applies Bind with the default configuration before
// handing the instance back. The wrapped constructor keeps ctor's display
// name and prototype object, so Instanceof checks against ctor still
// succeed, and carries over ctor's own static properties except the reserved
// introspection names.
func WrapConstructor(ctor *object.Constructor) *object.Constructor {
	if ctor == nil {
		return nil
	}
	wrapped := ctor.Derive(func(this *object.Object, args ...any) error {
		if err := ctor.Init(this, args...); err != nil {
			return err
		}
		Bind(this)
		return nil
	})
	for _, k := range ctor.StaticKeys() {
		if n, ok := k.(object.Name); ok {
			if _, reserved := reservedStatics[n]; reserved {
				continue
			}
		}
		if p, ok := ctor.Static(k); ok {
			wrapped.DefineStatic(k, p)
		}
	}
	return wrapped
}
