package autobind

import (
	"fmt"

	"github.com/ygrebnov/errorc"

	autobinderrors "github.com/ygrebnov/autobind/errors"
	"github.com/ygrebnov/autobind/internal/core"
	"github.com/ygrebnov/autobind/object"
)

// WrapMethod adapts one method descriptor declared on owner into a
// self-binding accessor. Reading the member through any receiver other than
// owner builds a wrapper fixed to that receiver and memoizes it onto the
// receiver as an own, non-enumerable, writable property, so repeat reads
// from the same receiver yield the identical reference. Reading through
// owner itself returns the unbound original. The returned descriptor keeps
// the original's Enumerable flag; it fails with ErrNotCallable when the
// descriptor's value is not callable.
//
// The intended use is replacing a method on a prototype:
//
//	desc, _ := proto.GetOwn(key)
//	wrapped, err := autobind.WrapMethod(proto, key, desc)
//	if err == nil {
//		proto.Define(key, wrapped)
//	}
func WrapMethod(owner *object.Object, key object.Key, desc object.Property) (object.Property, error) {
	fn, ok := desc.Callable()
	if !ok {
		return object.Property{}, errorc.With(
			autobinderrors.ErrNotCallable,
			errorc.String(autobinderrors.ErrorFieldPropertyKey, object.KeyString(key)),
			errorc.String(autobinderrors.ErrorFieldValueType, fmt.Sprintf("%T", desc.Value)),
		)
	}
	wrapped := object.AccessorProperty(func(receiver *object.Object) any {
		if receiver == owner {
			return fn
		}
		bound := core.BoundMethod(receiver, fn)
		receiver.Define(key, object.DataProperty(bound))
		return bound
	})
	wrapped.Enumerable = desc.Enumerable
	return wrapped, nil
}
