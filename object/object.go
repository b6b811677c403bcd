// Package object implements a small prototype-based object runtime: property
// tables with prototype links, data and accessor descriptors, string and
// symbol keys, and named constructors. It is the substrate the autobind
// package operates on.
package object

import (
	"fmt"

	"github.com/ygrebnov/errorc"

	autobinderrors "github.com/ygrebnov/autobind/errors"
)

// Object is a property table with a prototype link. Lookup resolves own
// properties first, then walks the prototype chain nearest-first.
type Object struct {
	proto *Object
	props map[Key]Property
}

// NewObject returns an empty object whose prototype is proto. A nil proto
// links the object to the shared root prototype.
func NewObject(proto *Object) *Object {
	if proto == nil {
		proto = Root()
	}
	return newObject(proto)
}

func newObject(proto *Object) *Object {
	return &Object{proto: proto, props: make(map[Key]Property)}
}

// Proto returns the object's prototype; nil only for the root itself.
func (o *Object) Proto() *Object { return o.proto }

// Define installs or replaces an own property descriptor, ignoring the
// Writable flag of any existing descriptor. It refuses to replace an existing
// non-configurable property.
func (o *Object) Define(key Key, p Property) bool {
	if existing, ok := o.props[key]; ok && !existing.Configurable {
		return false
	}
	o.props[key] = p
	return true
}

// DefineMethod installs fn as a writable, configurable, non-enumerable own
// data property, the descriptor shape of a declared method.
func (o *Object) DefineMethod(key Key, fn Callable) {
	o.Define(key, DataProperty(fn))
}

// GetOwn returns the own descriptor for key without consulting the prototype
// chain and without invoking getters.
func (o *Object) GetOwn(key Key) (Property, bool) {
	p, ok := o.props[key]
	return p, ok
}

// Has reports whether key resolves anywhere on o or its prototype chain.
func (o *Object) Has(key Key) bool {
	for cur := o; cur != nil; cur = cur.proto {
		if _, ok := cur.props[key]; ok {
			return true
		}
	}
	return false
}

// Get resolves key against o and then its prototype chain, nearest first.
// Accessor properties are evaluated with o as the receiver regardless of
// which level declares them.
func (o *Object) Get(key Key) (any, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if p, ok := cur.props[key]; ok {
			if p.Get != nil {
				return p.Get(o), true
			}
			return p.Value, true
		}
	}
	return nil, false
}

// Set writes an own data property. An existing own descriptor keeps its
// flags and only has its value replaced; a new property is created as a
// plain enumerable field. Set fails when the existing own property is
// accessor-backed (the runtime has no setters) or not writable.
func (o *Object) Set(key Key, v any) bool {
	if p, ok := o.props[key]; ok {
		if p.Get != nil || !p.Writable {
			return false
		}
		p.Value = v
		o.props[key] = p
		return true
	}
	o.props[key] = FieldProperty(v)
	return true
}

// Delete removes an own property. Non-configurable properties stay; deleting
// an absent key succeeds.
func (o *Object) Delete(key Key) bool {
	p, ok := o.props[key]
	if !ok {
		return true
	}
	if !p.Configurable {
		return false
	}
	delete(o.props, key)
	return true
}

// OwnKeys returns every own property key, string and symbol alike. Order is
// unspecified.
func (o *Object) OwnKeys() []Key {
	keys := make([]Key, 0, len(o.props))
	for k := range o.props {
		keys = append(keys, k)
	}
	return keys
}

// Keys returns the enumerable own property keys. Order is unspecified.
func (o *Object) Keys() []Key {
	keys := make([]Key, 0, len(o.props))
	for k, p := range o.props {
		if p.Enumerable {
			keys = append(keys, k)
		}
	}
	return keys
}

// Call resolves key on o and invokes the result with o as the receiver.
// Failures from the callee propagate unchanged.
func (o *Object) Call(key Key, args ...any) (any, error) {
	v, ok := o.Get(key)
	if !ok {
		return nil, errorc.With(
			autobinderrors.ErrPropertyNotFound,
			errorc.String(autobinderrors.ErrorFieldPropertyKey, KeyString(key)),
		)
	}
	fn, ok := v.(Callable)
	if !ok {
		return nil, errorc.With(
			autobinderrors.ErrNotCallable,
			errorc.String(autobinderrors.ErrorFieldPropertyKey, KeyString(key)),
			errorc.String(autobinderrors.ErrorFieldValueType, fmt.Sprintf("%T", v)),
		)
	}
	return fn(o, args...)
}

// Instanceof reports whether c's prototype object appears anywhere on o's
// prototype chain.
func (o *Object) Instanceof(c *Constructor) bool {
	if c == nil {
		return false
	}
	for cur := o.proto; cur != nil; cur = cur.proto {
		if cur == c.proto {
			return true
		}
	}
	return false
}
