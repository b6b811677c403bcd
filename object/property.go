package object

import "fmt"

// Key identifies a property on an Object. Exactly two kinds exist: Name, a
// plain string key, and *Symbol, an identity-keyed symbolic key.
type Key interface {
	propertyKey()
}

// Name is a string-valued property key.
type Name string

func (Name) propertyKey() {}

func (n Name) String() string { return string(n) }

// Symbol is a symbolic property key. Two symbols are equal only when they are
// the same allocation; the description is informational.
type Symbol struct {
	description string
}

// NewSymbol returns a fresh symbol with the given description.
func NewSymbol(description string) *Symbol {
	return &Symbol{description: description}
}

func (*Symbol) propertyKey() {}

// Description returns the label the symbol was created with.
func (s *Symbol) Description() string { return s.description }

func (s *Symbol) String() string { return "Symbol(" + s.description + ")" }

// KeyString renders a key for diagnostics.
func KeyString(k Key) string {
	switch v := k.(type) {
	case Name:
		return string(v)
	case *Symbol:
		return v.String()
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%v", k)
}

// Callable is the only value kind the runtime treats as callable. It receives
// the receiver it was invoked through and the call arguments.
type Callable func(this *Object, args ...any) (any, error)

// Getter computes an accessor property's value for the given receiver.
type Getter func(receiver *Object) any

// Property describes one own property: either a data property (Value set,
// Get nil) or a getter-backed accessor (Get set, Value ignored).
type Property struct {
	Value        any
	Get          Getter
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// IsAccessor reports whether p is getter-backed.
func (p Property) IsAccessor() bool { return p.Get != nil }

// IsCallable reports whether p is a data property holding a Callable.
func (p Property) IsCallable() bool {
	_, ok := p.Callable()
	return ok
}

// Callable returns p's value as a Callable when p is a callable data property.
func (p Property) Callable() (Callable, bool) {
	if p.Get != nil {
		return nil, false
	}
	fn, ok := p.Value.(Callable)
	return fn, ok
}

// DataProperty returns a writable, configurable, non-enumerable data
// descriptor: the shape of declared methods and of installed bound methods.
func DataProperty(v any) Property {
	return Property{Value: v, Writable: true, Configurable: true}
}

// AccessorProperty returns a configurable, non-enumerable getter-only
// descriptor.
func AccessorProperty(get Getter) Property {
	return Property{Get: get, Configurable: true}
}

// FieldProperty returns a writable, enumerable, configurable data descriptor:
// the shape Set produces for plain fields.
func FieldProperty(v any) Property {
	return Property{Value: v, Writable: true, Enumerable: true, Configurable: true}
}
