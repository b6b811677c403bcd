package object

import "fmt"

var root = buildRoot()

// Root returns the shared root prototype, the terminal ancestor of every
// object created with a nil prototype. Its members are universal and are
// never discovered or bound by autobind.
func Root() *Object { return root }

func buildRoot() *Object {
	r := newObject(nil)
	r.DefineMethod(Name("toString"), func(this *Object, _ ...any) (any, error) {
		return fmt.Sprintf("[object %p]", this), nil
	})
	r.DefineMethod(Name("toLocaleString"), func(this *Object, args ...any) (any, error) {
		return this.Call(Name("toString"), args...)
	})
	r.DefineMethod(Name("valueOf"), func(this *Object, _ ...any) (any, error) {
		return this, nil
	})
	r.DefineMethod(Name("hasOwnProperty"), func(this *Object, args ...any) (any, error) {
		k, ok := argKey(args)
		if !ok {
			return false, nil
		}
		_, ok = this.GetOwn(k)
		return ok, nil
	})
	r.DefineMethod(Name("isPrototypeOf"), func(this *Object, args ...any) (any, error) {
		if len(args) == 0 {
			return false, nil
		}
		other, ok := args[0].(*Object)
		if !ok {
			return false, nil
		}
		for cur := other.proto; cur != nil; cur = cur.proto {
			if cur == this {
				return true, nil
			}
		}
		return false, nil
	})
	r.DefineMethod(Name("propertyIsEnumerable"), func(this *Object, args ...any) (any, error) {
		k, ok := argKey(args)
		if !ok {
			return false, nil
		}
		p, ok := this.GetOwn(k)
		return ok && p.Enumerable, nil
	})
	return r
}

// argKey interprets the first argument as a property key; plain strings are
// accepted as Name keys.
func argKey(args []any) (Key, bool) {
	if len(args) == 0 {
		return nil, false
	}
	switch k := args[0].(type) {
	case Key:
		return k, true
	case string:
		return Name(k), true
	}
	return nil, false
}
