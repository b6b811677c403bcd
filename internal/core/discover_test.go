package core

import (
	"testing"

	"github.com/ygrebnov/autobind/object"
)

func noopMethod(*object.Object, ...any) (any, error) { return nil, nil }

func keySlice(keys []object.Key) map[object.Key]struct{} {
	return keySet(keys)
}

func TestEngine_MethodKeys(t *testing.T) {
	eng := NewEngine()

	t.Run("nil object", func(t *testing.T) {
		if got := eng.MethodKeys(nil); got != nil {
			t.Fatalf("MethodKeys(nil) = %v, want nil", got)
		}
	})

	t.Run("collects across levels and deduplicates", func(t *testing.T) {
		grandparent := object.NewObject(nil)
		grandparent.DefineMethod(object.Name("deep"), noopMethod)
		grandparent.DefineMethod(object.Name("shared"), noopMethod)
		parent := object.NewObject(grandparent)
		parent.DefineMethod(object.Name("shared"), noopMethod)
		parent.DefineMethod(object.Name("near"), noopMethod)
		o := object.NewObject(parent)

		got := keySlice(eng.MethodKeys(o))
		want := []object.Key{object.Name("deep"), object.Name("shared"), object.Name("near")}
		if len(got) != len(want) {
			t.Fatalf("MethodKeys = %v, want %v", got, want)
		}
		for _, k := range want {
			if _, ok := got[k]; !ok {
				t.Fatalf("MethodKeys missing %v", k)
			}
		}
	})

	t.Run("skips constructor and non-callables", func(t *testing.T) {
		ctor := object.NewConstructor("Widget", nil, nil)
		ctor.DefineMethod(object.Name("spin"), noopMethod)
		ctor.Prototype().Define(object.Name("label"), object.DataProperty("plain"))
		ctor.Prototype().Define(object.Name("computed"), object.AccessorProperty(func(*object.Object) any {
			return object.Callable(noopMethod)
		}))
		o, _ := ctor.New()

		got := eng.MethodKeys(o)
		if len(got) != 1 || got[0] != object.Name("spin") {
			t.Fatalf("MethodKeys = %v, want [spin]", got)
		}
	})

	t.Run("symbol keys are discovered", func(t *testing.T) {
		sym := object.NewSymbol("hook")
		proto := object.NewObject(nil)
		proto.DefineMethod(sym, noopMethod)
		o := object.NewObject(proto)

		got := eng.MethodKeys(o)
		if len(got) != 1 || got[0] != object.Key(sym) {
			t.Fatalf("MethodKeys = %v, want the symbol key", got)
		}
	})

	t.Run("root members are never discovered", func(t *testing.T) {
		o := object.NewObject(nil)
		if got := eng.MethodKeys(o); len(got) != 0 {
			t.Fatalf("MethodKeys = %v, want none for a plain object", got)
		}
	})

	t.Run("built-in root names below the root are excluded", func(t *testing.T) {
		proto := object.NewObject(nil)
		proto.DefineMethod(object.Name("toString"), noopMethod)
		proto.DefineMethod(object.Name("__defineGetter__"), noopMethod)
		proto.DefineMethod(object.Name("real"), noopMethod)
		o := object.NewObject(proto)

		got := eng.MethodKeys(o)
		if len(got) != 1 || got[0] != object.Name("real") {
			t.Fatalf("MethodKeys = %v, want [real]", got)
		}
	})

	t.Run("own instance properties are not discovered", func(t *testing.T) {
		proto := object.NewObject(nil)
		proto.DefineMethod(object.Name("m"), noopMethod)
		o := object.NewObject(proto)
		o.DefineMethod(object.Name("ownOnly"), noopMethod)

		got := eng.MethodKeys(o)
		if len(got) != 1 || got[0] != object.Name("m") {
			t.Fatalf("MethodKeys = %v, want [m]; discovery starts above the instance", got)
		}
	})
}
