package object

import (
	"errors"
	"testing"
)

func newCounterConstructor() *Constructor {
	ctor := NewConstructor("Counter", nil, func(this *Object, args ...any) error {
		start := 0
		if len(args) > 0 {
			n, ok := args[0].(int)
			if !ok {
				return errors.New("start must be an int")
			}
			start = n
		}
		this.Set(Name("count"), start)
		return nil
	})
	ctor.DefineMethod(Name("increment"), func(this *Object, _ ...any) (any, error) {
		n, _ := this.Get(Name("count"))
		next := n.(int) + 1
		this.Set(Name("count"), next)
		return next, nil
	})
	return ctor
}

func TestConstructor_New(t *testing.T) {
	ctor := newCounterConstructor()

	t.Run("constructs and initializes", func(t *testing.T) {
		c, err := ctor.New(5)
		if err != nil {
			t.Fatalf("New unexpected error: %v", err)
		}
		if c.Proto() != ctor.Prototype() {
			t.Fatalf("instance proto is not the constructor prototype")
		}
		got, _ := c.Get(Name("count"))
		if got != 5 {
			t.Fatalf("count = %v, want 5", got)
		}
	})

	t.Run("init failure propagates", func(t *testing.T) {
		_, err := ctor.New("zero")
		if err == nil {
			t.Fatalf("expected init error")
		}
	})

	t.Run("methods resolve through the prototype", func(t *testing.T) {
		c, _ := ctor.New()
		got, err := c.Call(Name("increment"))
		if err != nil || got != 1 {
			t.Fatalf("increment = %v, %v; want 1", got, err)
		}
	})

	t.Run("instanceof", func(t *testing.T) {
		c, _ := ctor.New()
		if !c.Instanceof(ctor) {
			t.Fatalf("expected instance of Counter")
		}
		if c.Instanceof(newCounterConstructor()) {
			t.Fatalf("unrelated constructor must not match")
		}
	})
}

func TestConstructor_Inheritance(t *testing.T) {
	base := NewConstructor("Base", nil, func(this *Object, _ ...any) error {
		this.Set(Name("kind"), "base")
		return nil
	})
	base.DefineMethod(Name("describe"), func(this *Object, _ ...any) (any, error) {
		kind, _ := this.Get(Name("kind"))
		return kind, nil
	})

	derived := NewConstructor("Derived", base, func(this *Object, _ ...any) error {
		this.Set(Name("kind"), "derived")
		return nil
	})

	d, err := derived.New()
	if err != nil {
		t.Fatalf("New unexpected error: %v", err)
	}
	if !d.Instanceof(base) || !d.Instanceof(derived) {
		t.Fatalf("derived instance must satisfy both constructors")
	}
	got, err := d.Call(Name("describe"))
	if err != nil || got != "derived" {
		t.Fatalf("describe = %v, %v; most-derived state must win", got, err)
	}
}

func TestConstructor_Derive(t *testing.T) {
	ctor := newCounterConstructor()
	ctor.DefineStatic(Name("version"), DataProperty("1.0"))

	derived := ctor.Derive(func(this *Object, args ...any) error {
		if err := ctor.Init(this, args...); err != nil {
			return err
		}
		this.Set(Name("derived"), true)
		return nil
	})

	if derived.Name() != ctor.Name() {
		t.Fatalf("Derive must keep the display name")
	}
	if derived.Prototype() != ctor.Prototype() {
		t.Fatalf("Derive must share the prototype object")
	}
	if _, ok := derived.Static(Name("version")); ok {
		t.Fatalf("Derive must not carry statics over")
	}

	d, err := derived.New(3)
	if err != nil {
		t.Fatalf("New unexpected error: %v", err)
	}
	if !d.Instanceof(ctor) {
		t.Fatalf("derived constructor instances must satisfy the original")
	}
	count, _ := d.Get(Name("count"))
	flagged, _ := d.Get(Name("derived"))
	if count != 3 || flagged != true {
		t.Fatalf("count = %v, derived = %v; want 3, true", count, flagged)
	}
}

func TestConstructor_PrototypeConstructorProperty(t *testing.T) {
	ctor := newCounterConstructor()
	p, ok := ctor.Prototype().GetOwn(Name("constructor"))
	if !ok {
		t.Fatalf("prototype must carry a constructor back-reference")
	}
	if p.Enumerable {
		t.Fatalf("constructor back-reference must not be enumerable")
	}
	if p.Value != any(ctor) {
		t.Fatalf("constructor back-reference points at the wrong constructor")
	}
	if p.IsCallable() {
		t.Fatalf("constructor back-reference must not be treated as callable")
	}
}
