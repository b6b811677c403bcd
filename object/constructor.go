package object

// InitFunc initializes a newly constructed instance.
type InitFunc func(this *Object, args ...any) error

// Constructor creates instances sharing one prototype object. It also carries
// its own static properties, independent of the prototype.
type Constructor struct {
	name    string
	proto   *Object
	init    InitFunc
	statics map[Key]Property
}

// NewConstructor returns a constructor with a fresh prototype object. With a
// nil super the prototype chains to the root; otherwise it chains to super's
// prototype so instances inherit super's methods. The prototype carries a
// `constructor` back-reference as an own, non-enumerable property.
func NewConstructor(name string, super *Constructor, init InitFunc) *Constructor {
	var parent *Object
	if super != nil {
		parent = super.proto
	}
	c := &Constructor{
		name:    name,
		proto:   NewObject(parent),
		init:    init,
		statics: make(map[Key]Property),
	}
	c.proto.Define(Name("constructor"), DataProperty(c))
	return c
}

// Derive returns a constructor with the same display name and the same
// prototype object but a different init function. Instances of the derived
// constructor therefore satisfy Instanceof checks against c. Static
// properties are not carried over.
func (c *Constructor) Derive(init InitFunc) *Constructor {
	return &Constructor{
		name:    c.name,
		proto:   c.proto,
		init:    init,
		statics: make(map[Key]Property),
	}
}

// New constructs an instance: allocates an object linked to the prototype and
// runs the init function. Init failures propagate unchanged.
func (c *Constructor) New(args ...any) (*Object, error) {
	obj := newObject(c.proto)
	if err := c.Init(obj, args...); err != nil {
		return nil, err
	}
	return obj, nil
}

// Init runs the constructor's init function against an existing instance. A
// constructor without an init function initializes nothing.
func (c *Constructor) Init(this *Object, args ...any) error {
	if c.init == nil {
		return nil
	}
	return c.init(this, args...)
}

// Name returns the constructor's display name.
func (c *Constructor) Name() string { return c.name }

// Prototype returns the prototype object shared by all instances.
func (c *Constructor) Prototype() *Object { return c.proto }

// DefineMethod declares a method on the constructor's prototype.
func (c *Constructor) DefineMethod(key Key, fn Callable) {
	c.proto.DefineMethod(key, fn)
}

// DefineStatic installs an own static property on the constructor itself.
func (c *Constructor) DefineStatic(key Key, p Property) {
	c.statics[key] = p
}

// Static returns the constructor's own static descriptor for key.
func (c *Constructor) Static(key Key) (Property, bool) {
	p, ok := c.statics[key]
	return p, ok
}

// StaticKeys returns every static property key. Order is unspecified.
func (c *Constructor) StaticKeys() []Key {
	keys := make([]Key, 0, len(c.statics))
	for k := range c.statics {
		keys = append(keys, k)
	}
	return keys
}
