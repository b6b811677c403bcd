package constants

const Namespace = "autobind"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// BuiltinRootMethods are string-keyed universal-root member names that are
// never discovered or bound, even when a prototype below the root declares
// them. Symbol keys are never checked against this list.
var BuiltinRootMethods = []string{
	"constructor",
	"toString",
	"toLocaleString",
	"valueOf",
	"hasOwnProperty",
	"isPrototypeOf",
	"propertyIsEnumerable",
	"__defineGetter__",
	"__defineSetter__",
	"__lookupGetter__",
	"__lookupSetter__",
}

// LifecycleMethods are the UI-component lifecycle hook names that
// BindComponent merges into the exclude list. The framework invokes these
// itself, so they must keep their late-bound receiver.
var LifecycleMethods = []string{
	"componentWillMount",
	"componentDidMount",
	"componentWillReceiveProps",
	"shouldComponentUpdate",
	"componentWillUpdate",
	"componentDidUpdate",
	"componentWillUnmount",
	"componentDidCatch",
	"getSnapshotBeforeUpdate",
	"getDerivedStateFromProps",
	"render",
	"setState",
	"forceUpdate",
}

// ReservedStaticProperties are constructor introspection member names the
// construction wrapper never copies onto the wrapped constructor.
var ReservedStaticProperties = []string{
	"length",
	"name",
	"prototype",
	"caller",
	"arguments",
}
