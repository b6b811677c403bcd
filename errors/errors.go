package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/autobind/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	ErrNotCallable      = namespace.NewError("descriptor value is not callable")
	ErrPropertyNotFound = namespace.NewError("property not found")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentProperty    = "property"
	keySegmentConstructor = "constructor"
)

// Exported structured error field keys.
var (
	ErrorFieldPropertyKey = newKey("key", keySegmentProperty)        // autobind.property.key
	ErrorFieldValueType   = newKey("value_type", keySegmentProperty) // autobind.property.value_type
)

var (
	ErrorFieldConstructorName = newKey("name", keySegmentConstructor) // autobind.constructor.name
)
