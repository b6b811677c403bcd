package autobind

import autobinderrors "github.com/ygrebnov/autobind/errors"

// Sentinel errors re-exported for callers of the root package. Use errors.Is
// to match.
var (
	// ErrNotCallable reports that WrapMethod was applied to a descriptor
	// whose value is not callable, or that a callable lookup resolved to a
	// non-callable value.
	ErrNotCallable = autobinderrors.ErrNotCallable
	// ErrPropertyNotFound reports that a property lookup found nothing on
	// the object or anywhere on its prototype chain.
	ErrPropertyNotFound = autobinderrors.ErrPropertyNotFound
)
