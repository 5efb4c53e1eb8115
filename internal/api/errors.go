package api

//go:generate go tool stringer -type=ErrorCode -output=errorcode_string.go

// ErrorCode categorizes why a record's shape cannot be honored by the
// current phase. The pipeline core treats codes as opaque; they exist so
// diagnostics and reports can group failures.
type ErrorCode int

const (
	_ ErrorCode = iota // skip zero value, use it as a default (invalid) value for ErrorCode

	UnsupportedConstruct
	UnresolvedReference
	ShapeMismatch
	TemplatedItem
	VirtualBase
	NonPublicItem
	Blocklisted
	OpaqueType

	// ErrorCodeTotal is a constant that represents the total number of codes defined
	ErrorCodeTotal = int(iota)
)

// describe returns the user-facing sentence for a code.
func (c ErrorCode) describe() string {
	switch c {
	case UnsupportedConstruct:
		return "this construct is not yet supported"
	case UnresolvedReference:
		return "a type referred to here could not be resolved"
	case ShapeMismatch:
		return "the item does not have the shape this phase expects"
	case TemplatedItem:
		return "templated declarations cannot be bridged"
	case VirtualBase:
		return "classes with virtual bases are not supported"
	case NonPublicItem:
		return "the item is not publicly accessible"
	case Blocklisted:
		return "the item is on the blocklist"
	case OpaqueType:
		return "the underlying type is opaque and cannot be introspected"
	default:
		return "the item could not be converted"
	}
}

// ConvertError is a categorized conversion failure with value semantics:
// it can be copied unmodified into an ignored-item record and rendered
// later without losing information.
type ConvertError struct {
	Code   ErrorCode
	Detail string // optional elaboration, e.g. the unresolved name
}

// NewConvertError builds a ConvertError for code with an optional detail.
func NewConvertError(code ErrorCode, detail string) ConvertError {
	return ConvertError{Code: code, Detail: detail}
}

// Error renders the failure for humans.
func (e ConvertError) Error() string {
	if e.Detail == "" {
		return e.Code.describe()
	}

	return e.Code.describe() + ": " + e.Detail
}

// ErrorContext attributes a failure to the part of a record a user could
// act on: either a whole item or one method of a type. A nil *ErrorContext
// means there is nothing actionable to show; the failure is logged and the
// record silently dropped from the output.
type ErrorContext struct {
	selfType string // set only for method attribution
	ident    string
}

// ItemContext attributes a failure to a whole item.
func ItemContext(ident string) *ErrorContext {
	return &ErrorContext{ident: ident}
}

// MethodContext attributes a failure to one method of selfType.
func MethodContext(selfType, method string) *ErrorContext {
	return &ErrorContext{selfType: selfType, ident: method}
}

// ID returns the identifier a synthesized ignored-item record carries.
func (c *ErrorContext) ID() string {
	return c.ident
}

// IsMethod reports whether the failure is attributed to a method rather
// than a whole item.
func (c *ErrorContext) IsMethod() bool {
	return c.selfType != ""
}

// String renders "Self::method" for methods and the bare identifier
// otherwise.
func (c *ErrorContext) String() string {
	if c.selfType != "" {
		return c.selfType + "::" + c.ident
	}

	return c.ident
}
