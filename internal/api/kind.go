package api

import "bridge-generator/internal/common"

// Kind discriminates the closed set of record variants. Dispatch sites
// switch over it; KindTotal lets tests sweep every defined kind so a new
// variant cannot be added without updating them.
type Kind int

const (
	KindUnknown Kind = iota

	// Pass-through kinds: payload shape is identical at every phase.
	KindConcreteType
	KindForwardDeclaration
	KindStringConstructor
	KindConst
	KindCType
	KindForeignType
	KindForeignFunction
	KindSubclassMethod
	KindSubclassConstructor
	KindSubclass
	KindIgnoredItem

	// Transformable kinds: converting them between phases needs a rule.
	KindEnum
	KindTypedef
	KindFunction
	KindStruct

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Transformable reports whether converting this kind to the next phase
// requires a conversion rule; every other kind is copied verbatim.
func (k Kind) Transformable() bool {
	switch k {
	case KindEnum, KindTypedef, KindFunction, KindStruct:
		return true
	default:
		return false
	}
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindConcreteType:
		return "concrete-type"
	case KindForwardDeclaration:
		return "forward-declaration"
	case KindStringConstructor:
		return "string-constructor"
	case KindConst:
		return "const"
	case KindCType:
		return "c-type"
	case KindForeignType:
		return "foreign-type"
	case KindForeignFunction:
		return "foreign-function"
	case KindSubclassMethod:
		return "subclass-method"
	case KindSubclassConstructor:
		return "subclass-constructor"
	case KindSubclass:
		return "subclass"
	case KindIgnoredItem:
		return "ignored-item"
	case KindEnum:
		return "enum"
	case KindTypedef:
		return "typedef"
	case KindFunction:
		return "function"
	case KindStruct:
		return "struct"
	default:
		return common.UnknownStr
	}
}
