package api

import "bridge-generator/internal/names"

// Param is one function parameter as parsed from the foreign header.
type Param struct {
	Ident string
	Type  names.QualifiedName
}

// FuncShape carries everything later phases need to re-analyze a function:
// the parsed signature plus the flags that affect how it can be bridged.
type FuncShape struct {
	Ident      string
	Receiver   *names.QualifiedName // non-nil for methods
	Params     []Param
	ReturnType *names.QualifiedName // nil for void
	Virtual    bool
	Variadic   bool
}

// Field is one data member of a struct or class.
type Field struct {
	Ident string
	Type  names.QualifiedName
}

// StructShape is the parsed declaration of a struct or class.
type StructShape struct {
	Fields   []Field
	Abstract bool
}

// EnumVariant is one enumerator with its resolved value.
type EnumVariant struct {
	Ident string
	Value int64
}

// EnumShape is the parsed declaration of an enumeration.
type EnumShape struct {
	Variants []EnumVariant
}

// TypedefShape records what a typedef aliases.
type TypedefShape struct {
	Target names.QualifiedName
}
