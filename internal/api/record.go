package api

import "bridge-generator/internal/names"

// NullAnalysis is the analysis payload of a phase that has not analyzed a
// given kind yet. A fully unanalyzed record batch uses it for all three
// payload slots.
type NullAnalysis struct{}

// ApiName names one record: the fully qualified identity used throughout
// the pipeline plus, when it differs, the original spelling in the foreign
// source.
type ApiName struct {
	Name names.QualifiedName
	// SourceName is the foreign spelling, empty when identical to the
	// final identifier of Name.
	SourceName string
}

// NewApiName builds a plain ApiName for id inside ns.
func NewApiName(ns names.Namespace, id string) ApiName {
	return ApiName{Name: names.NewQualifiedName(ns, id)}
}

// ConcreteType pins a template instantiation to concrete definitions on
// both sides of the bridge.
type ConcreteType struct {
	HostDefinition    string
	ForeignDefinition string
}

// Const is a foreign constant exposed verbatim to the host language.
type Const struct {
	Definition string
}

// CType is a C-level type alias such as size_t.
type CType struct {
	TypeName names.QualifiedName
}

// ForeignType references a type that already exists in the host runtime.
type ForeignType struct {
	HostPath string
}

// ForeignFunction references a function that already exists in the host
// runtime.
type ForeignFunction struct {
	HostPath  string
	Signature string
}

// SubclassMethod is a host-side override hook generated for a subclass.
type SubclassMethod struct {
	Subclass names.QualifiedName
	Method   FuncShape
}

// SubclassConstructor is the foreign-side constructor shim of a subclass.
type SubclassConstructor struct {
	Subclass    names.QualifiedName
	ForeignImpl FuncShape
	IsTrivial   bool
}

// Subclass declares a host-side subclass of a foreign type.
type Subclass struct {
	Superclass names.QualifiedName
}

// IgnoredItem documents a conversion failure so later stages can render it
// for users. It is terminal: valid at every phase, always passed through,
// never re-converted.
type IgnoredItem struct {
	Err error
	Ctx *ErrorContext
}

// Enum is the transformable payload of an enumeration.
type Enum struct {
	Item EnumShape
}

// Typedef is the transformable payload of a type alias; T is the phase's
// typedef analysis.
type Typedef[T any] struct {
	Item TypedefShape
	// OldTypeName is the previous qualified name of the aliased type,
	// when a prior phase renamed it.
	OldTypeName *names.QualifiedName
	Analysis    T
}

// Function is the transformable payload of a function; F is the phase's
// function analysis.
type Function[F any] struct {
	Fun      *FuncShape
	Analysis F
	// RenamedFrom is the identity the function had before overload
	// disambiguation renamed it, if any.
	RenamedFrom *names.QualifiedName
}

// Struct is the transformable payload of a struct or class; S is the
// phase's struct analysis.
type Struct[S any] struct {
	Item     StructShape
	Analysis S
}

// Api is one record of the API description at a particular pipeline phase.
// The type parameters F, S and T are the analysis payloads the phase
// attaches to functions, structs and typedefs; all pass-through payloads
// are structurally independent of them.
//
// Exactly one payload field, the one matching Kind, is set (none for the
// payload-less forward-declaration and string-constructor kinds). Records
// are immutable by convention: phase transitions build new values and
// never modify old ones.
type Api[F, S, T any] struct {
	Kind Kind
	Name ApiName

	// Pass-through payloads.
	ConcreteType        *ConcreteType
	Const               *Const
	CType               *CType
	ForeignType         *ForeignType
	ForeignFn           *ForeignFunction
	SubclassMethod      *SubclassMethod
	SubclassConstructor *SubclassConstructor
	Subclass            *Subclass
	Ignored             *IgnoredItem

	// Transformable payloads.
	Enum     *Enum
	Typedef  *Typedef[T]
	Function *Function[F]
	Struct   *Struct[S]
}

// QualifiedName returns the record's own fully qualified identity.
func (a Api[F, S, T]) QualifiedName() names.QualifiedName {
	return a.Name.Name
}

// Namespace returns the namespace of the record's own identity.
func (a Api[F, S, T]) Namespace() names.Namespace {
	return a.Name.Name.Namespace()
}

// NewConcreteType builds a concrete-type record.
func NewConcreteType[F, S, T any](name ApiName, payload ConcreteType) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindConcreteType, Name: name, ConcreteType: &payload}
}

// NewForwardDeclaration builds a forward-declaration record.
func NewForwardDeclaration[F, S, T any](name ApiName) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindForwardDeclaration, Name: name}
}

// NewStringConstructor builds a string-constructor record.
func NewStringConstructor[F, S, T any](name ApiName) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindStringConstructor, Name: name}
}

// NewConst builds a constant record.
func NewConst[F, S, T any](name ApiName, payload Const) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindConst, Name: name, Const: &payload}
}

// NewCType builds a C-level type alias record.
func NewCType[F, S, T any](name ApiName, payload CType) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindCType, Name: name, CType: &payload}
}

// NewForeignType builds a foreign-runtime type reference record.
func NewForeignType[F, S, T any](name ApiName, payload ForeignType) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindForeignType, Name: name, ForeignType: &payload}
}

// NewForeignFunction builds a foreign-runtime function reference record.
func NewForeignFunction[F, S, T any](name ApiName, payload ForeignFunction) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindForeignFunction, Name: name, ForeignFn: &payload}
}

// NewSubclassMethod builds a subclass method record.
func NewSubclassMethod[F, S, T any](name ApiName, payload SubclassMethod) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindSubclassMethod, Name: name, SubclassMethod: &payload}
}

// NewSubclassConstructor builds a subclass constructor record.
func NewSubclassConstructor[F, S, T any](name ApiName, payload SubclassConstructor) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindSubclassConstructor, Name: name, SubclassConstructor: &payload}
}

// NewSubclass builds a subclass declaration record.
func NewSubclass[F, S, T any](name ApiName, payload Subclass) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindSubclass, Name: name, Subclass: &payload}
}

// NewIgnoredItem builds the terminal record documenting a conversion
// failure. Its identity combines the original record's namespace with the
// identifier the error context attributes the failure to.
func NewIgnoredItem[F, S, T any](ns names.Namespace, ctx *ErrorContext, err error) Api[F, S, T] {
	return Api[F, S, T]{
		Kind:    KindIgnoredItem,
		Name:    NewApiName(ns, ctx.ID()),
		Ignored: &IgnoredItem{Err: err, Ctx: ctx},
	}
}

// NewEnum builds an enumeration record.
func NewEnum[F, S, T any](name ApiName, item EnumShape) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindEnum, Name: name, Enum: &Enum{Item: item}}
}

// NewTypedef builds a typedef record carrying the phase's typedef analysis.
func NewTypedef[F, S, T any](name ApiName, item TypedefShape, oldTypeName *names.QualifiedName, analysis T) Api[F, S, T] {
	return Api[F, S, T]{
		Kind: KindTypedef,
		Name: name,
		Typedef: &Typedef[T]{
			Item:        item,
			OldTypeName: oldTypeName,
			Analysis:    analysis,
		},
	}
}

// NewFunction builds a function record carrying the phase's function
// analysis.
func NewFunction[F, S, T any](name ApiName, fun *FuncShape, analysis F, renamedFrom *names.QualifiedName) Api[F, S, T] {
	return Api[F, S, T]{
		Kind: KindFunction,
		Name: name,
		Function: &Function[F]{
			Fun:         fun,
			Analysis:    analysis,
			RenamedFrom: renamedFrom,
		},
	}
}

// NewStruct builds a struct record carrying the phase's struct analysis.
func NewStruct[F, S, T any](name ApiName, item StructShape, analysis S) Api[F, S, T] {
	return Api[F, S, T]{Kind: KindStruct, Name: name, Struct: &Struct[S]{Item: item, Analysis: analysis}}
}
