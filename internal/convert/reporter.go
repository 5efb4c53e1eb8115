package convert

import (
	"fmt"

	"bridge-generator/internal/api"
	"bridge-generator/internal/diagnostic"
	"bridge-generator/internal/names"
)

// FuncRule converts one function record from the phase with function
// analysis FA into records of the phase with payloads FB/SB/TB. A rule
// returns the records standing in for the input item, or an error
// (optionally attributed via WithContext).
type FuncRule[FA, FB, SB, TB any] func(
	name api.ApiName,
	fun *api.FuncShape,
	analysis FA,
	renamedFrom *names.QualifiedName,
) ([]api.Api[FB, SB, TB], error)

// StructRule converts one struct record between phases.
type StructRule[SA, FB, SB, TB any] func(
	name api.ApiName,
	item api.StructShape,
	analysis SA,
) ([]api.Api[FB, SB, TB], error)

// EnumRule converts one enumeration record between phases. Enumerations
// carry no analysis payload.
type EnumRule[FB, SB, TB any] func(
	name api.ApiName,
	item api.EnumShape,
) ([]api.Api[FB, SB, TB], error)

// TypedefRule converts one typedef record between phases.
type TypedefRule[TA, FB, SB, TB any] func(
	name api.ApiName,
	item api.TypedefShape,
	oldTypeName *names.QualifiedName,
	analysis TA,
) ([]api.Api[FB, SB, TB], error)

// Apis converts a batch of records from the phase with analysis payloads
// FA/SA/TA into the phase with FB/SB/TB, appending the results to out in
// input order. Pass-through kinds are copied field-for-field; the four
// transformable kinds invoke their rule.
//
// A rule failure is confined to its input record: the failure is appended
// to the diagnostic sink, an ignored-item record takes the item's position
// when the error carries attribution, and every remaining record is still
// processed. The input batch is consumed and must not be reused; out is
// only ever appended to.
func Apis[FA, SA, TA, FB, SB, TB any](
	in []api.Api[FA, SA, TA],
	out *[]api.Api[FB, SB, TB],
	sink diagnostic.Sink,
	funcRule FuncRule[FA, FB, SB, TB],
	structRule StructRule[SA, FB, SB, TB],
	enumRule EnumRule[FB, SB, TB],
	typedefRule TypedefRule[TA, FB, SB, TB],
) {
	for _, rec := range in {
		var (
			seq []api.Api[FB, SB, TB]
			err error
		)

		switch rec.Kind {
		case api.KindConcreteType,
			api.KindForwardDeclaration,
			api.KindStringConstructor,
			api.KindConst,
			api.KindCType,
			api.KindForeignType,
			api.KindForeignFunction,
			api.KindSubclassMethod,
			api.KindSubclassConstructor,
			api.KindSubclass,
			api.KindIgnoredItem:
			seq = []api.Api[FB, SB, TB]{passThrough[FA, SA, TA, FB, SB, TB](rec)}
		case api.KindEnum:
			seq, err = enumRule(rec.Name, rec.Enum.Item)
		case api.KindTypedef:
			seq, err = typedefRule(rec.Name, rec.Typedef.Item, rec.Typedef.OldTypeName, rec.Typedef.Analysis)
		case api.KindFunction:
			seq, err = funcRule(rec.Name, rec.Function.Fun, rec.Function.Analysis, rec.Function.RenamedFrom)
		case api.KindStruct:
			seq, err = structRule(rec.Name, rec.Struct.Item, rec.Struct.Analysis)
		default:
			panic(fmt.Sprintf("convert: record %q has unhandled kind %d", rec.QualifiedName(), rec.Kind))
		}

		*out = append(*out, materialize(rec.QualifiedName(), seq, err, sink)...)
	}
}

// ItemApis converts a batch with one uniform rule over whole records.
// Every error the rule raises is attributed to the item itself, then
// handled by the same policy as Apis.
func ItemApis[FA, SA, TA, FB, SB, TB any](
	in []api.Api[FA, SA, TA],
	out *[]api.Api[FB, SB, TB],
	sink diagnostic.Sink,
	rule func(api.Api[FA, SA, TA]) ([]api.Api[FB, SB, TB], error),
) {
	for _, rec := range in {
		name := rec.QualifiedName()

		seq, err := rule(rec)
		if err != nil {
			err = WithContext(err, api.ItemContext(name.Ident()))
		}

		*out = append(*out, materialize(name, seq, err, sink)...)
	}
}

// Report runs fn, an operation that yields a value rather than records but
// may still fail per item. On success the value is returned with ok=true.
// On failure the problem is logged and, when the error carries
// attribution, documented as an ignored-item record appended to out; the
// failure is fully handled here and never re-raised, so ok=false is the
// only signal the caller sees.
//
// The log name is built from ns plus the attributed identifier, or the
// literal "item" when no attribution exists.
func Report[T, F, S, TD any](
	ns names.Namespace,
	out *[]api.Api[F, S, TD],
	sink diagnostic.Sink,
	fn func() (T, error),
) (T, bool) {
	val, err := fn()
	if err == nil {
		return val, true
	}

	ident := "item"
	if _, ctx := splitContext(err); ctx != nil {
		ident = ctx.ID()
	}

	*out = append(*out, materialize[F, S, TD](names.NewQualifiedName(ns, ident), nil, err, sink)...)

	var zero T

	return zero, false
}

// materialize is the single policy that turns a conversion outcome into
// appended records plus diagnostics. Success returns seq unchanged. A
// failure appends one diagnostic line; with attribution it additionally
// yields one ignored-item record whose identity combines the namespace of
// name with the identifier carried by the attribution. Equal inputs
// produce structurally equal results.
func materialize[F, S, T any](
	name names.QualifiedName,
	seq []api.Api[F, S, T],
	err error,
	sink diagnostic.Sink,
) []api.Api[F, S, T] {
	if err == nil {
		return seq
	}

	cause, ctx := splitContext(err)

	sink.Append(diagnostic.Diagnostic{
		Name:    name.String(),
		Message: cause.Error(),
		Code:    errorCode(cause),
	})

	if ctx == nil {
		return nil
	}

	return []api.Api[F, S, T]{api.NewIgnoredItem[F, S, T](name.Namespace(), ctx, cause)}
}

// passThrough copies a phase-independent record field-for-field into the
// next phase's record type.
func passThrough[FA, SA, TA, FB, SB, TB any](rec api.Api[FA, SA, TA]) api.Api[FB, SB, TB] {
	return api.Api[FB, SB, TB]{
		Kind:                rec.Kind,
		Name:                rec.Name,
		ConcreteType:        rec.ConcreteType,
		Const:               rec.Const,
		CType:               rec.CType,
		ForeignType:         rec.ForeignType,
		ForeignFn:           rec.ForeignFn,
		SubclassMethod:      rec.SubclassMethod,
		SubclassConstructor: rec.SubclassConstructor,
		Subclass:            rec.Subclass,
		Ignored:             rec.Ignored,
	}
}
