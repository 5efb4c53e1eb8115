package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bridge-generator/internal/api"
	"bridge-generator/internal/convert"
	"bridge-generator/internal/diagnostic"
	"bridge-generator/internal/names"
	"bridge-generator/internal/report"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the conversion pipeline over a built-in sample batch",
	Long: `Converts a small built-in batch of API records through one analysis
phase, including items that deliberately fail, then prints the diagnostic
stream and the skipped-item report. Useful as an installation smoke test.`,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

// Analysis payloads attached by the selftest's single analysis phase.
type (
	fnChecked      struct{ ParamCount int }
	structChecked  struct{ FieldCount int }
	typedefChecked struct{ Aliased names.QualifiedName }
)

type (
	sampleIn  = api.Api[api.NullAnalysis, api.NullAnalysis, api.NullAnalysis]
	sampleOut = api.Api[fnChecked, structChecked, typedefChecked]
)

func runSelftest(cmd *cobra.Command, _ []string) error {
	var sink diagnostic.Sink
	if jsonLog {
		log := zap.Must(zap.NewProduction())
		defer log.Sync() //nolint:errcheck

		sink = diagnostic.NewZapSink(log)
	} else {
		sink = diagnostic.NewWriterSink(cmd.ErrOrStderr())
	}

	in := sampleBatch()

	var out []sampleOut

	convert.Apis(in, &out, sink,
		checkFunction,
		checkStruct,
		checkEnum,
		checkTypedef,
	)

	cmd.Printf("converted %d records into %d records\n", len(in), len(out))
	report.Fprint(cmd.OutOrStdout(), out)

	return nil
}

// sampleBatch builds an unanalyzed batch exercising the pass-through path,
// every rule, and both failure modes.
func sampleBatch() []sampleIn {
	demo := names.NewNamespace("demo")

	widgetPtr := names.NewQualifiedName(demo, "Widget")

	return []sampleIn{
		api.NewConst[api.NullAnalysis, api.NullAnalysis, api.NullAnalysis](
			api.NewApiName(names.NewNamespace(), "VERSION"),
			api.Const{Definition: "3"},
		),
		api.NewStruct[api.NullAnalysis, api.NullAnalysis, api.NullAnalysis](
			api.NewApiName(demo, "Widget"),
			api.StructShape{Fields: []api.Field{{Ident: "id", Type: names.NewQualifiedName(names.NewNamespace(), "int")}}},
			api.NullAnalysis{},
		),
		api.NewStruct[api.NullAnalysis, api.NullAnalysis, api.NullAnalysis](
			api.NewApiName(demo, "AbstractGadget"),
			api.StructShape{Abstract: true},
			api.NullAnalysis{},
		),
		api.NewEnum[api.NullAnalysis, api.NullAnalysis, api.NullAnalysis](
			api.NewApiName(demo, "Mode"),
			api.EnumShape{Variants: []api.EnumVariant{{Ident: "Off"}, {Ident: "On", Value: 1}}},
		),
		api.NewTypedef[api.NullAnalysis, api.NullAnalysis, api.NullAnalysis](
			api.NewApiName(demo, "WidgetHandle"),
			api.TypedefShape{Target: widgetPtr},
			nil,
			api.NullAnalysis{},
		),
		api.NewFunction[api.NullAnalysis, api.NullAnalysis, api.NullAnalysis](
			api.NewApiName(demo, "make_widget"),
			&api.FuncShape{Ident: "make_widget", ReturnType: &widgetPtr},
			api.NullAnalysis{},
			nil,
		),
		api.NewFunction[api.NullAnalysis, api.NullAnalysis, api.NullAnalysis](
			api.NewApiName(demo, "make_anything"),
			&api.FuncShape{Ident: "make_anything", Variadic: true},
			api.NullAnalysis{},
			nil,
		),
	}
}

func checkFunction(name api.ApiName, fun *api.FuncShape, _ api.NullAnalysis, renamedFrom *names.QualifiedName) ([]sampleOut, error) {
	if fun.Variadic {
		// Nothing a user can do about a variadic signature; drop silently.
		return nil, api.NewConvertError(api.UnsupportedConstruct, "variadic functions")
	}

	return []sampleOut{
		api.NewFunction[fnChecked, structChecked, typedefChecked](
			name, fun, fnChecked{ParamCount: len(fun.Params)}, renamedFrom,
		),
	}, nil
}

func checkStruct(name api.ApiName, item api.StructShape, _ api.NullAnalysis) ([]sampleOut, error) {
	if item.Abstract {
		err := api.NewConvertError(api.ShapeMismatch, "abstract classes cannot be instantiated")
		return nil, convert.WithContext(err, api.ItemContext(name.Name.Ident()))
	}

	return []sampleOut{
		api.NewStruct[fnChecked, structChecked, typedefChecked](
			name, item, structChecked{FieldCount: len(item.Fields)},
		),
	}, nil
}

func checkEnum(name api.ApiName, item api.EnumShape) ([]sampleOut, error) {
	return []sampleOut{
		api.NewEnum[fnChecked, structChecked, typedefChecked](name, item),
	}, nil
}

func checkTypedef(name api.ApiName, item api.TypedefShape, oldTypeName *names.QualifiedName, _ api.NullAnalysis) ([]sampleOut, error) {
	return []sampleOut{
		api.NewTypedef[fnChecked, structChecked, typedefChecked](
			name, item, oldTypeName, typedefChecked{Aliased: item.Target},
		),
	}, nil
}
