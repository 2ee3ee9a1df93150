package pipeline

import (
	"morph/internal/dialect"
	"morph/internal/stage"
)

// Assemble builds the complete ordered stage list for one pass:
//
//	prologue ++ typed-erasure (iff typed) ++ JSX ++ module-form ++ epilogue
//
// Prologue stages run before every dialect-driven stage and epilogue stages
// after, so callers can inject cross-cutting stages (coverage
// instrumentation and the like) at either boundary without the assembler
// knowing their purpose. Assemble never mutates its inputs and resolves no
// stage names; identical inputs yield identical stage lists.
func Assemble(flags dialect.Flags, prologue, epilogue stage.List) (Spec, error) {
	if err := flags.Validate(); err != nil {
		return Spec{}, err
	}

	stages := make(stage.List, 0, len(prologue)+len(epilogue)+20)
	stages = append(stages, prologue...)
	if flags.Typed {
		stages = append(stages, erasureStages(flags)...)
	}
	stages = append(stages, jsxStage(flags))
	stages = append(stages, moduleFormStages(flags)...)
	stages = append(stages, epilogue...)

	return Spec{
		Stages: stages,
		Settings: Settings{
			NoConfigDiscovery:    true,
			SourceMaps:           SourceMapsBoth,
			Compact:              false,
			SetPublicClassFields: true,
		},
	}, nil
}

// erasureStages lowers typed-dialect syntax down to the base language. The
// order is fixed; the export-assignment inline rewrite closes the group so
// it sees the tree after every other erasure.
func erasureStages(flags dialect.Flags) stage.List {
	erasure := stage.ErasureOptions{
		KeepTypeReexports: true,
	}
	if flags.JSX == dialect.JSXClassic {
		erasure.JSXPragma = flags.Pragma()
		erasure.JSXFragmentPragma = flags.FragmentPragma()
	}
	return stage.List{
		stage.Named(stage.TypeErasure, erasure),
		stage.Named(stage.Decorators, stage.DecoratorOptions{Version: stage.DecoratorsVersion}),
		stage.Named(stage.ClassProperties, nil),
		stage.Named(stage.ClassStaticBlocks, nil),
		stage.Named(stage.NumericSeparators, nil),
		stage.Named(stage.LogicalAssignment, nil),
		stage.Named(stage.NullishCoalescing, nil),
		stage.Named(stage.OptionalChaining, nil),
		stage.Named(stage.PrivateMethods, nil),
		stage.Named(stage.JSONStrings, nil),
		stage.Named(stage.OptionalCatchBinding, nil),
		stage.Named(stage.AsyncGenerators, nil),
		stage.Named(stage.ObjectRestSpread, nil),
		stage.Named(stage.NamespaceExports, nil),
		stage.InlineStage(stage.ExportAssignRewrite()),
	}
}

// jsxStage picks exactly one JSX rewrite. JSX syntax is treated as always
// parseable; a file that declared no mode still gets the automatic rewrite
// against the default runtime.
func jsxStage(flags dialect.Flags) stage.Descriptor {
	switch flags.JSX {
	case dialect.JSXClassic:
		return stage.Named(stage.JSXClassic, stage.JSXClassicOptions{
			Factory:  flags.Pragma(),
			Fragment: flags.FragmentPragma(),
		})
	case dialect.JSXAutomatic, dialect.JSXAutomaticDev:
		return stage.Named(stage.JSXAutomatic, stage.JSXAutomaticOptions{
			ImportSource: flags.ImportSource(),
			Development:  flags.JSX == dialect.JSXAutomaticDev,
		})
	default:
		return stage.Named(stage.JSXAutomatic, stage.JSXAutomaticOptions{
			ImportSource: dialect.DefaultImportSource,
		})
	}
}

// moduleFormStages converts non-modular files to the host's synchronous
// loading form. Files already in module form only gain import-assertion
// syntax parsing, no rewrite. Style elision leads the group: it matches on
// import syntax, which the commonjs conversion rewrites away.
func moduleFormStages(flags dialect.Flags) stage.List {
	if flags.Module {
		return stage.List{
			stage.Named(stage.SyntaxImportAssertions, nil),
		}
	}
	return stage.List{
		stage.InlineStage(stage.StyleElisionRewrite()),
		stage.Named(stage.ModulesCommonJS, nil),
		stage.Named(stage.DynamicImportToRequire, nil),
	}
}
