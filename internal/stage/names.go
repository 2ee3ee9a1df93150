package stage

// Canonical stage names. Pipeline assembly emits these; a Registry maps them
// to executable rewriters.
const (
	// Typed-syntax erasure group.
	TypeErasure          = "type-erasure"
	Decorators           = "decorators"
	ClassProperties      = "class-properties"
	ClassStaticBlocks    = "class-static-blocks"
	NumericSeparators    = "numeric-separators"
	LogicalAssignment    = "logical-assignment"
	NullishCoalescing    = "nullish-coalescing"
	OptionalChaining     = "optional-chaining"
	PrivateMethods       = "private-methods"
	JSONStrings          = "json-strings"
	OptionalCatchBinding = "optional-catch-binding"
	AsyncGenerators      = "async-generators"
	ObjectRestSpread     = "object-rest-spread"
	NamespaceExports     = "namespace-exports"

	// JSX rewrites.
	JSXClassic   = "jsx-classic"
	JSXAutomatic = "jsx-automatic"

	// Module-form rewrites.
	ModulesCommonJS        = "modules-commonjs"
	DynamicImportToRequire = "dynamic-import-to-require"
	SyntaxImportAssertions = "syntax-import-assertions"
)

// DecoratorsVersion is the stabilized decorator syntax revision the erasure
// group targets.
const DecoratorsVersion = "2022-03"
