package catalog

import (
	"github.com/sambacha/rules-closure/internal/policy"
	"github.com/sambacha/rules-closure/internal/types"
)

// Categories used by the built-in catalog
const (
	CategoryAccessControls    types.Category = "accessControls"
	CategoryCheckTypes        types.Category = "checkTypes"
	CategoryConst             types.Category = "const"
	CategoryDeprecated        types.Category = "deprecated"
	CategoryDuplicate         types.Category = "duplicate"
	CategoryES5Strict         types.Category = "es5Strict"
	CategoryExtraRequire      types.Category = "extraRequire"
	CategoryLintChecks        types.Category = "lintChecks"
	CategoryMissingProperties types.Category = "missingProperties"
	CategoryMissingProvide    types.Category = "missingProvide"
	CategoryMissingRequire    types.Category = "missingRequire"
	CategoryMissingReturn     types.Category = "missingReturn"
	CategoryNonStandardJsDocs types.Category = "nonStandardJsDocs"
	CategorySuspiciousCode    types.Category = "suspiciousCode"
	CategoryUndefinedVars     types.Category = "undefinedVars"
	CategoryUnknownDefines    types.Category = "unknownDefines"
	CategoryUselessCode       types.Category = "uselessCode"
	CategoryVisibility        types.Category = "visibility"
)

var builtinEntries = []*Entry{
	{"JSC_BAD_PRIVATE_PROPERTY_ACCESS", CategoryVisibility, "Access to a private property from outside its file"},
	{"JSC_BAD_PROTECTED_PROPERTY_ACCESS", CategoryVisibility, "Access to a protected property from outside its class hierarchy"},
	{"JSC_CONSTANT_REASSIGNED_VALUE_ERROR", CategoryConst, "A @const variable is assigned more than once"},
	{"JSC_DEPRECATED_CLASS", CategoryDeprecated, "Use of a class marked @deprecated"},
	{"JSC_DEPRECATED_PROP", CategoryDeprecated, "Use of a property marked @deprecated"},
	{"JSC_DEPRECATED_VAR", CategoryDeprecated, "Use of a variable marked @deprecated"},
	{"JSC_DUPLICATE_REQUIRE", CategoryLintChecks, "The same namespace is required twice"},
	{"JSC_EXTRA_REQUIRE_WARNING", CategoryExtraRequire, "A goog.require is never used"},
	{"JSC_FUNCTION_MASKS_VARIABLE", CategoryDuplicate, "A function declaration shadows a variable"},
	{"JSC_ILLEGAL_PROPERTY_ACCESS", CategoryAccessControls, "Access to a property that is not allowed here"},
	{"JSC_INEXISTENT_PROPERTY", CategoryMissingProperties, "Property is never defined on the type"},
	{"JSC_INVALID_PARAM_TYPE", CategoryCheckTypes, "Function called with an argument of the wrong type"},
	{"JSC_MISSING_JSDOC", CategoryLintChecks, "Function or property is missing a JSDoc comment"},
	{"JSC_MISSING_PROVIDE_ERROR", CategoryMissingProvide, "A required namespace is never provided"},
	{"JSC_MISSING_REQUIRE_WARNING", CategoryMissingRequire, "A namespace is used without being required"},
	{"JSC_MISSING_RETURN_STATEMENT", CategoryMissingReturn, "A function with a declared return type may not return"},
	{"JSC_MUST_BE_PRIVATE", CategoryLintChecks, "A property whose name ends in an underscore is not private"},
	{"JSC_NON_STANDARD_JSDOC", CategoryNonStandardJsDocs, "JSDoc uses an annotation the compiler does not recognize"},
	{"JSC_SUPERFLUOUS_SUPPRESS", CategoryLintChecks, "A @suppress annotation suppresses nothing"},
	{"JSC_SUSPICIOUS_SEMICOLON", CategorySuspiciousCode, "A semicolon immediately follows a control statement"},
	{"JSC_TYPE_MISMATCH", CategoryCheckTypes, "Value assigned to a variable of an incompatible type"},
	{"JSC_UNDEFINED_VARIABLE", CategoryUndefinedVars, "A variable is referenced but never declared"},
	{"JSC_UNKNOWN_DEFINE_WARNING", CategoryUnknownDefines, "A --define flag names an unknown @define"},
	{"JSC_UNRECOGNIZED_TYPE_ERROR", CategoryCheckTypes, "A type annotation names an unknown type"},
	{"JSC_UNUSED_LOCAL_ASSIGNMENT", CategoryLintChecks, "A local variable is assigned but never read"},
	{"JSC_USE_OF_WITH", CategoryES5Strict, "The with statement is not allowed in strict mode"},
	{"JSC_USELESS_CODE", CategoryUselessCode, "An expression has no side effects and its result is unused"},
	{"JSC_VAR_MULTIPLY_DECLARED_ERROR", CategoryDuplicate, "A variable is declared more than once"},
}

// DefaultTableSpec returns the built-in lookup tables as plain lists.
// Callers may replace individual lists before building a policy.Tables.
func DefaultTableSpec() policy.TableSpec {
	return policy.TableSpec{
		// Findings that are never helpful in a build, no matter the module.
		AlwaysIgnore: []types.DiagnosticType{
			"JSC_UNKNOWN_DEFINE_WARNING",
			"JSC_NON_STANDARD_JSDOC",
		},
		// Reported by the standalone checker, never by the compiler.
		CheckerExclusiveKeys: []string{
			"JSC_DUPLICATE_REQUIRE",
			"JSC_MISSING_JSDOC",
			"JSC_SUPERFLUOUS_SUPPRESS",
		},
		// Compiler passes are known to generate code that trips these.
		IgnoreForSynthetic: []types.DiagnosticType{
			"JSC_USELESS_CODE",
			"JSC_MISSING_RETURN_STATEMENT",
			"JSC_INEXISTENT_PROPERTY",
		},
		// Too noisy to be worth showing for legacy code.
		IgnoreForLegacy: []types.DiagnosticType{
			"JSC_DEPRECATED_CLASS",
			"JSC_DEPRECATED_PROP",
			"JSC_DEPRECATED_VAR",
			"JSC_UNRECOGNIZED_TYPE_ERROR",
		},
		CheckerOnlyCategories: []types.Category{
			CategoryLintChecks,
			CategoryExtraRequire,
		},
	}
}

// DefaultTables returns the built-in lookup tables
func DefaultTables() *policy.Tables {
	return policy.NewTables(DefaultTableSpec())
}
