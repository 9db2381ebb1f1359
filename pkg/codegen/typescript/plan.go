package typescript

// BindingsPlan is the generator's output contract: everything the template
// layer needs to write the TypeScript module, with all naming decisions
// already made. Plans marshal to JSON so they can be inspected or diffed
// between runs; identical inputs produce identical plans.
type BindingsPlan struct {
	Module    string         `json:"module"`
	Imports   []ImportSpec   `json:"imports,omitempty"`
	Functions []FunctionPlan `json:"functions,omitempty"`
	Records   []RecordPlan   `json:"records,omitempty"`
	Enums     []EnumPlan     `json:"enums,omitempty"`
	Objects   []ObjectPlan   `json:"objects,omitempty"`
	Errors    []EnumPlan     `json:"errors,omitempty"`
	Callbacks []CallbackPlan `json:"callbacks,omitempty"`

	// Helpers holds one converter per distinct shape in the interface,
	// sorted by canonical name.
	Helpers []Helper `json:"helpers"`
}

// ImportSpec is one external module the generated bindings import.
type ImportSpec struct {
	Module string `json:"module"`
	Alias  string `json:"alias"`
	Path   string `json:"path"`
}

// FunctionPlan is a function, method or constructor with its types
// resolved.
type FunctionPlan struct {
	Name   string      `json:"name"`
	TsName string      `json:"ts_name"`
	Params []ParamPlan `json:"params,omitempty"`

	// Return is the rendered return type, "void" when the function returns
	// nothing. ReturnCanonical is empty exactly when Return is "void".
	Return          string `json:"return"`
	ReturnCanonical string `json:"return_canonical,omitempty"`

	Throws          string `json:"throws,omitempty"`
	ThrowsCanonical string `json:"throws_canonical,omitempty"`
}

// ParamPlan is a parameter or field with its type resolved. Canonical keys
// the converter the generated code lifts and lowers the value with.
type ParamPlan struct {
	Name      string `json:"name"`
	TsName    string `json:"ts_name"`
	Type      string `json:"type"`
	Canonical string `json:"canonical"`
}

// RecordPlan is a record declaration with its fields resolved.
type RecordPlan struct {
	Name   string      `json:"name"`
	TsName string      `json:"ts_name"`
	Fields []ParamPlan `json:"fields,omitempty"`
}

// EnumPlan is an enum or error declaration with its variant payloads
// resolved.
type EnumPlan struct {
	Name     string        `json:"name"`
	TsName   string        `json:"ts_name"`
	Variants []VariantPlan `json:"variants,omitempty"`
}

// VariantPlan is one arm of an enum or error declaration.
type VariantPlan struct {
	Name   string      `json:"name"`
	TsName string      `json:"ts_name"`
	Fields []ParamPlan `json:"fields,omitempty"`
}

// ObjectPlan is an object declaration with constructors and methods
// resolved.
type ObjectPlan struct {
	Name         string         `json:"name"`
	TsName       string         `json:"ts_name"`
	Constructors []FunctionPlan `json:"constructors,omitempty"`
	Methods      []FunctionPlan `json:"methods,omitempty"`
}

// CallbackPlan is a callback interface declaration with methods resolved.
type CallbackPlan struct {
	Name    string         `json:"name"`
	TsName  string         `json:"ts_name"`
	Methods []FunctionPlan `json:"methods,omitempty"`
}

// Helper is the generated converter for one shape. Code generated for any
// reference to the shape calls lift, lower, read and write through the
// converter object.
type Helper struct {
	CanonicalName string `json:"canonical_name"`
	TsType        string `json:"ts_type"`
	Converter     string `json:"converter"`
}

const converterPrefix = "FfiConverter"

// ConverterName returns the helper object name for a canonical name. The
// scheme is fixed: generated code and handwritten runtime support both
// address converters this way.
func ConverterName(canonical string) string {
	return converterPrefix + canonical
}
