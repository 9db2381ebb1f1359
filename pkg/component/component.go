// Package component defines the in-memory model of a component interface:
// the declarations a native module exports and the type descriptors those
// declarations reference.
//
// A model arrives already validated by the front end that produced it. The
// loader in this package re-checks the structural guarantees it relies on
// (declared names unique, local references resolvable) so that a corrupt
// input fails loudly instead of producing broken bindings.
package component

// Interface is the root of a component model: one native module's complete
// exported surface.
type Interface struct {
	// Name is the component module's own name.
	Name string

	// Imports lists the external component modules supplied alongside this
	// one. An ExternalType whose module is not listed here cannot be
	// resolved by any generator backend.
	Imports []string

	Functions []FunctionDef
	Records   []RecordDef
	Enums     []EnumDef
	Objects   []ObjectDef
	Errors    []ErrorDef
	Callbacks []CallbackDef
}

// HasImport reports whether module is listed among the supplied external
// modules.
func (i *Interface) HasImport(module string) bool {
	for _, m := range i.Imports {
		if m == module {
			return true
		}
	}
	return false
}

// DeclNames returns the names of every declaration in the interface, in
// declaration order. Names are unique across all declaration kinds.
func (i *Interface) DeclNames() []string {
	var names []string
	for _, d := range i.Records {
		names = append(names, d.Name)
	}
	for _, d := range i.Enums {
		names = append(names, d.Name)
	}
	for _, d := range i.Objects {
		names = append(names, d.Name)
	}
	for _, d := range i.Errors {
		names = append(names, d.Name)
	}
	for _, d := range i.Callbacks {
		names = append(names, d.Name)
	}
	return names
}

// FunctionDef is a top-level exported function. Methods and constructors
// reuse this shape.
type FunctionDef struct {
	Name   string
	Params []Param

	// Return is nil for functions that return nothing.
	Return Type

	// Throws names the error declaration the function may raise, or nil.
	Throws *ErrorType
}

// Param is a single function or method parameter.
type Param struct {
	Name string
	Type Type
}

// RecordDef is a dumb data class: named fields, passed by value.
type RecordDef struct {
	Name   string
	Fields []Field
}

// Field is a named, typed slot in a record or an enum variant payload.
type Field struct {
	Name string
	Type Type
}

// EnumDef is a tagged union. Flat enums have variants with no fields.
type EnumDef struct {
	Name     string
	Variants []VariantDef
}

// VariantDef is one arm of an enum or error declaration.
type VariantDef struct {
	Name   string
	Fields []Field
}

// ObjectDef is a stateful interface type passed by reference.
type ObjectDef struct {
	Name         string
	Constructors []FunctionDef
	Methods      []FunctionDef
}

// ErrorDef is an enum raised as an exception.
type ErrorDef struct {
	Name     string
	Variants []VariantDef
}

// CallbackDef is an interface implemented on the foreign side and called
// from the native side.
type CallbackDef struct {
	Name    string
	Methods []FunctionDef
}
