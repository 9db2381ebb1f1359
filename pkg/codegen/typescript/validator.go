// Package typescript - bindings plan validation.
package typescript

import (
	"fmt"
	"strings"

	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/logger"
)

// ValidationError represents one defect found in a bindings plan.
type ValidationError struct {
	Element string
	Message string
	Value   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s\n  %s", e.Element, e.Message, e.Value)
}

// Validator re-checks a finished plan against the naming contract. The
// oracle makes these defects impossible; the validator catches skew between
// the two, and plans that were edited or deserialized from elsewhere.
type Validator struct {
	errors []ValidationError
	warns  []ValidationError
}

// NewValidator creates a new plan validator.
func NewValidator() *Validator {
	return &Validator{
		errors: make([]ValidationError, 0),
		warns:  make([]ValidationError, 0),
	}
}

// Validate performs full validation on a bindings plan.
func (v *Validator) Validate(plan *BindingsPlan) error {
	v.validateModule(plan)
	v.validateImports(plan)
	v.validateHelpers(plan)
	v.validateSignatures(plan)
	v.validateHelperCoverage(plan)

	if len(v.errors) > 0 {
		return v.formatErrors()
	}

	if len(v.warns) > 0 {
		v.logWarnings()
	}

	return nil
}

// Errors returns the defects found by the last Validate call.
func (v *Validator) Errors() []ValidationError {
	return v.errors
}

func (v *Validator) validateModule(plan *BindingsPlan) {
	if plan.Module == "" {
		v.addError("module", "plan has no module name", "")
	}
}

// validateImports checks that import aliases are usable identifiers and do
// not shadow each other.
func (v *Validator) validateImports(plan *BindingsPlan) {
	aliases := make(map[string]string)
	for _, imp := range plan.Imports {
		element := fmt.Sprintf("import %q", imp.Module)
		if !isIdentifier(imp.Alias) {
			v.addError(element, "alias is not a valid identifier", imp.Alias)
		}
		if imp.Path == "" {
			v.addError(element, "import has no path", imp.Alias)
		}
		if prev, ok := aliases[imp.Alias]; ok {
			v.addError(element, fmt.Sprintf("alias collides with import %q", prev), imp.Alias)
		}
		aliases[imp.Alias] = imp.Module
	}
}

// validateHelpers checks the converter naming scheme and helper ordering.
func (v *Validator) validateHelpers(plan *BindingsPlan) {
	seen := make(map[string]bool)
	prev := ""
	for _, h := range plan.Helpers {
		element := fmt.Sprintf("helper %q", h.CanonicalName)
		if !isIdentifier(h.CanonicalName) {
			v.addError(element, "canonical name is not a valid identifier", h.CanonicalName)
		}
		if seen[h.CanonicalName] {
			v.addError(element, "duplicate canonical name", h.CanonicalName)
		}
		seen[h.CanonicalName] = true
		if want := ConverterName(h.CanonicalName); h.Converter != want {
			v.addError(element, fmt.Sprintf("converter must be named %q", want), h.Converter)
		}
		if h.TsType == "" {
			v.addError(element, "helper has no rendered type", "")
		} else if !balancedGenerics(h.TsType) {
			v.addError(element, "rendered type has unbalanced generics", h.TsType)
		}
		if prev != "" && h.CanonicalName < prev {
			v.addWarn(element, "helpers are not sorted by canonical name", h.CanonicalName)
		}
		prev = h.CanonicalName
	}
}

// validateSignatures checks every resolved type reference in the plan.
func (v *Validator) validateSignatures(plan *BindingsPlan) {
	checkFunc := func(owner string, f FunctionPlan) {
		element := fmt.Sprintf("%s %q", owner, f.Name)
		for _, p := range f.Params {
			v.checkTyped(element+" param", p)
		}
		if f.Return == "" {
			v.addError(element, "function has no return type (want \"void\" when absent)", "")
		}
		if f.Return == "void" && f.ReturnCanonical != "" {
			v.addError(element, "void return carries a canonical name", f.ReturnCanonical)
		}
		if f.Return != "void" && f.ReturnCanonical == "" {
			v.addError(element, "return type has no canonical name", f.Return)
		}
		if f.Throws != "" && f.ThrowsCanonical == "" {
			v.addError(element, "throws type has no canonical name", f.Throws)
		}
	}

	for _, f := range plan.Functions {
		checkFunc("function", f)
	}
	for _, r := range plan.Records {
		for _, f := range r.Fields {
			v.checkTyped(fmt.Sprintf("record %q field", r.Name), f)
		}
	}
	for _, e := range append(append([]EnumPlan(nil), plan.Enums...), plan.Errors...) {
		for _, variant := range e.Variants {
			for _, f := range variant.Fields {
				v.checkTyped(fmt.Sprintf("enum %q variant %q field", e.Name, variant.Name), f)
			}
		}
	}
	for _, o := range plan.Objects {
		for _, c := range o.Constructors {
			checkFunc(fmt.Sprintf("object %q constructor", o.Name), c)
		}
		for _, m := range o.Methods {
			checkFunc(fmt.Sprintf("object %q method", o.Name), m)
		}
	}
	for _, c := range plan.Callbacks {
		for _, m := range c.Methods {
			checkFunc(fmt.Sprintf("callback %q method", c.Name), m)
		}
	}
}

// validateHelperCoverage checks that every canonical name referenced by a
// signature has a helper, so generated code never addresses a converter
// that was not emitted.
func (v *Validator) validateHelperCoverage(plan *BindingsPlan) {
	emitted := make(map[string]bool, len(plan.Helpers))
	for _, h := range plan.Helpers {
		emitted[h.CanonicalName] = true
	}
	require := func(element, canonical string) {
		if canonical == "" || emitted[canonical] {
			return
		}
		v.addError(element, "canonical name has no helper", canonical)
	}
	checkFunc := func(owner string, f FunctionPlan) {
		element := fmt.Sprintf("%s %q", owner, f.Name)
		for _, p := range f.Params {
			require(element, p.Canonical)
		}
		require(element, f.ReturnCanonical)
		require(element, f.ThrowsCanonical)
	}

	for _, f := range plan.Functions {
		checkFunc("function", f)
	}
	for _, r := range plan.Records {
		for _, f := range r.Fields {
			require(fmt.Sprintf("record %q", r.Name), f.Canonical)
		}
	}
	for _, e := range append(append([]EnumPlan(nil), plan.Enums...), plan.Errors...) {
		for _, variant := range e.Variants {
			for _, f := range variant.Fields {
				require(fmt.Sprintf("enum %q", e.Name), f.Canonical)
			}
		}
	}
	for _, o := range plan.Objects {
		for _, c := range o.Constructors {
			checkFunc(fmt.Sprintf("object %q constructor", o.Name), c)
		}
		for _, m := range o.Methods {
			checkFunc(fmt.Sprintf("object %q method", o.Name), m)
		}
	}
	for _, c := range plan.Callbacks {
		for _, m := range c.Methods {
			checkFunc(fmt.Sprintf("callback %q method", c.Name), m)
		}
	}
}

func (v *Validator) checkTyped(element string, p ParamPlan) {
	element = fmt.Sprintf("%s %q", element, p.Name)
	if p.Type == "" {
		v.addError(element, "reference has no rendered type", "")
	} else if !balancedGenerics(p.Type) {
		v.addError(element, "rendered type has unbalanced generics", p.Type)
	}
	if p.Canonical == "" {
		v.addError(element, "reference has no canonical name", p.Type)
	}
}

// Helper functions

func (v *Validator) addError(element, msg, value string) {
	v.errors = append(v.errors, ValidationError{Element: element, Message: msg, Value: value})
}

func (v *Validator) addWarn(element, msg, value string) {
	v.warns = append(v.warns, ValidationError{Element: element, Message: msg, Value: value})
}

func (v *Validator) formatErrors() error {
	var sb strings.Builder
	sb.WriteString("Bindings plan validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString("  " + err.Error() + "\n")
	}
	return fmt.Errorf("%s", sb.String())
}

func (v *Validator) logWarnings() {
	for _, warn := range v.warns {
		logger.Warn("Plan validation warning", "element", warn.Element, "msg", warn.Message)
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func balancedGenerics(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// ValidatePlan validates an entire bindings plan.
func ValidatePlan(plan *BindingsPlan) error {
	validator := NewValidator()
	return validator.Validate(plan)
}

// QuickValidate performs fast basic validation for development.
func QuickValidate(plan *BindingsPlan) bool {
	validator := NewValidator()
	validator.validateModule(plan)
	validator.validateHelpers(plan)
	return len(validator.errors) == 0
}
