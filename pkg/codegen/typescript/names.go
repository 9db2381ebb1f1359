package typescript

import (
	"strings"
	"unicode"
)

// namedCodeType covers every user-declared type: records, enums, objects,
// errors and callback interfaces all render as a class-cased reference to
// their declaration. The canonical name is the declared name verbatim; the
// front end guarantees declared names are unique within the interface.
type namedCodeType struct {
	name string
}

func (c namedCodeType) TypeLabel() string {
	return ClassName(c.name)
}

func (c namedCodeType) CanonicalName() string {
	return c.name
}

// ClassName renders a declared name in TypeScript class casing: UpperCamel,
// splitting on underscores, hyphens and spaces. Already-cased names pass
// through unchanged.
func ClassName(name string) string {
	return camel(name, true)
}

// FuncName renders a function, method, parameter or field name in
// TypeScript member casing: lowerCamel.
func FuncName(name string) string {
	return camel(name, false)
}

// ModuleAlias renders the import alias that qualifies types from an
// external module: lowerCamel of the module name.
func ModuleAlias(module string) string {
	return camel(module, false)
}

func camel(s string, upperFirst bool) string {
	var b strings.Builder
	b.Grow(len(s))
	upper := upperFirst
	for i, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		case i == 0:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
