package component

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Serialized interface models are produced by the front end that parsed and
// validated the component's IDL. The wire format is JSON with one object per
// declaration and kind-discriminated type references.

type jsonInterface struct {
	Module    string         `json:"module"`
	Imports   []string       `json:"imports,omitempty"`
	Functions []jsonFunction `json:"functions,omitempty"`
	Records   []jsonRecord   `json:"records,omitempty"`
	Enums     []jsonEnum     `json:"enums,omitempty"`
	Objects   []jsonObject   `json:"objects,omitempty"`
	Errors    []jsonEnum     `json:"errors,omitempty"`
	Callbacks []jsonCallback `json:"callbacks,omitempty"`
}

type jsonFunction struct {
	Name   string      `json:"name"`
	Params []jsonParam `json:"params,omitempty"`
	Return *jsonRef    `json:"return,omitempty"`
	Throws string      `json:"throws,omitempty"`
}

type jsonParam struct {
	Name string   `json:"name"`
	Type *jsonRef `json:"type"`
}

type jsonRecord struct {
	Name   string      `json:"name"`
	Fields []jsonParam `json:"fields,omitempty"`
}

type jsonEnum struct {
	Name     string        `json:"name"`
	Variants []jsonVariant `json:"variants,omitempty"`
}

type jsonVariant struct {
	Name   string      `json:"name"`
	Fields []jsonParam `json:"fields,omitempty"`
}

type jsonObject struct {
	Name         string         `json:"name"`
	Constructors []jsonFunction `json:"constructors,omitempty"`
	Methods      []jsonFunction `json:"methods,omitempty"`
}

type jsonCallback struct {
	Name    string         `json:"name"`
	Methods []jsonFunction `json:"methods,omitempty"`
}

// jsonRef is a kind-discriminated type reference. Exactly the fields for its
// kind are set; the rest stay empty.
type jsonRef struct {
	Kind      string   `json:"kind"`
	Primitive string   `json:"primitive,omitempty"`
	Builtin   string   `json:"builtin,omitempty"`
	Name      string   `json:"name,omitempty"`
	Module    string   `json:"module,omitempty"`
	Inner     *jsonRef `json:"inner,omitempty"`
	Key       *jsonRef `json:"key,omitempty"`
	Value     *jsonRef `json:"value,omitempty"`
}

// Load decodes a serialized interface model and re-checks the structural
// guarantees consumers rely on: declared names are unique across all
// declaration kinds and every local named reference resolves to a
// declaration of the matching kind. External references are not resolved
// here; whether their modules were supplied is a generation-time concern.
func Load(data []byte) (*Interface, error) {
	var raw jsonInterface
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding interface model")
	}
	if raw.Module == "" {
		return nil, errors.New("interface model has no module name")
	}

	iface := &Interface{
		Name:    raw.Module,
		Imports: raw.Imports,
	}

	var err error
	for _, f := range raw.Functions {
		fn, cerr := convertFunction(f)
		if cerr != nil {
			return nil, errors.Wrapf(cerr, "function %q", f.Name)
		}
		iface.Functions = append(iface.Functions, fn)
	}
	for _, r := range raw.Records {
		rec := RecordDef{Name: r.Name}
		if rec.Fields, err = convertFields(r.Fields); err != nil {
			return nil, errors.Wrapf(err, "record %q", r.Name)
		}
		iface.Records = append(iface.Records, rec)
	}
	for _, e := range raw.Enums {
		en := EnumDef{Name: e.Name}
		if en.Variants, err = convertVariants(e.Variants); err != nil {
			return nil, errors.Wrapf(err, "enum %q", e.Name)
		}
		iface.Enums = append(iface.Enums, en)
	}
	for _, o := range raw.Objects {
		obj := ObjectDef{Name: o.Name}
		for _, c := range o.Constructors {
			fn, cerr := convertFunction(c)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "object %q constructor %q", o.Name, c.Name)
			}
			obj.Constructors = append(obj.Constructors, fn)
		}
		for _, m := range o.Methods {
			fn, cerr := convertFunction(m)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "object %q method %q", o.Name, m.Name)
			}
			obj.Methods = append(obj.Methods, fn)
		}
		iface.Objects = append(iface.Objects, obj)
	}
	for _, e := range raw.Errors {
		ed := ErrorDef{Name: e.Name}
		if ed.Variants, err = convertVariants(e.Variants); err != nil {
			return nil, errors.Wrapf(err, "error %q", e.Name)
		}
		iface.Errors = append(iface.Errors, ed)
	}
	for _, c := range raw.Callbacks {
		cb := CallbackDef{Name: c.Name}
		for _, m := range c.Methods {
			fn, cerr := convertFunction(m)
			if cerr != nil {
				return nil, errors.Wrapf(cerr, "callback %q method %q", c.Name, m.Name)
			}
			cb.Methods = append(cb.Methods, fn)
		}
		iface.Callbacks = append(iface.Callbacks, cb)
	}

	if err := validate(iface); err != nil {
		return nil, err
	}
	return iface, nil
}

func convertFunction(f jsonFunction) (FunctionDef, error) {
	fn := FunctionDef{Name: f.Name}
	if fn.Name == "" {
		return fn, errors.New("missing name")
	}
	for _, p := range f.Params {
		if p.Type == nil {
			return fn, errors.Errorf("param %q has no type", p.Name)
		}
		t, err := convertRef(p.Type)
		if err != nil {
			return fn, errors.Wrapf(err, "param %q", p.Name)
		}
		fn.Params = append(fn.Params, Param{Name: p.Name, Type: t})
	}
	if f.Return != nil {
		t, err := convertRef(f.Return)
		if err != nil {
			return fn, errors.Wrap(err, "return type")
		}
		fn.Return = t
	}
	if f.Throws != "" {
		fn.Throws = &ErrorType{Name: f.Throws}
	}
	return fn, nil
}

func convertFields(fields []jsonParam) ([]Field, error) {
	var out []Field
	for _, f := range fields {
		if f.Type == nil {
			return nil, errors.Errorf("field %q has no type", f.Name)
		}
		t, err := convertRef(f.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", f.Name)
		}
		out = append(out, Field{Name: f.Name, Type: t})
	}
	return out, nil
}

func convertVariants(variants []jsonVariant) ([]VariantDef, error) {
	var out []VariantDef
	for _, v := range variants {
		fields, err := convertFields(v.Fields)
		if err != nil {
			return nil, errors.Wrapf(err, "variant %q", v.Name)
		}
		out = append(out, VariantDef{Name: v.Name, Fields: fields})
	}
	return out, nil
}

func convertRef(ref *jsonRef) (Type, error) {
	switch ref.Kind {
	case "primitive":
		kind, ok := PrimitiveKindFromTag(ref.Primitive)
		if !ok {
			return nil, errors.Errorf("unknown primitive tag %q", ref.Primitive)
		}
		return Primitive(kind), nil
	case "optional":
		inner, err := convertInner(ref.Inner, "optional")
		if err != nil {
			return nil, err
		}
		return Optional(inner), nil
	case "sequence":
		inner, err := convertInner(ref.Inner, "sequence")
		if err != nil {
			return nil, err
		}
		return Sequence(inner), nil
	case "map":
		key, err := convertInner(ref.Key, "map key")
		if err != nil {
			return nil, err
		}
		value, err := convertInner(ref.Value, "map value")
		if err != nil {
			return nil, err
		}
		return Map(key, value), nil
	case "record":
		return RecordType{Name: ref.Name}, nil
	case "enum":
		return EnumType{Name: ref.Name}, nil
	case "object":
		return ObjectType{Name: ref.Name}, nil
	case "error":
		return ErrorType{Name: ref.Name}, nil
	case "callback":
		return CallbackType{Name: ref.Name}, nil
	case "external":
		if ref.Module == "" {
			return nil, errors.Errorf("external reference %q has no module", ref.Name)
		}
		return External(ref.Module, ref.Name), nil
	case "builtin":
		id, ok := BuiltinIDFromName(ref.Builtin)
		if !ok {
			return nil, errors.Errorf("unknown builtin id %q", ref.Builtin)
		}
		return Builtin(id), nil
	default:
		return nil, errors.Errorf("unknown type kind %q", ref.Kind)
	}
}

func convertInner(ref *jsonRef, where string) (Type, error) {
	if ref == nil {
		return nil, errors.Errorf("%s has no type", where)
	}
	t, err := convertRef(ref)
	if err != nil {
		return nil, errors.Wrap(err, where)
	}
	return t, nil
}

// validate re-checks the invariants a well-formed model carries: no two
// declarations share a name, imports are not repeated, and every local named
// reference points at a declaration of the same kind.
func validate(iface *Interface) error {
	kinds := map[string]string{}
	record := func(name, kind string) error {
		if name == "" {
			return errors.Errorf("%s declaration has no name", kind)
		}
		if prev, ok := kinds[name]; ok {
			return errors.Errorf("duplicate declaration name %q (%s and %s)", name, prev, kind)
		}
		kinds[name] = kind
		return nil
	}
	for _, d := range iface.Records {
		if err := record(d.Name, "record"); err != nil {
			return err
		}
	}
	for _, d := range iface.Enums {
		if err := record(d.Name, "enum"); err != nil {
			return err
		}
	}
	for _, d := range iface.Objects {
		if err := record(d.Name, "object"); err != nil {
			return err
		}
	}
	for _, d := range iface.Errors {
		if err := record(d.Name, "error"); err != nil {
			return err
		}
	}
	for _, d := range iface.Callbacks {
		if err := record(d.Name, "callback"); err != nil {
			return err
		}
	}

	seen := map[string]bool{}
	for _, m := range iface.Imports {
		if seen[m] {
			return errors.Errorf("duplicate import %q", m)
		}
		seen[m] = true
	}

	var resolveErr error
	iface.WalkTypes(func(t Type) {
		if resolveErr != nil {
			return
		}
		var name, want string
		switch d := t.(type) {
		case RecordType:
			name, want = d.Name, "record"
		case EnumType:
			name, want = d.Name, "enum"
		case ObjectType:
			name, want = d.Name, "object"
		case ErrorType:
			name, want = d.Name, "error"
		case CallbackType:
			name, want = d.Name, "callback"
		default:
			return
		}
		got, ok := kinds[name]
		if !ok {
			resolveErr = errors.Errorf("unresolved %s reference %q", want, name)
			return
		}
		if got != want {
			resolveErr = errors.Errorf("reference %q resolves to a %s declaration, want %s", name, got, want)
		}
	})
	return resolveErr
}
