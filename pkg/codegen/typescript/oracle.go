package typescript

import (
	"github.com/pkg/errors"

	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/codegen/naming"
	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/component"
)

// CodeType binds one resolved type shape to the two names the generator
// needs for it.
type CodeType interface {
	// TypeLabel is the type as written in generated TypeScript source.
	// Labels may repeat across shapes; TypeScript collapses unions like
	// "string | undefined | undefined" without changing meaning.
	TypeLabel() string

	// CanonicalName keys the shape's generated helpers. Composite names
	// embed their constituents' canonical names, so structurally different
	// shapes never produce the same name.
	CanonicalName() string
}

// Oracle resolves type descriptors for the TypeScript target. Resolution is
// pure: the same descriptor always yields the same names, within a run and
// across runs. Canonical names produced during resolution are claimed in
// the run's registry, so a collision between unrelated shapes surfaces at
// the first lookup that would be affected.
type Oracle struct {
	iface    *component.Interface
	registry *naming.Registry
}

// NewOracle returns an oracle for one generation run over iface with its
// own empty registry.
func NewOracle(iface *component.Interface) *Oracle {
	return &Oracle{
		iface:    iface,
		registry: naming.NewRegistry(),
	}
}

// Registry exposes the run's canonical name registry.
func (o *Oracle) Registry() *naming.Registry {
	return o.registry
}

// Find resolves t to its code type, resolving constituents first for
// composite shapes. It fails on a reference to an external module that was
// not supplied and on a builtin id missing from the miscellany catalog. It
// never substitutes placeholder names.
func (o *Oracle) Find(t component.Type) (CodeType, error) {
	switch d := t.(type) {
	case component.PrimitiveType:
		if !d.Kind.Valid() {
			return nil, errors.Errorf("invalid primitive kind %d", int(d.Kind))
		}
		return primitiveCodeType{kind: d.Kind}, nil
	case component.OptionalType:
		inner, err := o.Find(d.Inner)
		if err != nil {
			return nil, err
		}
		return optionalCodeType{inner: inner}, nil
	case component.SequenceType:
		inner, err := o.Find(d.Inner)
		if err != nil {
			return nil, err
		}
		return sequenceCodeType{inner: inner}, nil
	case component.MapType:
		key, err := o.Find(d.Key)
		if err != nil {
			return nil, err
		}
		value, err := o.Find(d.Value)
		if err != nil {
			return nil, err
		}
		return mapCodeType{key: key, value: value}, nil
	case component.RecordType:
		return namedCodeType{name: d.Name}, nil
	case component.EnumType:
		return namedCodeType{name: d.Name}, nil
	case component.ObjectType:
		return namedCodeType{name: d.Name}, nil
	case component.ErrorType:
		return namedCodeType{name: d.Name}, nil
	case component.CallbackType:
		return namedCodeType{name: d.Name}, nil
	case component.ExternalType:
		if !o.iface.HasImport(d.Module) {
			return nil, &naming.UnresolvedError{Module: d.Module, Name: d.Name}
		}
		return externalCodeType{module: d.Module, name: d.Name}, nil
	case component.BuiltinType:
		return miscellanyFor(d.ID)
	case nil:
		return nil, errors.New("nil type descriptor")
	default:
		return nil, errors.Errorf("unhandled type descriptor %T", t)
	}
}

// Render returns the TypeScript surface syntax for t.
func (o *Oracle) Render(t component.Type) (string, error) {
	ct, err := o.Find(t)
	if err != nil {
		return "", err
	}
	return ct.TypeLabel(), nil
}

// CanonicalName returns t's canonical name. The name, and the canonical
// name of every shape nested in t, is claimed in the run's registry as it
// is produced; a structurally different shape holding any of those names
// fails the lookup with *naming.CollisionError.
func (o *Oracle) CanonicalName(t component.Type) (string, error) {
	ct, err := o.Find(t)
	if err != nil {
		return "", err
	}

	var regErr error
	component.WalkType(t, func(sub component.Type) {
		if regErr != nil {
			return
		}
		subCT, err := o.Find(sub)
		if err != nil {
			regErr = err
			return
		}
		regErr = o.registry.Register(subCT.CanonicalName(), sub)
	})
	if regErr != nil {
		return "", regErr
	}
	return ct.CanonicalName(), nil
}
