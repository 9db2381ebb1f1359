// Type descriptors - the closed variant set describing every shape a type
// can take inside a component interface.
package component

import (
	"fmt"
	"strings"
)

// Type describes the shape of a single type as it appears anywhere in the
// interface: top-level or nested inside optionals, sequences and maps.
//
// The variant set is closed. Composite variants own their inner descriptors,
// so a descriptor is always a finite tree; user-defined types refer to each
// other by name, never by embedding. Descriptors are plain values and safe
// to share.
type Type interface {
	typ()
}

// PrimitiveKind identifies one of the fixed primitive types.
type PrimitiveKind int

const (
	UInt8 PrimitiveKind = iota
	Int8
	UInt16
	Int16
	UInt32
	Int32
	UInt64
	Int64
	Float32
	Float64
	Boolean
	String
	Bytes
)

// primitiveTags maps each primitive kind to its fixed canonical tag. The tag
// set is part of the naming contract: helper functions for primitive shapes
// are keyed by these strings, so they never change between runs.
var primitiveTags = map[PrimitiveKind]string{
	UInt8:   "UInt8",
	Int8:    "Int8",
	UInt16:  "UInt16",
	Int16:   "Int16",
	UInt32:  "UInt32",
	Int32:   "Int32",
	UInt64:  "UInt64",
	Int64:   "Int64",
	Float32: "Float32",
	Float64: "Float64",
	Boolean: "Boolean",
	String:  "String",
	Bytes:   "Bytes",
}

// String returns the primitive's fixed canonical tag.
func (k PrimitiveKind) String() string {
	if tag, ok := primitiveTags[k]; ok {
		return tag
	}
	return fmt.Sprintf("PrimitiveKind(%d)", int(k))
}

// Valid reports whether k is one of the declared primitive kinds.
func (k PrimitiveKind) Valid() bool {
	_, ok := primitiveTags[k]
	return ok
}

// PrimitiveKindFromTag resolves a canonical tag back to its kind.
func PrimitiveKindFromTag(tag string) (PrimitiveKind, bool) {
	for k, t := range primitiveTags {
		if t == tag {
			return k, true
		}
	}
	return 0, false
}

// PrimitiveTags returns every fixed primitive tag. The result is a copy.
func PrimitiveTags() []string {
	tags := make([]string, 0, len(primitiveTags))
	for _, t := range primitiveTags {
		tags = append(tags, t)
	}
	return tags
}

// BuiltinID identifies one of the fixed builtin scalar types that live
// outside the user-declared type universe (the "miscellany" catalog).
type BuiltinID int

const (
	BuiltinTimestamp BuiltinID = iota
	BuiltinDuration
)

// builtinIDs maps builtin ids to their wire names as used in serialized
// interface models. Distinct from the canonical tags the generator backends
// assign; the two namespaces never mix.
var builtinIDs = map[BuiltinID]string{
	BuiltinTimestamp: "timestamp",
	BuiltinDuration:  "duration",
}

// String returns the builtin's wire name.
func (id BuiltinID) String() string {
	if name, ok := builtinIDs[id]; ok {
		return name
	}
	return fmt.Sprintf("BuiltinID(%d)", int(id))
}

// Valid reports whether id is one of the declared builtin ids.
func (id BuiltinID) Valid() bool {
	_, ok := builtinIDs[id]
	return ok
}

// BuiltinIDFromName resolves a wire name back to its id.
func BuiltinIDFromName(name string) (BuiltinID, bool) {
	for id, n := range builtinIDs {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// BuiltinIDs returns every declared builtin id.
func BuiltinIDs() []BuiltinID {
	ids := make([]BuiltinID, 0, len(builtinIDs))
	for id := range builtinIDs {
		ids = append(ids, id)
	}
	return ids
}

// PrimitiveType is a fixed scalar type with a direct target representation.
type PrimitiveType struct {
	Kind PrimitiveKind
}

// OptionalType wraps an inner type that may be absent.
type OptionalType struct {
	Inner Type
}

// SequenceType is an ordered collection of the inner type.
type SequenceType struct {
	Inner Type
}

// MapType is a key-value mapping. The front end restricts keys to a hashable
// subset; descriptors place no such restriction and consumers must tolerate
// any key shape.
type MapType struct {
	Key   Type
	Value Type
}

// RecordType references a record declaration by name.
type RecordType struct {
	Name string
}

// EnumType references an enum declaration by name.
type EnumType struct {
	Name string
}

// ObjectType references an object declaration by name.
type ObjectType struct {
	Name string
}

// ErrorType references an error declaration by name.
type ErrorType struct {
	Name string
}

// CallbackType references a callback interface declaration by name.
type CallbackType struct {
	Name string
}

// ExternalType references a declaration imported from another component
// module. The module name disambiguates identically-named declarations from
// different modules.
type ExternalType struct {
	Module string
	Name   string
}

// BuiltinType is one of the fixed miscellany scalars (timestamp, duration).
type BuiltinType struct {
	ID BuiltinID
}

func (PrimitiveType) typ() {}
func (OptionalType) typ()  {}
func (SequenceType) typ()  {}
func (MapType) typ()       {}
func (RecordType) typ()    {}
func (EnumType) typ()      {}
func (ObjectType) typ()    {}
func (ErrorType) typ()     {}
func (CallbackType) typ()  {}
func (ExternalType) typ()  {}
func (BuiltinType) typ()   {}

// Constructors for descriptor trees. Tests and loaders read better with
// these than with struct literals.

// Primitive returns the descriptor for a fixed scalar kind.
func Primitive(kind PrimitiveKind) PrimitiveType { return PrimitiveType{Kind: kind} }

// Optional wraps inner in an optional descriptor.
func Optional(inner Type) OptionalType { return OptionalType{Inner: inner} }

// Sequence wraps inner in a sequence descriptor.
func Sequence(inner Type) SequenceType { return SequenceType{Inner: inner} }

// Map returns a map descriptor over the given key and value shapes.
func Map(key, value Type) MapType { return MapType{Key: key, Value: value} }

// External returns a descriptor referencing name imported from module.
func External(module, name string) ExternalType {
	return ExternalType{Module: module, Name: name}
}

// Builtin returns the descriptor for a miscellany builtin.
func Builtin(id BuiltinID) BuiltinType { return BuiltinType{ID: id} }

// FormatType renders a descriptor in a compact, language-neutral notation,
// e.g. Map<String, Sequence<Optional<Int32>>>. Used in error reports and
// diagnostics; never in generated source.
func FormatType(t Type) string {
	switch d := t.(type) {
	case PrimitiveType:
		return d.Kind.String()
	case OptionalType:
		return "Optional<" + FormatType(d.Inner) + ">"
	case SequenceType:
		return "Sequence<" + FormatType(d.Inner) + ">"
	case MapType:
		return "Map<" + FormatType(d.Key) + ", " + FormatType(d.Value) + ">"
	case RecordType:
		return "record " + d.Name
	case EnumType:
		return "enum " + d.Name
	case ObjectType:
		return "object " + d.Name
	case ErrorType:
		return "error " + d.Name
	case CallbackType:
		return "callback " + d.Name
	case ExternalType:
		return "external " + d.Module + "." + d.Name
	case BuiltinType:
		return "builtin " + d.ID.String()
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", t)
	}
}

// FormatTypes renders a list of descriptors, comma separated.
func FormatTypes(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = FormatType(t)
	}
	return strings.Join(parts, ", ")
}
