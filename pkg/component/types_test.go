package component

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestPrimitiveTags(t *testing.T) {
	kinds := []PrimitiveKind{
		UInt8, Int8, UInt16, Int16, UInt32, Int32,
		UInt64, Int64, Float32, Float64, Boolean, String, Bytes,
	}
	assert.Equal(t, len(kinds), len(PrimitiveTags()))

	seen := map[string]bool{}
	for _, k := range kinds {
		assert.Assert(t, k.Valid(), "kind %d not valid", int(k))
		tag := k.String()
		assert.Assert(t, tag != "", "kind %d has empty tag", int(k))
		assert.Assert(t, !seen[tag], "tag %q assigned twice", tag)
		seen[tag] = true

		back, ok := PrimitiveKindFromTag(tag)
		assert.Assert(t, ok, "tag %q does not resolve", tag)
		assert.Equal(t, k, back)
	}

	_, ok := PrimitiveKindFromTag("Int128")
	assert.Assert(t, !ok)
	assert.Assert(t, !PrimitiveKind(99).Valid())
}

func TestBuiltinIDs(t *testing.T) {
	ids := BuiltinIDs()
	assert.Equal(t, 2, len(ids))
	for _, id := range ids {
		assert.Assert(t, id.Valid())
		back, ok := BuiltinIDFromName(id.String())
		assert.Assert(t, ok)
		assert.Equal(t, id, back)
	}

	_, ok := BuiltinIDFromName("datetime")
	assert.Assert(t, !ok)
	assert.Assert(t, !BuiltinID(42).Valid())
}

func TestFormatType(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"primitive", Primitive(Int32), "Int32"},
		{"optional", Optional(Primitive(String)), "Optional<String>"},
		{"sequence", Sequence(Primitive(Bytes)), "Sequence<Bytes>"},
		{
			"nested map",
			Map(Primitive(String), Sequence(Optional(Primitive(Int32)))),
			"Map<String, Sequence<Optional<Int32>>>",
		},
		{"record", RecordType{Name: "Point"}, "record Point"},
		{"enum", EnumType{Name: "Shape"}, "enum Shape"},
		{"object", ObjectType{Name: "Index"}, "object Index"},
		{"error", ErrorType{Name: "LookupError"}, "error LookupError"},
		{"callback", CallbackType{Name: "Progress"}, "callback Progress"},
		{"external", External("geo_types", "Coordinate"), "external geo_types.Coordinate"},
		{"builtin", Builtin(BuiltinTimestamp), "builtin timestamp"},
		{"nil", nil, "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatType(tt.typ))
		})
	}
}

func TestFormatTypes(t *testing.T) {
	got := FormatTypes([]Type{Primitive(Boolean), Optional(Primitive(UInt64))})
	assert.Check(t, is.Equal("Boolean, Optional<UInt64>", got))
}

func TestHasImport(t *testing.T) {
	iface := &Interface{Name: "geo", Imports: []string{"geo_types", "units"}}
	assert.Check(t, iface.HasImport("geo_types"))
	assert.Check(t, iface.HasImport("units"))
	assert.Check(t, !iface.HasImport("geo"))
	assert.Check(t, !iface.HasImport(""))
}

func TestDeclNames(t *testing.T) {
	iface := &Interface{
		Name:      "geo",
		Records:   []RecordDef{{Name: "Point"}},
		Enums:     []EnumDef{{Name: "Shape"}},
		Objects:   []ObjectDef{{Name: "Index"}},
		Errors:    []ErrorDef{{Name: "LookupError"}},
		Callbacks: []CallbackDef{{Name: "Progress"}},
	}
	assert.DeepEqual(t, []string{"Point", "Shape", "Index", "LookupError", "Progress"}, iface.DeclNames())
}
