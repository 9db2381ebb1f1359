package typescript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/codegen/naming"
	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/component"
)

func testInterface() *component.Interface {
	return &component.Interface{
		Name:    "geo",
		Imports: []string{"geo_types"},
	}
}

func TestOracleResolution(t *testing.T) {
	tests := []struct {
		name          string
		typ           component.Type
		wantRendered  string
		wantCanonical string
	}{
		{"uint8", component.Primitive(component.UInt8), "number", "UInt8"},
		{"int32", component.Primitive(component.Int32), "number", "Int32"},
		{"int64 is bigint", component.Primitive(component.Int64), "bigint", "Int64"},
		{"uint64 is bigint", component.Primitive(component.UInt64), "bigint", "UInt64"},
		{"float32", component.Primitive(component.Float32), "number", "Float32"},
		{"float64", component.Primitive(component.Float64), "number", "Float64"},
		{"boolean", component.Primitive(component.Boolean), "boolean", "Boolean"},
		{"string", component.Primitive(component.String), "string", "String"},
		{"bytes", component.Primitive(component.Bytes), "Uint8Array", "Bytes"},
		{
			"optional",
			component.Optional(component.Primitive(component.String)),
			"string | undefined",
			"OptionalString",
		},
		{
			"sequence",
			component.Sequence(component.Primitive(component.Int32)),
			"Array<number>",
			"SequenceInt32",
		},
		{
			"optional of optional",
			component.Optional(component.Optional(component.Primitive(component.Int32))),
			"number | undefined | undefined",
			"OptionalOptionalInt32",
		},
		{
			"optional of sequence",
			component.Optional(component.Sequence(component.Primitive(component.Int32))),
			"Array<number> | undefined",
			"OptionalSequenceInt32",
		},
		{
			"sequence of optional",
			component.Sequence(component.Optional(component.Primitive(component.Int32))),
			"Array<number | undefined>",
			"SequenceOptionalInt32",
		},
		{
			"map of string to sequence of optional int32",
			component.Map(component.Primitive(component.String),
				component.Sequence(component.Optional(component.Primitive(component.Int32)))),
			"Map<string, Array<number | undefined>>",
			"MapStringSequenceOptionalInt32",
		},
		{
			"map key may be any shape",
			component.Map(component.RecordType{Name: "Point"}, component.Primitive(component.Boolean)),
			"Map<Point, boolean>",
			"MapPointBoolean",
		},
		{"record", component.RecordType{Name: "Point"}, "Point", "Point"},
		{"record casing", component.RecordType{Name: "my_point"}, "MyPoint", "my_point"},
		{"enum", component.EnumType{Name: "Shape"}, "Shape", "Shape"},
		{"object", component.ObjectType{Name: "Index"}, "Index", "Index"},
		{"error", component.ErrorType{Name: "LookupError"}, "LookupError", "LookupError"},
		{"callback", component.CallbackType{Name: "Progress"}, "Progress", "Progress"},
		{
			"external",
			component.External("geo_types", "Coordinate"),
			"geoTypes.Coordinate",
			"geo_types_Coordinate",
		},
		{"timestamp", component.Builtin(component.BuiltinTimestamp), "Temporal.Instant", "Timestamp"},
		{"duration", component.Builtin(component.BuiltinDuration), "Temporal.Duration", "Duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOracle(testInterface())

			rendered, err := o.Render(tt.typ)
			assert.NilError(t, err)
			assert.Equal(t, tt.wantRendered, rendered)

			canonical, err := o.CanonicalName(tt.typ)
			assert.NilError(t, err)
			assert.Equal(t, tt.wantCanonical, canonical)
		})
	}
}

func TestOracleDeterministic(t *testing.T) {
	shape := component.Map(component.Primitive(component.String),
		component.Sequence(component.Optional(component.Primitive(component.Int32))))

	o := NewOracle(testInterface())
	first, err := o.Render(shape)
	assert.NilError(t, err)

	// Same oracle, repeated lookups.
	for i := 0; i < 3; i++ {
		got, err := o.Render(shape)
		assert.NilError(t, err)
		assert.Equal(t, first, got)

		canonical, err := o.CanonicalName(shape)
		assert.NilError(t, err)
		assert.Equal(t, "MapStringSequenceOptionalInt32", canonical)
	}

	// A fresh run resolves identically.
	other := NewOracle(testInterface())
	got, err := other.Render(shape)
	assert.NilError(t, err)
	assert.Equal(t, first, got)
}

func TestOracleRegistersNestedShapes(t *testing.T) {
	o := NewOracle(testInterface())
	shape := component.Map(component.Primitive(component.String),
		component.Sequence(component.Optional(component.Primitive(component.Int32))))

	_, err := o.CanonicalName(shape)
	assert.NilError(t, err)

	// Every nested shape claims its own name, bound to the right descriptor.
	want := map[string]component.Type{
		"Int32":                          component.Primitive(component.Int32),
		"String":                         component.Primitive(component.String),
		"OptionalInt32":                  component.Optional(component.Primitive(component.Int32)),
		"SequenceOptionalInt32":          component.Sequence(component.Optional(component.Primitive(component.Int32))),
		"MapStringSequenceOptionalInt32": shape,
	}
	got := map[string]component.Type{}
	for _, name := range o.Registry().Names() {
		owner, ok := o.Registry().Lookup(name)
		assert.Assert(t, ok)
		got[name] = owner
	}
	assert.DeepEqual(t, want, got, cmp.Comparer(component.EqualTypes))
}

func TestOracleUnresolvedExternal(t *testing.T) {
	o := NewOracle(testInterface())
	shape := component.External("units", "Meter")

	_, err := o.Render(shape)
	assert.Assert(t, err != nil)
	var unresolved *naming.UnresolvedError
	assert.Assert(t, errors.As(err, &unresolved))
	assert.Equal(t, "units", unresolved.Module)
	assert.Equal(t, "Meter", unresolved.Name)

	// The same failure surfaces when the reference is nested.
	_, err = o.CanonicalName(component.Sequence(shape))
	assert.Assert(t, errors.As(err, &unresolved))

	// A supplied module resolves.
	_, err = o.Render(component.External("geo_types", "Coordinate"))
	assert.NilError(t, err)
}

func TestOracleCollision(t *testing.T) {
	o := NewOracle(testInterface())

	_, err := o.CanonicalName(component.Builtin(component.BuiltinTimestamp))
	assert.NilError(t, err)

	// A record declared with the builtin's canonical name cannot claim it.
	_, err = o.CanonicalName(component.RecordType{Name: "Timestamp"})
	assert.Assert(t, err != nil)
	var collision *naming.CollisionError
	assert.Assert(t, errors.As(err, &collision))
	assert.Equal(t, "Timestamp", collision.Name)
	assert.Check(t, component.EqualTypes(component.Builtin(component.BuiltinTimestamp), collision.Owner))
	assert.Check(t, component.EqualTypes(component.RecordType{Name: "Timestamp"}, collision.Claimant))

	// Identical shapes keep re-registering cleanly after the failure.
	_, err = o.CanonicalName(component.Builtin(component.BuiltinTimestamp))
	assert.NilError(t, err)
}

func TestOracleCollisionNested(t *testing.T) {
	o := NewOracle(testInterface())

	_, err := o.CanonicalName(component.RecordType{Name: "OptionalInt32"})
	assert.NilError(t, err)

	// The composite's inner name claim collides with the record.
	_, err = o.CanonicalName(component.Sequence(component.Optional(component.Primitive(component.Int32))))
	var collision *naming.CollisionError
	assert.Assert(t, errors.As(err, &collision))
	assert.Equal(t, "OptionalInt32", collision.Name)
}

func TestOracleRejectsMalformedDescriptors(t *testing.T) {
	o := NewOracle(testInterface())

	_, err := o.Render(nil)
	assert.Check(t, is.ErrorContains(err, "nil type descriptor"))

	_, err = o.Render(component.Primitive(component.PrimitiveKind(99)))
	assert.Check(t, is.ErrorContains(err, "invalid primitive kind"))

	_, err = o.CanonicalName(component.Builtin(component.BuiltinID(42)))
	var misc *naming.MiscellanyError
	assert.Assert(t, errors.As(err, &misc))
	assert.Equal(t, component.BuiltinID(42), misc.ID)
}
