package typescript

import "github.com/ianthetechie/uniffi-bindgen-react-native/pkg/component"

// Primitive renderings for the TypeScript target. TypeScript numbers lose
// integer precision past 2^53, so the 64-bit integer kinds render as bigint.
// Bytes renders as Uint8Array, the runtime representation of a byte buffer.
var primitiveLabels = map[component.PrimitiveKind]string{
	component.UInt8:   "number",
	component.Int8:    "number",
	component.UInt16:  "number",
	component.Int16:   "number",
	component.UInt32:  "number",
	component.Int32:   "number",
	component.UInt64:  "bigint",
	component.Int64:   "bigint",
	component.Float32: "number",
	component.Float64: "number",
	component.Boolean: "boolean",
	component.String:  "string",
	component.Bytes:   "Uint8Array",
}

type primitiveCodeType struct {
	kind component.PrimitiveKind
}

func (c primitiveCodeType) TypeLabel() string {
	return primitiveLabels[c.kind]
}

// CanonicalName returns the kind's fixed tag. Helper names generated from
// these never change between runs.
func (c primitiveCodeType) CanonicalName() string {
	return c.kind.String()
}
