package typescript

import (
	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/codegen/naming"
	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/component"
)

// The miscellany catalog covers the builtin scalars that are neither
// primitives nor user declarations. One row per builtin id; adding a
// builtin means adding a row, the oracle dispatch does not change.
//
// Rendered types come from the Temporal API. Canonical names live in the
// same namespace as primitive tags and user declarations, so they are plain
// nouns a front end can also collide with; see the registry.
var miscellanyCatalog = map[component.BuiltinID]miscellanyCodeType{
	component.BuiltinTimestamp: {
		id:        component.BuiltinTimestamp,
		label:     "Temporal.Instant",
		canonical: "Timestamp",
	},
	component.BuiltinDuration: {
		id:        component.BuiltinDuration,
		label:     "Temporal.Duration",
		canonical: "Duration",
	},
}

type miscellanyCodeType struct {
	id        component.BuiltinID
	label     string
	canonical string
}

func (c miscellanyCodeType) TypeLabel() string {
	return c.label
}

func (c miscellanyCodeType) CanonicalName() string {
	return c.canonical
}

func miscellanyFor(id component.BuiltinID) (CodeType, error) {
	row, ok := miscellanyCatalog[id]
	if !ok {
		return nil, &naming.MiscellanyError{ID: id}
	}
	return row, nil
}
