package naming

import (
	"fmt"

	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/component"
)

// CollisionError reports that two structurally different shapes produced the
// same canonical name. Generation must abort: proceeding would merge the
// generated helpers of unrelated types.
type CollisionError struct {
	Name     string
	Owner    component.Type
	Claimant component.Type
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("canonical name %q already names %s, cannot also name %s",
		e.Name, component.FormatType(e.Owner), component.FormatType(e.Claimant))
}

// UnresolvedError reports a reference into an external module that was not
// supplied to the generation run.
type UnresolvedError struct {
	Module string
	Name   string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved external type %s.%s: module %q was not supplied",
		e.Module, e.Name, e.Module)
}

// MiscellanyError reports a builtin id that has no row in the target's
// miscellany catalog. The catalog is total over the declared ids, so this
// only fires on a skew between the model vocabulary and a backend.
type MiscellanyError struct {
	ID component.BuiltinID
}

func (e *MiscellanyError) Error() string {
	return fmt.Sprintf("builtin %q has no miscellany entry", e.ID)
}
