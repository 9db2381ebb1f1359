package typescript

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func validPlan() *BindingsPlan {
	return &BindingsPlan{
		Module: "geo",
		Imports: []ImportSpec{
			{Module: "geo_types", Alias: "geoTypes", Path: "@geo/types"},
		},
		Functions: []FunctionPlan{
			{
				Name:   "lookup",
				TsName: "lookup",
				Params: []ParamPlan{
					{Name: "query", TsName: "query", Type: "string", Canonical: "String"},
				},
				Return:          "Point | undefined",
				ReturnCanonical: "OptionalPoint",
			},
		},
		Records: []RecordPlan{
			{
				Name:   "Point",
				TsName: "Point",
				Fields: []ParamPlan{
					{Name: "x", TsName: "x", Type: "number", Canonical: "Float64"},
				},
			},
		},
		Helpers: []Helper{
			{CanonicalName: "Float64", TsType: "number", Converter: "FfiConverterFloat64"},
			{CanonicalName: "OptionalPoint", TsType: "Point | undefined", Converter: "FfiConverterOptionalPoint"},
			{CanonicalName: "Point", TsType: "Point", Converter: "FfiConverterPoint"},
			{CanonicalName: "String", TsType: "string", Converter: "FfiConverterString"},
		},
	}
}

func TestValidatePlanAcceptsGeneratedPlan(t *testing.T) {
	assert.NilError(t, ValidatePlan(validPlan()))
	assert.Assert(t, QuickValidate(validPlan()))
}

func TestValidatePlanDefects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BindingsPlan)
		wantErr string
	}{
		{
			"missing module name",
			func(p *BindingsPlan) { p.Module = "" },
			"plan has no module name",
		},
		{
			"bad import alias",
			func(p *BindingsPlan) { p.Imports[0].Alias = "geo types" },
			"alias is not a valid identifier",
		},
		{
			"import without path",
			func(p *BindingsPlan) { p.Imports[0].Path = "" },
			"import has no path",
		},
		{
			"duplicate import alias",
			func(p *BindingsPlan) {
				p.Imports = append(p.Imports, ImportSpec{Module: "geo-types", Alias: "geoTypes", Path: "./other"})
			},
			`alias collides with import "geo_types"`,
		},
		{
			"duplicate canonical name",
			func(p *BindingsPlan) { p.Helpers = append(p.Helpers, p.Helpers[0]) },
			"duplicate canonical name",
		},
		{
			"canonical name not an identifier",
			func(p *BindingsPlan) { p.Helpers[0].CanonicalName = "Float-64" },
			"canonical name is not a valid identifier",
		},
		{
			"converter breaks naming scheme",
			func(p *BindingsPlan) { p.Helpers[3].Converter = "StringConverter" },
			`converter must be named "FfiConverterString"`,
		},
		{
			"helper without rendered type",
			func(p *BindingsPlan) { p.Helpers[0].TsType = "" },
			"helper has no rendered type",
		},
		{
			"unbalanced generics",
			func(p *BindingsPlan) { p.Helpers[0].TsType = "Array<number" },
			"unbalanced generics",
		},
		{
			"param without canonical name",
			func(p *BindingsPlan) { p.Functions[0].Params[0].Canonical = "" },
			"reference has no canonical name",
		},
		{
			"empty return",
			func(p *BindingsPlan) { p.Functions[0].Return = "" },
			"function has no return type",
		},
		{
			"void return with canonical name",
			func(p *BindingsPlan) {
				p.Functions[0].Return = "void"
				p.Functions[0].ReturnCanonical = "OptionalPoint"
			},
			"void return carries a canonical name",
		},
		{
			"referenced canonical without helper",
			func(p *BindingsPlan) { p.Helpers = p.Helpers[1:] },
			"canonical name has no helper",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := validPlan()
			tt.mutate(plan)
			err := ValidatePlan(plan)
			assert.Check(t, is.ErrorContains(err, tt.wantErr))
		})
	}
}

func TestValidatePlanWarnsOnUnsortedHelpers(t *testing.T) {
	plan := validPlan()
	plan.Helpers[0], plan.Helpers[1] = plan.Helpers[1], plan.Helpers[0]

	v := NewValidator()
	assert.NilError(t, v.Validate(plan))
	assert.Equal(t, 0, len(v.Errors()))
	assert.Assert(t, len(v.warns) > 0)
}

func TestValidatePlanCollectsAllDefects(t *testing.T) {
	plan := validPlan()
	plan.Module = ""
	plan.Helpers[0].TsType = ""

	v := NewValidator()
	err := v.Validate(plan)
	assert.Assert(t, err != nil)
	assert.Equal(t, 2, len(v.Errors()))
}

func TestQuickValidateRejectsBrokenHelpers(t *testing.T) {
	plan := validPlan()
	plan.Helpers[0].Converter = "wrong"
	assert.Assert(t, !QuickValidate(plan))
}
