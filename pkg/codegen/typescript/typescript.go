// Package typescript implements TypeScript bindings plan generation.
//
// Design: plan generation only, no template rendering.
// Every type reference is resolved through the oracle, and every canonical
// name produced along the way is claimed in the run's registry.
// Deterministic output - the same interface and config yield the same plan.
package typescript

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/component"
	"github.com/ianthetechie/uniffi-bindgen-react-native/pkg/logger"
)

// Generator builds the bindings plan for one component interface.
type Generator struct {
	iface  *component.Interface
	cfg    Config
	oracle *Oracle
}

// NewGenerator creates a generator for one run over iface. The generator
// owns a fresh oracle, so runs never share naming state.
func NewGenerator(iface *component.Interface, cfg Config) *Generator {
	return &Generator{
		iface:  iface,
		cfg:    cfg,
		oracle: NewOracle(iface),
	}
}

// Oracle exposes the run's type oracle.
func (g *Generator) Oracle() *Oracle {
	return g.oracle
}

// Generate resolves every declaration and type reference in the interface
// into a bindings plan. It fails on the first unresolved external module,
// unknown builtin or canonical name collision; a partial plan is never
// returned.
func (g *Generator) Generate() (*BindingsPlan, error) {
	run := uuid.NewString()
	module := g.cfg.ModuleName
	if module == "" {
		module = g.iface.Name
	}
	logger.Debug("Generating TypeScript bindings plan", "module", module, "run", run)

	plan := &BindingsPlan{Module: module}
	plan.Imports = g.planImports()

	for _, f := range g.iface.Functions {
		fp, err := g.planFunction(f)
		if err != nil {
			logger.Error("Failed to resolve function", "module", module, "function", f.Name, "error", err)
			return nil, errors.Wrapf(err, "function %q", f.Name)
		}
		plan.Functions = append(plan.Functions, fp)
	}
	for _, r := range g.iface.Records {
		rp, err := g.planRecord(r)
		if err != nil {
			logger.Error("Failed to resolve record", "module", module, "record", r.Name, "error", err)
			return nil, errors.Wrapf(err, "record %q", r.Name)
		}
		plan.Records = append(plan.Records, rp)
	}
	for _, e := range g.iface.Enums {
		ep, err := g.planEnum(e.Name, e.Variants)
		if err != nil {
			logger.Error("Failed to resolve enum", "module", module, "enum", e.Name, "error", err)
			return nil, errors.Wrapf(err, "enum %q", e.Name)
		}
		plan.Enums = append(plan.Enums, ep)
	}
	for _, o := range g.iface.Objects {
		op, err := g.planObject(o)
		if err != nil {
			logger.Error("Failed to resolve object", "module", module, "object", o.Name, "error", err)
			return nil, errors.Wrapf(err, "object %q", o.Name)
		}
		plan.Objects = append(plan.Objects, op)
	}
	for _, e := range g.iface.Errors {
		ep, err := g.planEnum(e.Name, e.Variants)
		if err != nil {
			logger.Error("Failed to resolve error", "module", module, "error_decl", e.Name, "error", err)
			return nil, errors.Wrapf(err, "error %q", e.Name)
		}
		plan.Errors = append(plan.Errors, ep)
	}
	for _, c := range g.iface.Callbacks {
		cp, err := g.planCallback(c)
		if err != nil {
			logger.Error("Failed to resolve callback", "module", module, "callback", c.Name, "error", err)
			return nil, errors.Wrapf(err, "callback %q", c.Name)
		}
		plan.Callbacks = append(plan.Callbacks, cp)
	}

	helpers, err := g.collectHelpers()
	if err != nil {
		logger.Error("Failed to collect type helpers", "module", module, "error", err)
		return nil, errors.Wrap(err, "collecting type helpers")
	}
	plan.Helpers = helpers

	logger.Info("TypeScript plan generation complete",
		"module", module,
		"declarations", len(g.iface.DeclNames())+len(g.iface.Functions),
		"helpers", len(helpers),
		"canonical_names", g.oracle.Registry().Len())
	return plan, nil
}

// GenerateWithValidation generates a plan and re-checks it against the
// naming contract before returning it.
func (g *Generator) GenerateWithValidation() (*BindingsPlan, error) {
	plan, err := g.Generate()
	if err != nil {
		return nil, err
	}
	if err := ValidatePlan(plan); err != nil {
		logger.Error("Plan validation failed", "module", plan.Module, "error", err)
		return plan, errors.Wrap(err, "validation failed")
	}
	logger.Info("Plan generated and validated successfully", "module", plan.Module)
	return plan, nil
}

// planImports lists every supplied external module, sorted, with its import
// alias and path. Modules without a configured path import by bare name.
func (g *Generator) planImports() []ImportSpec {
	if len(g.iface.Imports) == 0 {
		return nil
	}
	modules := append([]string(nil), g.iface.Imports...)
	sort.Strings(modules)

	specs := make([]ImportSpec, 0, len(modules))
	for _, m := range modules {
		path := g.cfg.ExternalImports[m]
		if path == "" {
			path = m
		}
		specs = append(specs, ImportSpec{Module: m, Alias: ModuleAlias(m), Path: path})
	}
	return specs
}

// resolve returns both names the plan carries for a type reference.
func (g *Generator) resolve(t component.Type) (rendered, canonical string, err error) {
	if rendered, err = g.oracle.Render(t); err != nil {
		return "", "", err
	}
	if canonical, err = g.oracle.CanonicalName(t); err != nil {
		return "", "", err
	}
	return rendered, canonical, nil
}

func (g *Generator) planTyped(name string, t component.Type) (ParamPlan, error) {
	rendered, canonical, err := g.resolve(t)
	if err != nil {
		return ParamPlan{}, err
	}
	return ParamPlan{
		Name:      name,
		TsName:    FuncName(name),
		Type:      rendered,
		Canonical: canonical,
	}, nil
}

func (g *Generator) planFunction(f component.FunctionDef) (FunctionPlan, error) {
	fp := FunctionPlan{
		Name:   f.Name,
		TsName: FuncName(f.Name),
		Return: "void",
	}
	for _, p := range f.Params {
		pp, err := g.planTyped(p.Name, p.Type)
		if err != nil {
			return fp, errors.Wrapf(err, "param %q", p.Name)
		}
		fp.Params = append(fp.Params, pp)
	}
	if f.Return != nil {
		rendered, canonical, err := g.resolve(f.Return)
		if err != nil {
			return fp, errors.Wrap(err, "return type")
		}
		fp.Return, fp.ReturnCanonical = rendered, canonical
	}
	if f.Throws != nil {
		rendered, canonical, err := g.resolve(*f.Throws)
		if err != nil {
			return fp, errors.Wrap(err, "throws")
		}
		fp.Throws, fp.ThrowsCanonical = rendered, canonical
	}
	return fp, nil
}

func (g *Generator) planFields(fields []component.Field) ([]ParamPlan, error) {
	var out []ParamPlan
	for _, f := range fields {
		pp, err := g.planTyped(f.Name, f.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", f.Name)
		}
		out = append(out, pp)
	}
	return out, nil
}

func (g *Generator) planRecord(r component.RecordDef) (RecordPlan, error) {
	fields, err := g.planFields(r.Fields)
	if err != nil {
		return RecordPlan{}, err
	}
	return RecordPlan{Name: r.Name, TsName: ClassName(r.Name), Fields: fields}, nil
}

func (g *Generator) planEnum(name string, variants []component.VariantDef) (EnumPlan, error) {
	ep := EnumPlan{Name: name, TsName: ClassName(name)}
	for _, v := range variants {
		fields, err := g.planFields(v.Fields)
		if err != nil {
			return ep, errors.Wrapf(err, "variant %q", v.Name)
		}
		ep.Variants = append(ep.Variants, VariantPlan{
			Name:   v.Name,
			TsName: ClassName(v.Name),
			Fields: fields,
		})
	}
	return ep, nil
}

func (g *Generator) planObject(o component.ObjectDef) (ObjectPlan, error) {
	op := ObjectPlan{Name: o.Name, TsName: ClassName(o.Name)}
	for _, c := range o.Constructors {
		fp, err := g.planFunction(c)
		if err != nil {
			return op, errors.Wrapf(err, "constructor %q", c.Name)
		}
		op.Constructors = append(op.Constructors, fp)
	}
	for _, m := range o.Methods {
		fp, err := g.planFunction(m)
		if err != nil {
			return op, errors.Wrapf(err, "method %q", m.Name)
		}
		op.Methods = append(op.Methods, fp)
	}
	return op, nil
}

func (g *Generator) planCallback(c component.CallbackDef) (CallbackPlan, error) {
	cp := CallbackPlan{Name: c.Name, TsName: ClassName(c.Name)}
	for _, m := range c.Methods {
		fp, err := g.planFunction(m)
		if err != nil {
			return cp, errors.Wrapf(err, "method %q", m.Name)
		}
		cp.Methods = append(cp.Methods, fp)
	}
	return cp, nil
}

// collectHelpers claims a canonical name and emits one converter helper for
// every distinct shape in the interface: each declaration's own type first,
// then every reference position, nested shapes included. Shapes reached more
// than once dedup by canonical name.
func (g *Generator) collectHelpers() ([]Helper, error) {
	seen := mapset.NewSet[string]()
	var helpers []Helper

	add := func(t component.Type) error {
		canonical, err := g.oracle.CanonicalName(t)
		if err != nil {
			return err
		}
		if !seen.Add(canonical) {
			return nil
		}
		rendered, err := g.oracle.Render(t)
		if err != nil {
			return err
		}
		helpers = append(helpers, Helper{
			CanonicalName: canonical,
			TsType:        rendered,
			Converter:     ConverterName(canonical),
		})
		return nil
	}

	for _, d := range g.iface.Records {
		if err := add(component.RecordType{Name: d.Name}); err != nil {
			return nil, err
		}
	}
	for _, d := range g.iface.Enums {
		if err := add(component.EnumType{Name: d.Name}); err != nil {
			return nil, err
		}
	}
	for _, d := range g.iface.Objects {
		if err := add(component.ObjectType{Name: d.Name}); err != nil {
			return nil, err
		}
	}
	for _, d := range g.iface.Errors {
		if err := add(component.ErrorType{Name: d.Name}); err != nil {
			return nil, err
		}
	}
	for _, d := range g.iface.Callbacks {
		if err := add(component.CallbackType{Name: d.Name}); err != nil {
			return nil, err
		}
	}

	var walkErr error
	g.iface.WalkTypes(func(t component.Type) {
		if walkErr != nil {
			return
		}
		walkErr = add(t)
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(helpers, func(i, j int) bool {
		return helpers[i].CanonicalName < helpers[j].CanonicalName
	})
	return helpers, nil
}
