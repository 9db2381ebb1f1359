package component

// WalkType visits t and every descriptor nested inside it, parent before
// children, key before value. Descriptors are finite trees so the walk
// always terminates. A nil t is ignored.
func WalkType(t Type, visit func(Type)) {
	if t == nil {
		return
	}
	visit(t)
	switch d := t.(type) {
	case OptionalType:
		WalkType(d.Inner, visit)
	case SequenceType:
		WalkType(d.Inner, visit)
	case MapType:
		WalkType(d.Key, visit)
		WalkType(d.Value, visit)
	}
}

// WalkTypes visits every type reference in the interface, nested shapes
// included: function parameters and returns, thrown errors, record fields,
// enum and error variant payloads, object constructors and methods, and
// callback methods. Positions are visited in declaration order; each
// position is expanded with WalkType. Shapes referenced from several
// positions are visited once per reference.
func (i *Interface) WalkTypes(visit func(Type)) {
	walkFunc := func(f FunctionDef) {
		for _, p := range f.Params {
			WalkType(p.Type, visit)
		}
		WalkType(f.Return, visit)
		if f.Throws != nil {
			WalkType(*f.Throws, visit)
		}
	}
	walkFields := func(fields []Field) {
		for _, f := range fields {
			WalkType(f.Type, visit)
		}
	}
	walkVariants := func(variants []VariantDef) {
		for _, v := range variants {
			walkFields(v.Fields)
		}
	}

	for _, f := range i.Functions {
		walkFunc(f)
	}
	for _, r := range i.Records {
		walkFields(r.Fields)
	}
	for _, e := range i.Enums {
		walkVariants(e.Variants)
	}
	for _, o := range i.Objects {
		for _, c := range o.Constructors {
			walkFunc(c)
		}
		for _, m := range o.Methods {
			walkFunc(m)
		}
	}
	for _, e := range i.Errors {
		walkVariants(e.Variants)
	}
	for _, c := range i.Callbacks {
		for _, m := range c.Methods {
			walkFunc(m)
		}
	}
}
