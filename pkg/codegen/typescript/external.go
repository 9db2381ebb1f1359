package typescript

// externalCodeType references a declaration from another supplied module.
// The rendering qualifies the class name with the module's import alias.
// The canonical name prefixes the raw module name, keeping identically
// named declarations from different modules apart.
type externalCodeType struct {
	module string
	name   string
}

func (c externalCodeType) TypeLabel() string {
	return ModuleAlias(c.module) + "." + ClassName(c.name)
}

func (c externalCodeType) CanonicalName() string {
	return c.module + "_" + c.name
}
