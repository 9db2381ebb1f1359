package typescript

// Compound code types combine the names of already-resolved constituents.
// The canonical side concatenates with a variant prefix, which keeps
// differently-nested shapes distinct: OptionalSequenceInt32 and
// SequenceOptionalInt32 are different names for different shapes.

type optionalCodeType struct {
	inner CodeType
}

func (c optionalCodeType) TypeLabel() string {
	return c.inner.TypeLabel() + " | undefined"
}

func (c optionalCodeType) CanonicalName() string {
	return "Optional" + c.inner.CanonicalName()
}

type sequenceCodeType struct {
	inner CodeType
}

func (c sequenceCodeType) TypeLabel() string {
	return "Array<" + c.inner.TypeLabel() + ">"
}

func (c sequenceCodeType) CanonicalName() string {
	return "Sequence" + c.inner.CanonicalName()
}

type mapCodeType struct {
	key   CodeType
	value CodeType
}

func (c mapCodeType) TypeLabel() string {
	return "Map<" + c.key.TypeLabel() + ", " + c.value.TypeLabel() + ">"
}

func (c mapCodeType) CanonicalName() string {
	return "Map" + c.key.CanonicalName() + c.value.CanonicalName()
}
