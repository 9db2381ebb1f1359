package component

// EqualTypes reports whether two descriptors are structurally identical:
// same variant and, recursively, identical constituents. Named variants
// compare by name (and module, for externals); structure behind the name is
// irrelevant because names are unique within a run.
func EqualTypes(a, b Type) bool {
	switch at := a.(type) {
	case PrimitiveType:
		bt, ok := b.(PrimitiveType)
		return ok && at.Kind == bt.Kind
	case OptionalType:
		bt, ok := b.(OptionalType)
		return ok && EqualTypes(at.Inner, bt.Inner)
	case SequenceType:
		bt, ok := b.(SequenceType)
		return ok && EqualTypes(at.Inner, bt.Inner)
	case MapType:
		bt, ok := b.(MapType)
		return ok && EqualTypes(at.Key, bt.Key) && EqualTypes(at.Value, bt.Value)
	case RecordType:
		bt, ok := b.(RecordType)
		return ok && at.Name == bt.Name
	case EnumType:
		bt, ok := b.(EnumType)
		return ok && at.Name == bt.Name
	case ObjectType:
		bt, ok := b.(ObjectType)
		return ok && at.Name == bt.Name
	case ErrorType:
		bt, ok := b.(ErrorType)
		return ok && at.Name == bt.Name
	case CallbackType:
		bt, ok := b.(CallbackType)
		return ok && at.Name == bt.Name
	case ExternalType:
		bt, ok := b.(ExternalType)
		return ok && at.Module == bt.Module && at.Name == bt.Name
	case BuiltinType:
		bt, ok := b.(BuiltinType)
		return ok && at.ID == bt.ID
	case nil:
		return b == nil
	default:
		return false
	}
}
