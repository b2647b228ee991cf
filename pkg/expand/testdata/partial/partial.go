package partial

// Overrides only BaseValue of the two defaulted DerivedIf methods;
// DerivedValue keeps its default, which must follow this override
// through the self proxy.
//
//ifacelink:impl DerivedIf
type PartialImpl struct{}

func (p PartialImpl) BaseValue() int {
	return 500
}
