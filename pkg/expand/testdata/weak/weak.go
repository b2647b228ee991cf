package weak

//ifacelink:define gen_caller
type DerivedIf interface {
	BaseValue() int
	DerivedValue() int
}

//ifacelink:default DerivedIf.BaseValue
func defaultBaseValue() int {
	return 100
}

//ifacelink:default DerivedIf.DerivedValue
func defaultDerivedValue() int {
	return defaultBaseValue() * 2
}
