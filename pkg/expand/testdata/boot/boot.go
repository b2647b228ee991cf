package boot

//ifacelink:call SimpleIf::GetValue
var getValue func() int

//ifacelink:call hal::SimpleIf::Compute
var compute func(a, b int) int

func Report() int {
	return getValue() + compute(10, 5)
}
