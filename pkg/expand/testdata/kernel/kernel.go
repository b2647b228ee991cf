package kernel

//ifacelink:impl SimpleIf
type SimpleImpl struct{}

func (s SimpleImpl) GetValue() int {
	return 12345
}

func (s SimpleImpl) Compute(a, b int) int {
	return a*b + 10
}

// a pointer-receiver helper, not part of the link surface
func (s *SimpleImpl) reset() {
	*s = SimpleImpl{}
}
