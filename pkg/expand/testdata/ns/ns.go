package ns

//ifacelink:define namespace = kmod
type NsIf interface {
	Qux() int
}

//ifacelink:impl NsIf, namespace = kmod
type NsImpl struct{}

func (n NsImpl) Qux() int {
	return 7
}
