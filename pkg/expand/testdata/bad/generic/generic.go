package generic

//ifacelink:define
type GenericIf[T any] interface {
	Get() T
}
