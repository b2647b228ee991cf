package variadic

//ifacelink:define
type VariadicIf interface {
	Sum(vs ...int) int
}
