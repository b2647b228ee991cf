package dupdef

//ifacelink:define namespace = other
type DupIf interface {
	Get() int
}
