package dupdef

//ifacelink:define
type DupIf interface {
	Get() int
}
