package unknownopt

//ifacelink:define whatever
type OptIf interface {
	Get() int
}
