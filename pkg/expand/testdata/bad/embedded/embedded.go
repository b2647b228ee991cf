package embedded

type Base interface {
	Get() int
}

//ifacelink:define
type EmbeddedIf interface {
	Base
	Extra() int
}
