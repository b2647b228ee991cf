package hal

// SimpleIf is the contract a kernel-side driver provides to the
// hardware abstraction layer.
//
//ifacelink:define gen_caller
type SimpleIf interface {
	GetValue() int
	Compute(a, b int) int
}
