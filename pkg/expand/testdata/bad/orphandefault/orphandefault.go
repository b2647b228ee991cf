package orphandefault

//ifacelink:default MissingIf.Value
func defaultValue() int {
	return 1
}
