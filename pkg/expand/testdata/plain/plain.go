package plain

func Nothing() int {
	return 0
}
