package wires4d

var (
	Debug = false // set to true for verbose topology generation output
)
