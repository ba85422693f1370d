package codegen

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // zero value is not a valid node kind

	KindLine
	KindMethod
	KindConstructor
	KindClass
	KindModule
	KindPackage

	// KindTotal is the number of kinds defined
	KindTotal = int(iota)
)
