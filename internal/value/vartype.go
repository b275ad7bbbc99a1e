package value

import (
	"fmt"
	"strings"
)

// VarType is the declared shape of a build variable.
type VarType uint8

const (
	// Untyped is used when no type was declared for a name.
	Untyped VarType = iota
	Scalar
	List
)

func (t VarType) String() string {
	switch t {
	case Scalar:
		return "SCALAR"
	case List:
		return "LIST"
	}
	return "untyped"
}

// ParseVarType accepts scalar|string|list in any case.
func ParseVarType(s string) (VarType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "string":
		return Scalar, nil
	case "list":
		return List, nil
	case "":
		return Untyped, nil
	default:
		return Untyped, fmt.Errorf("invalid variable type: %q (expected: scalar|list)", s)
	}
}
