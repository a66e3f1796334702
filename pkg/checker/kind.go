package checker

import "fmt"

// SpaceKind is the kind of scope a function space represents.
type SpaceKind uint8

const (
	SpaceUnknown SpaceKind = iota
	SpaceUnit
	SpaceFunction
	SpaceClosure
	SpaceClass
	SpaceStruct
	SpaceTrait
	SpaceImpl
	SpaceInterface
	SpaceNamespace
)

var spaceKindNames = [...]string{
	SpaceUnknown:   "unknown",
	SpaceUnit:      "unit",
	SpaceFunction:  "function",
	SpaceClosure:   "closure",
	SpaceClass:     "class",
	SpaceStruct:    "struct",
	SpaceTrait:     "trait",
	SpaceImpl:      "impl",
	SpaceInterface: "interface",
	SpaceNamespace: "namespace",
}

// String returns the lower-case name of the kind.
func (k SpaceKind) String() string {
	if int(k) < len(spaceKindNames) {
		return spaceKindNames[k]
	}
	return spaceKindNames[SpaceUnknown]
}

// IsCallable reports whether the kind is a function or a closure.
func (k SpaceKind) IsCallable() bool {
	return k == SpaceFunction || k == SpaceClosure
}

// MarshalText implements encoding.TextMarshaler.
func (k SpaceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SpaceKind) UnmarshalText(text []byte) error {
	for i, name := range spaceKindNames {
		if name == string(text) {
			*k = SpaceKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown space kind %q", text)
}
