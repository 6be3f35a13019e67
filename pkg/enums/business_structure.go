package enums

import "fmt"

// BusinessStructure enumerates the CIPC registration types the intake accepts.
type BusinessStructure string

const (
	BusinessStructurePty         BusinessStructure = "pty"
	BusinessStructureNGO         BusinessStructure = "ngo"
	BusinessStructureSole        BusinessStructure = "sole"
	BusinessStructurePartnership BusinessStructure = "partnership"
)

var validBusinessStructures = []BusinessStructure{
	BusinessStructurePty,
	BusinessStructureNGO,
	BusinessStructureSole,
	BusinessStructurePartnership,
}

// String implements fmt.Stringer.
func (b BusinessStructure) String() string {
	return string(b)
}

// IsValid reports whether the structure is recognized.
func (b BusinessStructure) IsValid() bool {
	for _, candidate := range validBusinessStructures {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBusinessStructure converts a raw string into a BusinessStructure.
func ParseBusinessStructure(value string) (BusinessStructure, error) {
	for _, candidate := range validBusinessStructures {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid business structure %q", value)
}
