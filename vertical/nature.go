package vertical

import "strings"

// Nature names the physical quantity a converter's Levels output is
// expressed in.
type Nature int

const (
	NaturePressure Nature = iota
	NatureAltitude
	NatureDepth
	NatureHeight
)

// InferNature decides the physical nature of a vertical axis from
// whatever metadata is available, in priority order: an explicit CF
// "positive" or unit-derived attribute first, then a name-suffix
// convention, then the unit string itself. This resolves the open
// question of how much of CF's attribute-driven factory logic to
// replicate: rather than an implicit cascade buried in one function,
// the priority list is explicit and the caller can always bypass it by
// constructing a converter directly.
func InferNature(attribute, name, unit string) Nature {
	switch attribute {
	case "down":
		return NatureDepth
	case "up":
		return NatureAltitude
	}

	upper := strings.ToUpper(name)
	switch {
	case strings.HasSuffix(upper, "_MSL"):
		return NatureAltitude
	case strings.HasSuffix(upper, "_GND"):
		return NatureHeight
	}

	switch unit {
	case "Pa", "hPa", "mbar":
		return NaturePressure
	case "m":
		return NatureAltitude
	}

	return NaturePressure
}
