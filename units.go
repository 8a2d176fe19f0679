package dxfrender

import "github.com/wieslawsoltes/DxfParser-sub001/scene"

// Unit is an INSUNITS code.
type Unit int

const (
	Unitless Unit = iota
	Inches
	Feet
	Miles
	Millimeters
	Centimeters
	Meters
	Kilometers
	Microinches
	Mils
	Yards
	Angstroms
	Nanometers
	Microns
	Decimeters
	Decameters
	Hectometers
	Gigameters
	AstronomicalUnits
	LightYears
	Parsecs
)

var metersPerUnit = [...]float64{
	Inches:            0.0254,
	Feet:              0.3048,
	Miles:             1609.344,
	Millimeters:       1e-3,
	Centimeters:       1e-2,
	Meters:            1,
	Kilometers:        1e3,
	Microinches:       2.54e-8,
	Mils:              2.54e-5,
	Yards:             0.9144,
	Angstroms:         1e-10,
	Nanometers:        1e-9,
	Microns:           1e-6,
	Decimeters:        0.1,
	Decameters:        10,
	Hectometers:       100,
	Gigameters:        1e9,
	AstronomicalUnits: 1.495978707e11,
	LightYears:        9.4607304725808e15,
	Parsecs:           3.0856775814913673e16,
}

// Known reports whether u has a length in the conversion table.
func (u Unit) Known() bool {
	return u > Unitless && int(u) < len(metersPerUnit)
}

// Meters returns the length of one unit in meters, or 0 for unknown units.
func (u Unit) Meters() float64 {
	if !u.Known() {
		return 0
	}
	return metersPerUnit[u]
}

// UnitScale returns the factor converting lengths in from to lengths in to.
// Unitless or unknown codes convert with factor 1.
func UnitScale(from, to Unit) float64 {
	if !from.Known() || !to.Known() || from == to {
		return 1
	}
	return from.Meters() / to.Meters()
}

// insertUnits resolves the unit conversion for a block reference. The
// source is the block's own units, else the header's default source units;
// the target is the active units of the enclosing context, else the
// header's default target units. If either side is missing the factor is 1.
// units is the active unit code inside the block.
func insertUnits(h *scene.Header, block, active Unit) (factor float64, units Unit) {
	source := block
	if !source.Known() {
		source = Unit(h.InsUnitsDefSource)
	}
	target := active
	if !target.Known() {
		target = Unit(h.InsUnitsDefTarget)
	}
	if !source.Known() || !target.Known() {
		if source.Known() {
			return 1, source
		}
		return 1, active
	}
	return UnitScale(source, target), source
}

// drawingUnits returns the active units at the top level.
func drawingUnits(h *scene.Header) Unit {
	if u := Unit(h.InsUnits); u.Known() {
		return u
	}
	return Unit(h.InsUnitsDefTarget)
}
