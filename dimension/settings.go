package dimension

import (
	"strings"

	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

// LinearUnit is a DIMLUNIT code.
type LinearUnit int

const (
	Scientific    LinearUnit = 1
	Decimal       LinearUnit = 2
	Engineering   LinearUnit = 3
	Architectural LinearUnit = 4
	Fractional    LinearUnit = 5
)

// AngularUnit is a DIMAUNIT code. DegreesMinutes has no system variable code
// of its own and uses 4.
type AngularUnit int

const (
	DecimalDegrees AngularUnit = 0
	DegMinSec      AngularUnit = 1
	Gradians       AngularUnit = 2
	Radians        AngularUnit = 3
	DegreesMinutes AngularUnit = 4
)

// Zeros are zero-suppression flags.
type Zeros struct {
	Leading  bool // 0.50 -> .50
	Trailing bool // 12.50 -> 12.5
	Feet     bool // 0'-6" -> 6"
	Inches   bool // 3'-0" -> 3'
}

// ZerosFromDIMZIN decodes a DIMZIN style bit field. The low two bits select
// feet and inch suppression, 4 suppresses leading and 8 trailing zeros.
func ZerosFromDIMZIN(v int) Zeros {
	z := Zeros{Leading: v&4 != 0, Trailing: v&8 != 0}
	switch v & 3 {
	case 0:
		z.Feet, z.Inches = true, true
	case 2:
		z.Inches = true
	case 3:
		z.Feet = true
	}
	return z
}

// ZerosFromAngular decodes DIMAZIN, where 1 suppresses leading and 2
// trailing zeros.
func ZerosFromAngular(v int) Zeros {
	return Zeros{Leading: v&1 != 0, Trailing: v&2 != 0}
}

// LinearFormat controls one linear value's text.
type LinearFormat struct {
	Unit      LinearUnit
	Precision int
	Zeros     Zeros
	Separator string  // decimal separator, "" means "."
	Round     float64 // rounding increment, 0 disables
}

// AngularFormat controls one angular value's text.
type AngularFormat struct {
	Unit      AngularUnit
	Precision int
	Zeros     Zeros
	Separator string
}

// Settings are the resolved dimension style values. Distances are already
// multiplied by the overall scale.
type Settings struct {
	ArrowSize  float64
	ExtOffset  float64
	ExtExtend  float64
	Gap        float64
	TextHeight float64
	TickSize   float64
	CenterMark float64
	DimExtend  float64

	Block1, Block2 string
	SuppressExt1   bool
	SuppressExt2   bool
	SuppressDim1   bool
	SuppressDim2   bool

	LinearFactor float64
	Linear       LinearFormat
	Angular      AngularFormat
	Post         string // DIMPOST, "<>" marks the value

	Tolerance    bool
	Limits       bool
	TolPlus      float64
	TolMinus     float64
	TolPrecision int
	TolZeros     Zeros

	Alt       bool
	AltFactor float64
	AltFormat LinearFormat
	AltPost   string
	TextStyle string
	LineColor scene.ColorIndex
	ExtColor  scene.ColorIndex
	TextColor scene.ColorIndex
}

// FromStyle resolves Settings from a dimension style. A nil style uses
// scene.DefaultDimStyle.
func FromStyle(st *scene.DimStyle) Settings {
	if st == nil {
		d := scene.DefaultDimStyle()
		st = &d
	}
	scale := positive(st.DIMSCALE, 1)
	def := scene.DefaultDimStyle()

	s := Settings{
		ArrowSize:  nonNegative(st.DIMASZ, def.DIMASZ) * scale,
		ExtOffset:  nonNegative(st.DIMEXO, def.DIMEXO) * scale,
		ExtExtend:  nonNegative(st.DIMEXE, def.DIMEXE) * scale,
		Gap:        abs(nonZero(st.DIMGAP, def.DIMGAP)) * scale,
		TextHeight: positive(st.DIMTXT, def.DIMTXT) * scale,
		TickSize:   st.DIMTSZ * scale,
		CenterMark: st.DIMCEN * scale,
		DimExtend:  st.DIMDLE * scale,

		SuppressExt1: st.DIMSE1,
		SuppressExt2: st.DIMSE2,
		SuppressDim1: st.DIMSD1,
		SuppressDim2: st.DIMSD2,

		LinearFactor: nonZero(st.DIMLFAC, 1),
		Linear: LinearFormat{
			Unit:      linearUnit(st.DIMLUNIT),
			Precision: clampPrecision(st.DIMDEC),
			Zeros:     ZerosFromDIMZIN(st.DIMZIN),
			Separator: st.DIMDSEP,
			Round:     st.DIMRND,
		},
		Angular: AngularFormat{
			Unit:      AngularUnit(st.DIMAUNIT),
			Precision: clampPrecision(st.DIMADEC),
			Zeros:     ZerosFromAngular(st.DIMAZIN),
			Separator: st.DIMDSEP,
		},
		Post: st.DIMPOST,

		Tolerance:    st.DIMTOL,
		Limits:       st.DIMLIM,
		TolPlus:      st.DIMTP,
		TolMinus:     st.DIMTM,
		TolPrecision: clampPrecision(st.DIMTDEC),
		TolZeros:     ZerosFromDIMZIN(st.DIMTZIN),

		Alt:       st.DIMALT,
		AltFactor: positive(st.DIMALTF, 25.4),
		AltFormat: LinearFormat{
			Unit:      linearUnit(st.DIMALTU),
			Precision: clampPrecision(st.DIMALTD),
			Zeros:     ZerosFromDIMZIN(st.DIMALTZ),
			Separator: st.DIMDSEP,
			Round:     st.DIMALTRND,
		},
		AltPost:   st.DIMAPOST,
		TextStyle: st.DIMTXSTY,
		LineColor: st.DIMCLRD,
		ExtColor:  st.DIMCLRE,
		TextColor: st.DIMCLRT,
	}
	s.Block1, s.Block2 = st.DIMBLK, st.DIMBLK
	if st.DIMSAH {
		s.Block1, s.Block2 = st.DIMBLK1, st.DIMBLK2
	}
	if s.Angular.Unit < DecimalDegrees || s.Angular.Unit > DegreesMinutes {
		s.Angular.Unit = DecimalDegrees
	}
	return s
}

// Apply returns s with per-entity overrides applied. Numeric overrides are
// keyed by system variable name; distances are multiplied by the DIMSCALE
// override or 1.
func (s Settings) Apply(num map[string]float64, str map[string]string) Settings {
	if len(num) == 0 && len(str) == 0 {
		return s
	}
	n := make(map[string]float64, len(num))
	for k, v := range num {
		n[strings.ToUpper(k)] = v
	}
	scale := 1.0
	if v, ok := n["DIMSCALE"]; ok && v > 0 {
		scale = v
	}
	set := func(name string, dst *float64, scaled bool) {
		if v, ok := n[name]; ok {
			if scaled {
				v *= scale
			}
			*dst = v
		}
	}
	setInt := func(name string, dst *int) {
		if v, ok := n[name]; ok {
			*dst = int(v)
		}
	}
	flag := func(name string, dst *bool) {
		if v, ok := n[name]; ok {
			*dst = v != 0
		}
	}

	set("DIMASZ", &s.ArrowSize, true)
	set("DIMEXO", &s.ExtOffset, true)
	set("DIMEXE", &s.ExtExtend, true)
	set("DIMGAP", &s.Gap, true)
	set("DIMTXT", &s.TextHeight, true)
	set("DIMTSZ", &s.TickSize, true)
	set("DIMCEN", &s.CenterMark, true)
	set("DIMDLE", &s.DimExtend, true)
	set("DIMLFAC", &s.LinearFactor, false)
	set("DIMRND", &s.Linear.Round, false)
	set("DIMTP", &s.TolPlus, false)
	set("DIMTM", &s.TolMinus, false)
	set("DIMALTF", &s.AltFactor, false)
	set("DIMALTRND", &s.AltFormat.Round, false)

	lunit, aunit, altu := int(s.Linear.Unit), int(s.Angular.Unit), int(s.AltFormat.Unit)
	setInt("DIMLUNIT", &lunit)
	setInt("DIMAUNIT", &aunit)
	setInt("DIMALTU", &altu)
	s.Linear.Unit = linearUnit(lunit)
	s.AltFormat.Unit = linearUnit(altu)
	if aunit >= int(DecimalDegrees) && aunit <= int(DegreesMinutes) {
		s.Angular.Unit = AngularUnit(aunit)
	}
	setInt("DIMDEC", &s.Linear.Precision)
	setInt("DIMADEC", &s.Angular.Precision)
	setInt("DIMTDEC", &s.TolPrecision)
	setInt("DIMALTD", &s.AltFormat.Precision)
	s.Linear.Precision = clampPrecision(s.Linear.Precision)
	s.Angular.Precision = clampPrecision(s.Angular.Precision)
	s.TolPrecision = clampPrecision(s.TolPrecision)
	s.AltFormat.Precision = clampPrecision(s.AltFormat.Precision)

	if v, ok := n["DIMZIN"]; ok {
		s.Linear.Zeros = ZerosFromDIMZIN(int(v))
	}
	if v, ok := n["DIMAZIN"]; ok {
		s.Angular.Zeros = ZerosFromAngular(int(v))
	}
	if v, ok := n["DIMTZIN"]; ok {
		s.TolZeros = ZerosFromDIMZIN(int(v))
	}
	if v, ok := n["DIMALTZ"]; ok {
		s.AltFormat.Zeros = ZerosFromDIMZIN(int(v))
	}
	flag("DIMTOL", &s.Tolerance)
	flag("DIMLIM", &s.Limits)
	flag("DIMALT", &s.Alt)
	flag("DIMSE1", &s.SuppressExt1)
	flag("DIMSE2", &s.SuppressExt2)
	flag("DIMSD1", &s.SuppressDim1)
	flag("DIMSD2", &s.SuppressDim2)

	for k, v := range str {
		switch strings.ToUpper(k) {
		case "DIMPOST":
			s.Post = v
		case "DIMAPOST":
			s.AltPost = v
		case "DIMBLK":
			s.Block1, s.Block2 = v, v
		case "DIMBLK1":
			s.Block1 = v
		case "DIMBLK2":
			s.Block2 = v
		case "DIMDSEP":
			s.Linear.Separator, s.Angular.Separator, s.AltFormat.Separator = v, v, v
		case "DIMTXSTY":
			s.TextStyle = v
		}
	}
	return s
}

func linearUnit(v int) LinearUnit {
	if v < int(Scientific) || v > int(Fractional) {
		// 6 is Windows desktop units, rendered as decimal.
		return Decimal
	}
	return LinearUnit(v)
}

func clampPrecision(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 8:
		return 8
	}
	return p
}

func positive(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func nonNegative(v, def float64) float64 {
	if v < 0 {
		return def
	}
	return v
}

func nonZero(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
