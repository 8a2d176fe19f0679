package scene

// DimStyle is a DIMSTYLE table entry. Field names mirror the system
// variables they come from.
type DimStyle struct {
	Name   string
	Handle string

	DIMSCALE float64
	DIMASZ   float64
	DIMEXO   float64
	DIMEXE   float64
	DIMGAP   float64
	DIMTXT   float64
	DIMTSZ   float64 // tick size, >0 replaces arrows
	DIMCEN   float64
	DIMDLE   float64

	DIMBLK  string
	DIMBLK1 string
	DIMBLK2 string
	DIMSAH  bool
	DIMSE1  bool
	DIMSE2  bool
	DIMSD1  bool
	DIMSD2  bool

	DIMLFAC  float64
	DIMLUNIT int // 1 scientific, 2 decimal, 3 engineering, 4 architectural, 5 fractional
	DIMDEC   int
	DIMZIN   int
	DIMDSEP  string
	DIMRND   float64
	DIMPOST  string
	DIMFRAC  int

	DIMAUNIT int // 0 decimal degrees, 1 deg/min/sec, 2 gradians, 3 radians, 4 degrees-minutes
	DIMADEC  int
	DIMAZIN  int

	DIMTOL  bool
	DIMLIM  bool
	DIMTP   float64
	DIMTM   float64
	DIMTDEC int
	DIMTZIN int
	DIMTFAC float64

	DIMALT    bool
	DIMALTF   float64
	DIMALTD   int
	DIMALTU   int
	DIMALTZ   int
	DIMAPOST  string
	DIMALTRND float64

	DIMCLRD  ColorIndex
	DIMCLRE  ColorIndex
	DIMCLRT  ColorIndex
	DIMTXSTY string
}

// DefaultDimStyle returns the imperial STANDARD style.
func DefaultDimStyle() DimStyle {
	return DimStyle{
		Name:     "STANDARD",
		DIMSCALE: 1,
		DIMASZ:   0.18,
		DIMEXO:   0.0625,
		DIMEXE:   0.18,
		DIMGAP:   0.09,
		DIMTXT:   0.18,
		DIMCEN:   0.09,
		DIMLFAC:  1,
		DIMLUNIT: 2,
		DIMDEC:   4,
		DIMDSEP:  ".",
		DIMADEC:  0,
		DIMTDEC:  4,
		DIMTFAC:  1,
		DIMALTF:  25.4,
		DIMALTD:  2,
		DIMALTU:  2,
	}
}
