package dimension

import (
	"math"
	"strconv"
	"strings"
)

// FormatLinear formats a linear value.
func FormatLinear(v float64, f LinearFormat) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if f.Round > 0 {
		v = math.Round(v/f.Round) * f.Round
	}
	switch f.Unit {
	case Scientific:
		return formatScientific(v, f)
	case Engineering:
		return formatEngineering(v, f)
	case Architectural:
		return formatArchitectural(v, f)
	case Fractional:
		return formatFractional(v, f)
	}
	return formatDecimal(v, f.Precision, f.Zeros, f.Separator)
}

func formatDecimal(v float64, prec int, z Zeros, sep string) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		s = s[1:]
	}
	if z.Trailing && strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if z.Leading {
		switch {
		case strings.HasPrefix(s, "0."):
			s = s[1:]
		case strings.HasPrefix(s, "-0."):
			s = "-" + s[2:]
		}
	}
	if sep != "" && sep != "." {
		s = strings.Replace(s, ".", sep, 1)
	}
	return s
}

func formatScientific(v float64, f LinearFormat) string {
	s := strconv.FormatFloat(v, 'E', f.Precision, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if f.Zeros.Trailing && strings.Contains(mant, ".") {
		mant = strings.TrimSuffix(strings.TrimRight(mant, "0"), ".")
	}
	if f.Separator != "" && f.Separator != "." {
		mant = strings.Replace(mant, ".", f.Separator, 1)
	}
	return mant + "E" + exp
}

func formatEngineering(v float64, f LinearFormat) string {
	neg := v < 0
	v = math.Abs(v)
	feet := math.Floor(v / 12)
	p := math.Pow(10, float64(f.Precision))
	inches := math.Round((v-feet*12)*p) / p
	if inches >= 12 {
		feet++
		inches -= 12
	}
	in := formatDecimal(inches, f.Precision, Zeros{Trailing: f.Zeros.Trailing}, f.Separator) + `"`
	return feetInches(neg, feet, in, inches == 0, f.Zeros)
}

func formatArchitectural(v float64, f LinearFormat) string {
	neg := v < 0
	den := int64(1) << uint(clampPrecision(f.Precision))
	units := int64(math.Round(math.Abs(v) * float64(den)))
	perFoot := 12 * den
	feet := units / perFoot
	rem := units % perFoot
	whole, num := rem/den, rem%den

	var in string
	switch {
	case num == 0:
		in = strconv.FormatInt(whole, 10)
	case whole == 0:
		in = fraction(num, den)
	default:
		in = strconv.FormatInt(whole, 10) + " " + fraction(num, den)
	}
	return feetInches(neg, float64(feet), in+`"`, rem == 0, f.Zeros)
}

func formatFractional(v float64, f LinearFormat) string {
	den := int64(1) << uint(clampPrecision(f.Precision))
	units := int64(math.Round(math.Abs(v) * float64(den)))
	whole, num := units/den, units%den

	var s string
	switch {
	case num == 0:
		s = strconv.FormatInt(whole, 10)
	case whole == 0:
		s = fraction(num, den)
	default:
		s = strconv.FormatInt(whole, 10) + " " + fraction(num, den)
	}
	if v < 0 && units != 0 {
		s = "-" + s
	}
	return s
}

// feetInches joins a feet count and formatted inch text, applying feet and
// inch zero suppression.
func feetInches(neg bool, feet float64, inchText string, zeroInches bool, z Zeros) string {
	var s string
	ft := strconv.FormatFloat(feet, 'f', 0, 64) + "'"
	switch {
	case feet == 0 && z.Feet:
		s = inchText
	case zeroInches && z.Inches:
		s = ft
	default:
		s = ft + "-" + inchText
	}
	if neg && !(feet == 0 && zeroInches) {
		s = "-" + s
	}
	return s
}

func fraction(num, den int64) string {
	g := gcd(num, den)
	return strconv.FormatInt(num/g, 10) + "/" + strconv.FormatInt(den/g, 10)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// FormatAngular formats an angle given in radians.
func FormatAngular(rad float64, f AngularFormat) string {
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return ""
	}
	switch f.Unit {
	case Radians:
		return formatDecimal(rad, f.Precision, f.Zeros, f.Separator) + "r"
	case Gradians:
		return formatDecimal(rad*200/math.Pi, f.Precision, f.Zeros, f.Separator) + "g"
	case DegMinSec:
		return formatDMS(rad, f)
	case DegreesMinutes:
		return formatDegreesMinutes(rad, f)
	}
	return formatDecimal(rad*180/math.Pi, f.Precision, f.Zeros, f.Separator) + "°"
}

func formatDMS(rad float64, f AngularFormat) string {
	sign := ""
	if rad < 0 {
		sign = "-"
	}
	deg := math.Abs(rad) * 180 / math.Pi
	itoa := func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) }

	switch {
	case f.Precision <= 0:
		return sign + itoa(math.Round(deg)) + "°"
	case f.Precision <= 2:
		total := math.Round(deg * 60)
		d := math.Floor(total / 60)
		return sign + itoa(d) + "°" + itoa(total-d*60) + "'"
	case f.Precision <= 4:
		total := math.Round(deg * 3600)
		d := math.Floor(total / 3600)
		m := math.Floor((total - d*3600) / 60)
		s := total - d*3600 - m*60
		return sign + itoa(d) + "°" + itoa(m) + "'" + itoa(s) + `"`
	}
	prec := f.Precision - 4
	p := math.Pow(10, float64(prec))
	total := math.Round(deg*3600*p) / p
	d := math.Floor(total / 3600)
	m := math.Floor((total - d*3600) / 60)
	s := total - d*3600 - m*60
	return sign + itoa(d) + "°" + itoa(m) + "'" +
		formatDecimal(s, prec, Zeros{Trailing: f.Zeros.Trailing}, f.Separator) + `"`
}

func formatDegreesMinutes(rad float64, f AngularFormat) string {
	sign := ""
	if rad < 0 {
		sign = "-"
	}
	p := math.Pow(10, float64(f.Precision))
	total := math.Round(math.Abs(rad)*180/math.Pi*60*p) / p
	d := math.Floor(total / 60)
	m := total - d*60
	return sign + strconv.FormatFloat(d, 'f', 0, 64) + "°" +
		formatDecimal(m, f.Precision, Zeros{Trailing: f.Zeros.Trailing}, f.Separator) + "'"
}

// Measurement formats a linear measurement: DIMLFAC scaling, tolerance or
// limits, DIMPOST, and the alternate-unit suffix in brackets.
//
// Symmetric tolerances render as "value±tol", asymmetric ones as
// "value +plus/-minus". Limits render as two lines, upper first.
func (s Settings) Measurement(value float64) string {
	v := value * s.LinearFactor
	var main string
	switch {
	case s.Limits:
		upper := applyPost(FormatLinear(v+s.TolPlus, s.Linear), s.Post)
		lower := applyPost(FormatLinear(v-s.TolMinus, s.Linear), s.Post)
		main = upper + "\n" + lower
	default:
		main = applyPost(FormatLinear(v, s.Linear), s.Post)
		if s.Tolerance {
			main += s.tolerance()
		}
	}
	if s.Alt {
		alt := FormatLinear(v*s.AltFactor, s.AltFormat)
		main += " [" + applyPost(alt, s.AltPost) + "]"
	}
	return main
}

func (s Settings) tolerance() string {
	tf := LinearFormat{
		Unit:      s.Linear.Unit,
		Precision: s.TolPrecision,
		Zeros:     s.TolZeros,
		Separator: s.Linear.Separator,
	}
	if math.Abs(s.TolPlus-s.TolMinus) < 1e-12 {
		if s.TolPlus == 0 {
			return ""
		}
		return "±" + FormatLinear(math.Abs(s.TolPlus), tf)
	}
	return " +" + FormatLinear(s.TolPlus, tf) + "/-" + FormatLinear(s.TolMinus, tf)
}

// AngularMeasurement formats an angle in radians with DIMPOST applied.
func (s Settings) AngularMeasurement(rad float64) string {
	return applyPost(FormatAngular(rad, s.Angular), s.Post)
}

// applyPost applies a DIMPOST-style template: "<>" marks the value, a
// template without it is a suffix.
func applyPost(value, post string) string {
	if post == "" {
		return value
	}
	if strings.Contains(post, "<>") {
		return strings.Replace(post, "<>", value, 1)
	}
	return value + post
}
