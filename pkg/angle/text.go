package angle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	ErrSyntax = errors.New("angle: invalid syntax")
	ErrRange  = errors.New("angle: value out of range")
)

// bitSize reports whether T is a 32 or 64 bit float.
func bitSize[T constraints.Float]() int {
	x := math.MaxFloat64
	if math.IsInf(float64(T(x)), 0) {
		return 32
	}
	return 64
}

// String renders the value followed by the unit symbol, e.g. "90deg".
func (a Angle[T, U, W]) String() string {
	return strconv.FormatFloat(float64(a.v), 'g', -1, bitSize[T]()) + unitOf[U]().Symbol()
}

// Format implements fmt.Formatter. Float verbs honour width, precision and
// flags and are followed by the unit symbol: fmt.Sprintf("%.1f", a) gives
// "90.0deg".
func (a Angle[T, U, W]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), float64(a.v))
		_, _ = f.Write([]byte(unitOf[U]().Symbol()))
	case 'v', 's':
		_, _ = f.Write([]byte(a.String()))
	case 'q':
		fmt.Fprintf(f, "%q", a.String())
	default:
		fmt.Fprintf(f, "%%!%c(angle=%s)", verb, a.String())
	}
}

// Parse reads an angle in the format written by String. The unit suffix may
// be "rad", "deg" or "°" and may be separated from the number by spaces; a
// bare number is taken to be in unit U. A suffix naming the other unit is
// converted.
func Parse[T constraints.Float, U UnitPolicy, W WrapPolicy](s string) (Angle[T, U, W], error) {
	num, from, err := splitUnit(s, unitOf[U]())
	if err != nil {
		return Angle[T, U, W]{}, err
	}
	v, err := strconv.ParseFloat(num, bitSize[T]())
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return Angle[T, U, W]{}, errors.Wrapf(ErrRange, "parsing %q", s)
		}
		return Angle[T, U, W]{}, errors.Wrapf(ErrSyntax, "parsing %q", s)
	}
	return New[T, U, W](T(convert(v, from, unitOf[U]()))), nil
}

// MustParse is Parse for constants in tests and tables; it panics on error.
func MustParse[T constraints.Float, U UnitPolicy, W WrapPolicy](s string) Angle[T, U, W] {
	a, err := Parse[T, U, W](s)
	if err != nil {
		panic(err)
	}
	return a
}

func splitUnit(s string, def Unit) (string, Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", def, errors.Wrap(ErrSyntax, "empty angle")
	}
	for _, suffix := range []struct {
		text string
		unit Unit
	}{
		{"rad", UnitRadian},
		{"deg", UnitDegree},
		{"°", UnitDegree},
	} {
		if strings.HasSuffix(s, suffix.text) {
			return strings.TrimSpace(strings.TrimSuffix(s, suffix.text)), suffix.unit, nil
		}
	}
	return s, def, nil
}

func (a Angle[T, U, W]) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Angle[T, U, W]) UnmarshalText(text []byte) error {
	parsed, err := Parse[T, U, W](string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Angle[T, U, W]) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Plain numbers are accepted and
// read in unit U.
func (a *Angle[T, U, W]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return errors.Wrap(err, "angle: decoding yaml")
	}
	return a.UnmarshalText([]byte(s))
}
