// Package calc evaluates angle operations for unit and wrap policies chosen
// by name, e.g. from command line flags. Each (unit, wrap) pair maps onto
// one compile-time instantiation of angle.Angle.
package calc

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tigerbot-team/tigerbot/go-linalg/pkg/angle"
)

type policy struct {
	unit angle.Unit
	wrap angle.Wrap
}

type ops struct {
	parse       func(s string) (float64, error)
	normalize   func(v float64) float64
	convertFrom func(v float64, from angle.Unit) float64
	between     func(test, first, second float64) bool
	sweep       func(first, second float64) float64
	format      func(v float64, precision int) string
}

func opsFor[U angle.UnitPolicy, W angle.WrapPolicy]() ops {
	return ops{
		parse: func(s string) (float64, error) {
			a, err := angle.Parse[float64, U, angle.NoWrap](s)
			return a.Value(), err
		},
		normalize: func(v float64) float64 {
			return angle.New[float64, U, W](v).Value()
		},
		convertFrom: func(v float64, from angle.Unit) float64 {
			if from == angle.UnitDegree {
				return angle.Convert[U, W](angle.Degrees[angle.NoWrap](v)).Value()
			}
			return angle.Convert[U, W](angle.Radians[angle.NoWrap](v)).Value()
		},
		between: func(test, first, second float64) bool {
			return angle.IsInbetween(
				angle.New[float64, U, W](test),
				angle.New[float64, U, W](first),
				angle.New[float64, U, W](second))
		},
		sweep: func(first, second float64) float64 {
			return angle.Inbetween(angle.New[float64, U, W](first), angle.New[float64, U, W](second)).Value()
		},
		format: func(v float64, precision int) string {
			a := angle.New[float64, U, angle.NoWrap](v)
			if precision < 0 {
				return a.String()
			}
			return fmt.Sprintf("%.*f", precision, a)
		},
	}
}

var table = map[policy]ops{
	{angle.UnitRadian, angle.WrapSigned}:   opsFor[angle.Radian, angle.Signed](),
	{angle.UnitRadian, angle.WrapUnsigned}: opsFor[angle.Radian, angle.Unsigned](),
	{angle.UnitRadian, angle.WrapNone}:     opsFor[angle.Radian, angle.NoWrap](),
	{angle.UnitDegree, angle.WrapSigned}:   opsFor[angle.Degree, angle.Signed](),
	{angle.UnitDegree, angle.WrapUnsigned}: opsFor[angle.Degree, angle.Unsigned](),
	{angle.UnitDegree, angle.WrapNone}:     opsFor[angle.Degree, angle.NoWrap](),
}

// Calculator parses inputs in Unit (unless they carry a suffix) and
// normalizes results under Wrap.
type Calculator struct {
	Unit      angle.Unit
	Wrap      angle.Wrap
	Precision int
}

func (c Calculator) ops() (ops, error) {
	return opsOf(c.Unit, c.Wrap)
}

func opsOf(u angle.Unit, w angle.Wrap) (ops, error) {
	o, ok := table[policy{u, w}]
	if !ok {
		return ops{}, errors.Wrapf(angle.ErrUnknownPolicy, "%v/%v", u, w)
	}
	return o, nil
}

func (c Calculator) parseAll(o ops, in ...string) ([]float64, error) {
	out := make([]float64, len(in))
	for i, s := range in {
		v, err := o.parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Normalize parses s and returns it wrapped under the calculator's policy.
func (c Calculator) Normalize(s string) (string, error) {
	o, err := c.ops()
	if err != nil {
		return "", err
	}
	v, err := o.parse(s)
	if err != nil {
		return "", err
	}
	return o.format(o.normalize(v), c.Precision), nil
}

// Convert parses s and re-expresses it in unit `to` with wrap policy `wrap`.
func (c Calculator) Convert(s string, to angle.Unit, wrap angle.Wrap) (string, error) {
	from, err := c.ops()
	if err != nil {
		return "", err
	}
	target, err := opsOf(to, wrap)
	if err != nil {
		return "", err
	}
	v, err := from.parse(s)
	if err != nil {
		return "", err
	}
	return target.format(target.convertFrom(v, c.Unit), c.Precision), nil
}

// Between reports whether test is on the anti-clockwise arc from first to
// second.
func (c Calculator) Between(test, first, second string) (bool, error) {
	o, err := c.ops()
	if err != nil {
		return false, err
	}
	vs, err := c.parseAll(o, test, first, second)
	if err != nil {
		return false, err
	}
	return o.between(vs[0], vs[1], vs[2]), nil
}

// Sweep returns the anti-clockwise arc size from first to second.
func (c Calculator) Sweep(first, second string) (string, error) {
	o, err := c.ops()
	if err != nil {
		return "", err
	}
	vs, err := c.parseAll(o, first, second)
	if err != nil {
		return "", err
	}
	return o.format(o.sweep(vs[0], vs[1]), c.Precision), nil
}

// ATan2 returns atan2(y, x) in the calculator's unit and wrap policy.
func (c Calculator) ATan2(y, x float64) (string, error) {
	o, err := c.ops()
	if err != nil {
		return "", err
	}
	return o.format(o.convertFrom(angle.ATan2(y, x).Value(), angle.UnitRadian), c.Precision), nil
}

// Values parses and normalizes each input, for callers that need the raw
// numbers (the dial renderer).
func (c Calculator) Values(in ...string) ([]float64, error) {
	o, err := c.ops()
	if err != nil {
		return nil, err
	}
	vs, err := c.parseAll(o, in...)
	if err != nil {
		return nil, err
	}
	for i := range vs {
		vs[i] = o.normalize(vs[i])
	}
	return vs, nil
}
