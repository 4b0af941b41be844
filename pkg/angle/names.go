package angle

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownPolicy = errors.New("angle: unknown policy name")

// ParseUnit accepts the unit's symbol or name: "rad", "radian", "radians",
// "deg", "degree", "degrees".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rad", "radian", "radians":
		return UnitRadian, nil
	case "deg", "degree", "degrees", "°":
		return UnitDegree, nil
	}
	return UnitRadian, errors.Wrapf(ErrUnknownPolicy, "unit %q", s)
}

// ParseWrap accepts "signed", "unsigned" and "nowrap" (or "none").
func ParseWrap(s string) (Wrap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "signed":
		return WrapSigned, nil
	case "unsigned":
		return WrapUnsigned, nil
	case "nowrap", "none":
		return WrapNone, nil
	}
	return WrapNone, errors.Wrapf(ErrUnknownPolicy, "wrap %q", s)
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Symbol()), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (w Wrap) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *Wrap) UnmarshalText(text []byte) error {
	parsed, err := ParseWrap(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
