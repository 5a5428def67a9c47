package art

import (
	"strconv"

	"github.com/matzehuels/miniart/pkg/art/seeds"
	apperr "github.com/matzehuels/miniart/pkg/errors"
)

// Validate checks a raw input bag strictly: every present value must have
// the documented type and shape. It is never called by the render path,
// which stays permissive; it backs opt-in strict modes such as
// `miniart render --strict`.
//
// All problems are reported together; the returned error matches the code of
// the first problem via errors.Is from package pkg/errors.
func Validate(a Attrs) error {
	var errs []error
	for _, k := range Keys {
		v, ok := a[k]
		if !ok {
			continue
		}
		if k == KeyAnimate {
			if _, isBool := v.(bool); !isBool {
				errs = append(errs, apperr.New(apperr.ErrCodeInvalidInput, "animate must be a flag, got %T", v))
			}
			continue
		}
		s, isString := v.(string)
		if !isString {
			errs = append(errs, apperr.New(apperr.ErrCodeInvalidInput, "%s must be a string, got %T", k, v))
			continue
		}
		errs = append(errs, validateField(k, s))
	}
	return apperr.Join(errs...)
}

func validateField(k, v string) error {
	switch k {
	case KeyTemplate:
		if !Template(v).Valid() {
			return apperr.New(apperr.ErrCodeInvalidTemplate, "unknown template: %q", v)
		}
	case KeyBg:
		if !Background(v).Valid() {
			return apperr.New(apperr.ErrCodeInvalidBackground, "unknown background: %q", v)
		}
	case KeySeed:
		if _, ok := seeds.Lookup(v); !ok {
			return apperr.New(apperr.ErrCodeInvalidSeed, "unknown seed: %q (must be one of 1-6)", v)
		}
	case KeySize, KeyCell:
		return apperr.ValidateLength(k, v)
	case KeyLit, KeySat:
		return apperr.ValidatePercent(k, v)
	case KeyR:
		return apperr.ValidateRadius(k, v)
	case KeyA1, KeyA2, KeyA3:
		return apperr.ValidateAngle(k, v)
	case KeyHue:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return apperr.New(apperr.ErrCodeInvalidInput, "hue must be a number: %q", v)
		}
	}
	return nil
}
