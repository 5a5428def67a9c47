package errors

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// maxValueLength bounds any single CSS value accepted by the validators.
const maxValueLength = 64

// lengthUnitRegex matches a plain CSS length such as "14px", ".5rem" or "72vmin".
var lengthUnitRegex = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)(px|rem|em|vmin|vmax|vw|vh|%)$`)

// lengthFuncRegex matches the math functions a tile size may use,
// e.g. "min(72vmin,420px)". The body is checked separately.
var lengthFuncRegex = regexp.MustCompile(`^(min|max|clamp|calc)\(([0-9a-z.,%+*/ -]+)\)$`)

// percentRegex matches "58%", "62.5%" or ".5%".
var percentRegex = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)%$`)

// angleRegex matches an angle expressed in turns, e.g. "0turn" or "-.125turn".
var angleRegex = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)turn$`)

// decimalRegex matches an unsigned decimal such as ".85", "0.9" or "1".
var decimalRegex = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)$`)

// checkRaw rejects values that could escape a CSS declaration or the markup
// around it.
func checkRaw(code Code, field, v string) error {
	if v == "" {
		return New(code, "%s cannot be empty", field)
	}
	if len(v) > maxValueLength {
		return New(code, "%s too long (max %d characters)", field, maxValueLength)
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return New(code, "%s contains invalid control characters", field)
		}
	}
	if strings.ContainsAny(v, `;{}<>"'\`) {
		return New(code, "%s contains characters not allowed in a CSS value: %q", field, v)
	}
	return nil
}

// ValidateLength checks that v is a CSS length usable as a tile size or cell
// grain: either a number with a unit, or min()/max()/clamp()/calc() over such
// numbers.
func ValidateLength(field, v string) error {
	if err := checkRaw(ErrCodeInvalidLength, field, v); err != nil {
		return err
	}
	if lengthUnitRegex.MatchString(v) {
		return nil
	}
	m := lengthFuncRegex.FindStringSubmatch(v)
	if m == nil {
		return New(ErrCodeInvalidLength, "%s is not a CSS length: %q", field, v)
	}
	for _, part := range strings.FieldsFunc(m[2], func(r rune) bool {
		return r == ',' || r == ' ' || r == '+' || r == '*' || r == '/'
	}) {
		if part == "-" {
			continue
		}
		if !lengthUnitRegex.MatchString(part) && !decimalRegex.MatchString(part) {
			return New(ErrCodeInvalidLength, "%s has an invalid term %q", field, part)
		}
	}
	return nil
}

// ValidatePercent checks that v is a percentage in [0%,100%].
func ValidatePercent(field, v string) error {
	if err := checkRaw(ErrCodeInvalidPercent, field, v); err != nil {
		return err
	}
	if !percentRegex.MatchString(v) {
		return New(ErrCodeInvalidPercent, "%s is not a percentage: %q", field, v)
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
	if err != nil || n > 100 {
		return New(ErrCodeInvalidPercent, "%s out of range [0%%,100%%]: %q", field, v)
	}
	return nil
}

// ValidateAngle checks that v is an angle in turns, e.g. ".125turn".
func ValidateAngle(field, v string) error {
	if err := checkRaw(ErrCodeInvalidAngle, field, v); err != nil {
		return err
	}
	if !angleRegex.MatchString(v) {
		return New(ErrCodeInvalidAngle, "%s is not an angle in turns: %q", field, v)
	}
	return nil
}

// ValidateRadius checks that v is a decimal in [0,1].
func ValidateRadius(field, v string) error {
	if err := checkRaw(ErrCodeInvalidRadius, field, v); err != nil {
		return err
	}
	if !decimalRegex.MatchString(v) {
		return New(ErrCodeInvalidRadius, "%s is not a decimal: %q", field, v)
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n > 1 {
		return New(ErrCodeInvalidRadius, "%s out of range [0,1]: %q", field, v)
	}
	return nil
}

// ValidateCount checks that n is in [1,max].
func ValidateCount(field string, n, max int) error {
	if n < 1 || n > max {
		return New(ErrCodeInvalidCount, "%s must be between 1 and %d, got %d", field, max, n)
	}
	return nil
}

// ValidateCSSValue checks only that v cannot break out of a CSS declaration
// or the markup around it. It says nothing about the value's shape.
func ValidateCSSValue(field, v string) error {
	return checkRaw(ErrCodeInvalidInput, field, v)
}
