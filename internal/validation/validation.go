// Package validation holds the field rules applied to every form before a
// mutation is attempted. Nothing here performs I/O.
package validation

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
)

var contactPattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// Field pairs an input's name with its raw value.
type Field struct {
	Name  string
	Value string
}

// F is shorthand for building a Field.
func F(name, value string) Field {
	return Field{Name: name, Value: value}
}

// RequireNonEmpty fails with ErrMissingField listing every field that is
// blank after trimming surrounding whitespace.
func RequireNonEmpty(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return apperror.NewFieldError(apperror.ErrMissingField, missing...)
	}
	return nil
}

// ValidateContact reports whether s is an optional leading '+' followed by
// 10 to 15 ASCII digits and nothing else.
func ValidateContact(s string) bool {
	return contactPattern.MatchString(s)
}

// ParsePrice parses a floating-point price.
func ParsePrice(s string) (decimal.Decimal, error) {
	return parseDecimal("price", s)
}

// ParseAmount parses a floating-point expense amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	return parseDecimal("amount", s)
}

// ParseStock parses a base-10 integer stock count.
func ParseStock(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, apperror.NewFieldError(apperror.ErrInvalidNumeric, "stock")
	}
	return n, nil
}

func parseDecimal(name, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if isHexFloat(s) {
		return decimal.Zero, apperror.NewFieldError(apperror.ErrInvalidNumeric, name)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, apperror.NewFieldError(apperror.ErrInvalidNumeric, name)
	}
	return decimal.NewFromFloat(f), nil
}

// isHexFloat reports Go's hexadecimal float syntax ("0x1p4"), which
// ParseFloat accepts but prices and amounts must not.
func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// NumericPolicy decides whether negative prices, stock and amounts are
// accepted. The zero value rejects them; callers normally build it from
// configuration.
type NumericPolicy struct {
	AllowNegative bool
}

// CheckDecimal fails with ErrInvalidNumeric when v is negative and the
// policy forbids it.
func (p NumericPolicy) CheckDecimal(name string, v decimal.Decimal) error {
	if !p.AllowNegative && v.IsNegative() {
		return apperror.NewFieldError(apperror.ErrInvalidNumeric, name)
	}
	return nil
}

// CheckInt is CheckDecimal for integer fields.
func (p NumericPolicy) CheckInt(name string, v int) error {
	if !p.AllowNegative && v < 0 {
		return apperror.NewFieldError(apperror.ErrInvalidNumeric, name)
	}
	return nil
}

// Validator runs struct-tag validation on request payloads and translates
// the failures into apperror values.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the "notblank" and "contact" tags registered.
// Field names in errors come from json tags.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("contact", func(fl validator.FieldLevel) bool {
		return ValidateContact(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates req. Blank fields are reported together as
// ErrMissingField; format failures are only reported once nothing is
// missing, matching the order a user fixes a form in.
func (v *Validator) Struct(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var missing, malformed []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "notblank", "required":
			missing = append(missing, fe.Field())
		default:
			malformed = append(malformed, fe.Field())
		}
	}

	if len(missing) > 0 {
		return apperror.NewFieldError(apperror.ErrMissingField, missing...)
	}
	return apperror.NewFieldError(apperror.ErrInvalidFormat, malformed...)
}
