package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Comparator is the value a movie field is matched against. The set of
// implementations is closed: Literal, Pattern, Temporal, Numeric,
// NumericRange and DateRange.
type Comparator interface {
	comparator()
}

// Literal matches a text field exactly, or any element of a list field.
type Literal string

// Pattern matches when the regular expression finds a match anywhere in the
// field's text form.
type Pattern struct {
	re *regexp.Regexp
}

func NewPattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, err
	}

	return Pattern{re: re}, nil
}

func MustPattern(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(expr)}
}

func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}

	return p.re.String()
}

// Temporal matches a date field falling on the same calendar day. The time
// of day is ignored.
type Temporal struct {
	At time.Time
}

func Day(t time.Time) Temporal {
	return Temporal{At: t}
}

// Numeric matches a numeric field by value, regardless of whether either
// side was written as an integer or a float.
type Numeric struct {
	Value decimal.Decimal
}

func Int(n int64) Numeric {
	return Numeric{Value: decimal.NewFromInt(n)}
}

func Float(f float64) Numeric {
	return Numeric{Value: decimal.NewFromFloat(f)}
}

// NumericRange is inclusive on both ends.
type NumericRange struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

func IntRange(low, high int64) NumericRange {
	return NumericRange{Low: decimal.NewFromInt(low), High: decimal.NewFromInt(high)}
}

func FloatRange(low, high float64) NumericRange {
	return NumericRange{Low: decimal.NewFromFloat(low), High: decimal.NewFromFloat(high)}
}

// DateRange is inclusive on both ends and compares calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

func Dates(from, to time.Time) DateRange {
	return DateRange{From: from, To: to}
}

func (Literal) comparator()      {}
func (Pattern) comparator()      {}
func (Temporal) comparator()     {}
func (Numeric) comparator()      {}
func (NumericRange) comparator() {}
func (DateRange) comparator()    {}
