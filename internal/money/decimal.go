// Package money holds the exact decimal type used for prices and sales
// totals. Sums are exact; rounding happens only where a view asks for it.
package money

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Places is the number of fractional digits sales figures are reported with.
const Places = 2

var arith = apd.Context{
	Precision:   34,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Traps:       apd.DefaultTraps,
	Rounding:    apd.RoundHalfEven,
}

type Decimal struct {
	value apd.Decimal
}

func NewDecimal(s string) (Decimal, error) {
	var d apd.Decimal
	_, _, err := d.SetString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	if d.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("invalid decimal %q: not a finite number", s)
	}
	return Decimal{value: d}, nil
}

// MustDecimal is NewDecimal for literals known to be valid.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

func NewDecimalFromInt64(i int64) Decimal {
	var d apd.Decimal
	d.SetInt64(i)
	return Decimal{value: d}
}

// String renders the value in plain (non-exponent) notation.
func (d Decimal) String() string {
	return d.value.Text('f')
}

func (d Decimal) Negative() bool {
	return d.value.Sign() < 0
}

// Add returns the sum of d and other.
func (d Decimal) Add(other Decimal) Decimal {
	var result apd.Decimal
	arith.Add(&result, &d.value, &other.value)
	return Decimal{value: result}
}

// Div returns the quotient of d divided by other.
func (d Decimal) Div(other Decimal) Decimal {
	var result apd.Decimal
	arith.Quo(&result, &d.value, &other.value)
	return Decimal{value: result}
}

// Round returns d rounded to Places fractional digits, ties to even.
func (d Decimal) Round() Decimal {
	var result apd.Decimal
	arith.Quantize(&result, &d.value, -Places)
	return Decimal{value: result}
}

func (d Decimal) Float64() float64 {
	f, err := d.value.Float64()
	if err != nil {
		return 0
	}
	return f
}

// Sum adds up values exactly.
func Sum(values []Decimal) Decimal {
	var total Decimal
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if bytes.Equal(b, []byte("null")) {
		*d = Decimal{}
		return nil
	}
	parsed, err := NewDecimal(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
