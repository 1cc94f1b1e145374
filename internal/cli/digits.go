package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormattedNumber is a money value split for digit-tile rendering.
// Groups hold the integer digits in threes, most significant first.
type FormattedNumber struct {
	Negative bool
	Groups   []string
	Decimal  string
}

// FormatAmount rounds v to two places and groups the integer digits by thousands.
//
// Rounding is half away from zero on the shortest decimal form of v, as done
// by decimal.StringFixed: 0.125 becomes 0.13 and 1.005 becomes 1.01.
func FormatAmount(v float64) FormattedNumber {
	s := decimal.NewFromFloat(v).StringFixed(2)

	var fn FormattedNumber
	if strings.HasPrefix(s, "-") {
		s = s[1:]
		// -0.001 rounds to "-0.00"; there is no negative zero on a counter.
		fn.Negative = strings.Trim(s, "0.") != ""
	}

	whole, frac, _ := strings.Cut(s, ".")
	fn.Decimal = frac
	fn.Groups = groupThousands(whole)
	return fn
}

func groupThousands(whole string) []string {
	if whole == "" {
		return []string{"0"}
	}
	head := len(whole) % 3
	groups := make([]string, 0, len(whole)/3+1)
	if head > 0 {
		groups = append(groups, whole[:head])
	}
	for i := head; i < len(whole); i += 3 {
		groups = append(groups, whole[i:i+3])
	}
	return groups
}

// Value reconstructs the rounded number from its digits.
func (f FormattedNumber) Value() decimal.Decimal {
	d, err := decimal.NewFromString(strings.Join(f.Groups, "") + "." + f.Decimal)
	if err != nil {
		return decimal.Zero
	}
	if f.Negative {
		return d.Neg()
	}
	return d
}

// String joins the digits with the given separators, e.g. "1.234,56".
func (f FormattedNumber) String(thousandsSep, decimalSep string) string {
	s := strings.Join(f.Groups, thousandsSep) + decimalSep + f.Decimal
	if f.Negative {
		return "-" + s
	}
	return s
}

// ChangeSet flags, per digit of the current number, whether it differs from
// the previous render.
type ChangeSet struct {
	Groups  [][]bool
	Decimal []bool
}

// DiffDigits compares cur against prev position by position (group index,
// then digit index within the group). A position missing from prev counts
// as '0'.
func DiffDigits(prev, cur FormattedNumber) ChangeSet {
	cs := ChangeSet{
		Groups:  make([][]bool, len(cur.Groups)),
		Decimal: diffGroup(prev.Decimal, cur.Decimal),
	}
	for i, g := range cur.Groups {
		var p string
		if i < len(prev.Groups) {
			p = prev.Groups[i]
		}
		cs.Groups[i] = diffGroup(p, g)
	}
	return cs
}

func diffGroup(prev, cur string) []bool {
	out := make([]bool, len(cur))
	for i := 0; i < len(cur); i++ {
		p := byte('0')
		if i < len(prev) {
			p = prev[i]
		}
		out[i] = cur[i] != p
	}
	return out
}

// Count returns the number of changed digits.
func (c ChangeSet) Count() int {
	n := 0
	for _, g := range c.Groups {
		for _, changed := range g {
			if changed {
				n++
			}
		}
	}
	for _, changed := range c.Decimal {
		if changed {
			n++
		}
	}
	return n
}

// Any reports whether at least one digit changed.
func (c ChangeSet) Any() bool {
	return c.Count() > 0
}
