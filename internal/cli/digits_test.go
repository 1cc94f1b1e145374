package cli

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in      float64
		groups  []string
		decimal string
	}{
		{0, []string{"0"}, "00"},
		{0.5, []string{"0"}, "50"},
		{999.999, []string{"1", "000"}, "00"},
		{12345.67, []string{"12", "345"}, "67"},
		{1234567.891, []string{"1", "234", "567"}, "89"},
		{100, []string{"100"}, "00"},
		{9720, []string{"9", "720"}, "00"},
	}

	for _, tt := range tests {
		got := FormatAmount(tt.in)
		if !reflect.DeepEqual(got.Groups, tt.groups) || got.Decimal != tt.decimal {
			t.Errorf("FormatAmount(%v) = %v,%q, want %v,%q", tt.in, got.Groups, got.Decimal, tt.groups, tt.decimal)
		}
		if got.Negative {
			t.Errorf("FormatAmount(%v) flagged negative", tt.in)
		}
	}
}

func TestFormatAmount_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.125, "0.13"},
		{0.135, "0.14"},
		{1.005, "1.01"},
		{2.675, "2.68"},
		{0.124999, "0.12"},
		{-0.125, "-0.13"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.in).String("", "."); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmount_NoNegativeZero(t *testing.T) {
	got := FormatAmount(-0.001)
	if got.Negative {
		t.Fatalf("-0.001 rendered as negative: %+v", got)
	}
	if got.String(".", ",") != "0,00" {
		t.Fatalf("got %q, want 0,00", got.String(".", ","))
	}
}

func TestFormattedNumber_ValueRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.01, 0.994, 0.995, 12.5, 999.999, 9720, 12345.678, 1234567.891, 98765432.105} {
		want := decimal.NewFromFloat(v).Round(2)
		if got := FormatAmount(v).Value(); !got.Equal(want) {
			t.Errorf("round trip of %v = %s, want %s", v, got, want)
		}
	}
}

func TestFormattedNumber_String(t *testing.T) {
	fn := FormatAmount(1234567.891)
	if got := fn.String(".", ","); got != "1.234.567,89" {
		t.Fatalf("String = %q", got)
	}
}

func TestDiffDigits_LastDecimalOnly(t *testing.T) {
	cs := DiffDigits(FormatAmount(100.00), FormatAmount(100.01))

	want := ChangeSet{
		Groups:  [][]bool{{false, false, false}},
		Decimal: []bool{false, true},
	}
	if !reflect.DeepEqual(cs, want) {
		t.Fatalf("DiffDigits = %+v, want %+v", cs, want)
	}
	if cs.Count() != 1 {
		t.Fatalf("Count = %d, want 1", cs.Count())
	}
}

func TestDiffDigits_FromZeroFlagsNonZeroDigits(t *testing.T) {
	cs := DiffDigits(FormatAmount(0), FormatAmount(9720.45))

	// prev groups ["0"]: group 0 "9" vs "0" changes; group 1 has no previous
	// digits so only the non-'0' ones count as changed.
	want := ChangeSet{
		Groups:  [][]bool{{true}, {true, true, false}},
		Decimal: []bool{true, true},
	}
	if !reflect.DeepEqual(cs, want) {
		t.Fatalf("DiffDigits = %+v, want %+v", cs, want)
	}
}

func TestDiffDigits_Unchanged(t *testing.T) {
	cs := DiffDigits(FormatAmount(42.42), FormatAmount(42.4200001))
	if cs.Any() {
		t.Fatalf("identical renders reported changes: %+v", cs)
	}
}
