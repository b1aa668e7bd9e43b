package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		rate   string
		want   int64
	}{
		{"five percent of 498.00", 49800, "5", 2490},
		{"ten percent of 498.00", 49800, "10", 4980},
		{"zero rate", 49800, "0", 0},
		{"half rounds away from zero", 10, "5", 1},
		{"fractional rate", 10000, "12.5", 1250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(tt.amount, decimal.RequireFromString(tt.rate))
			if got != tt.want {
				t.Errorf("Percent(%d, %s) = %d, want %d", tt.amount, tt.rate, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"249", 24900, false},
		{"249.5", 24950, false},
		{"0.01", 1, false},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("₹", 54780); got != "₹547.80" {
		t.Errorf("Display = %q", got)
	}
	if got := Format(26250); got != "262.50" {
		t.Errorf("Format = %q", got)
	}
	if got := Display("$", -150); got != "-$1.50" {
		t.Errorf("Display negative = %q", got)
	}
}
