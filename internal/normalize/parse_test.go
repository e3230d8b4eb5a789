package normalize

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
		ok   bool
	}{
		{name: "plain", in: "12.34", want: 1234, ok: true},
		{name: "integer", in: "7", want: 700, ok: true},
		{name: "dollar sign", in: "$10.00", want: 1000, ok: true},
		{name: "euro sign", in: "€0.25", want: 25, ok: true},
		{name: "thousands separator", in: "$1,050.00", want: 105000, ok: true},
		{name: "surrounding space", in: " 3.5 ", want: 350, ok: true},
		{name: "sub cent rounds", in: "0.005", want: 1, ok: true},
		{name: "float noise", in: "12.34", want: 1234, ok: true},
		{name: "empty", in: "", ok: false},
		{name: "non numeric", in: "N/A", ok: false},
		{name: "text", in: "call for price", ok: false},
		{name: "zero", in: "0", ok: false},
		{name: "zero decimal", in: "0.00", ok: false},
		{name: "negative", in: "-3.00", ok: false},
		{name: "rounds to zero", in: "0.004", ok: false},
		{name: "lone dash", in: "-", ok: false},
		{name: "lone dot", in: ".", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParsePrice(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParsePrice(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
