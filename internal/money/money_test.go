package money

import "testing"

// TestFixedPointFormats proves each formatter rounds at its declared scale
func TestFixedPointFormats(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"amount pads", Amount(30), "30.00"},
		{"amount rounds", Amount(28.988599915619893), "28.99"},
		{"amount negative", Amount(-4), "-4.00"},
		{"percent", Percent(46.25), "46.3"},
		{"whole", Whole(2400.6), "2401"},
		{"rate", Rate(0.679999), "0.6800"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

// TestNewValue proves wire values carry fixed-point strings
func TestNewValue(t *testing.T) {
	v := NewValue(28.9886, "EUR")
	if v.Amount != "28.99" || v.Currency != "EUR" {
		t.Fatalf("value = %+v", v)
	}
}
