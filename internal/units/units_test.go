package units

import (
	"math"
	"testing"
)

func TestToFahrenheit(t *testing.T) {
	tests := []struct {
		name    string
		celsius float64
		want    float64
	}{
		{"freezing point", 0, 32},
		{"boiling point", 100, 212},
		{"crossover", -40, -40},
		{"mild afternoon", 12.5, 54.5},
		{"negative fraction", -17.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToFahrenheit(tt.celsius)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ToFahrenheit(%v) = %v, want %v", tt.celsius, got, tt.want)
			}
		})
	}
}

func TestToCelsius_InvertsToFahrenheit(t *testing.T) {
	for _, c := range []float64{-273.15, -40, 0, 12.5, 36.6, 100} {
		got := ToCelsius(ToFahrenheit(c))
		if math.Abs(got-c) > 1e-9 {
			t.Errorf("ToCelsius(ToFahrenheit(%v)) = %v, want %v", c, got, c)
		}
	}
}

func TestUnit_Toggle_RoundTrip(t *testing.T) {
	for _, u := range []Unit{Celsius, Fahrenheit} {
		if got := u.Toggle().Toggle(); got != u {
			t.Errorf("%v.Toggle().Toggle() = %v, want %v", u, got, u)
		}
	}
	if Celsius.Toggle() != Fahrenheit {
		t.Error("Celsius.Toggle() should be Fahrenheit")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		celsius float64
		unit    Unit
		want    string
	}{
		{"celsius one decimal", 12.5, Celsius, "12.5°C"},
		{"celsius rounds", 12.54, Celsius, "12.5°C"},
		{"fahrenheit converts", 12.5, Fahrenheit, "54.5°F"},
		{"zero celsius in fahrenheit", 0, Fahrenheit, "32.0°F"},
		{"negative", -3.25, Celsius, "-3.2°C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.celsius, tt.unit); got != tt.want {
				t.Errorf("Format(%v, %v) = %q, want %q", tt.celsius, tt.unit, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{"", Celsius, false},
		{"celsius", Celsius, false},
		{"f", Fahrenheit, false},
		{"fahrenheit", Fahrenheit, false},
		{"kelvin", Celsius, true},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != (err != nil) {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
