package units

import "fmt"

// Unit selects the temperature scale used for display. All stored values are
// Celsius; Fahrenheit exists only at render time.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

func (u Unit) String() string {
	if u == Fahrenheit {
		return "Fahrenheit"
	}
	return "Celsius"
}

// Symbol returns the degree suffix for the unit.
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Celsius {
		return Fahrenheit
	}
	return Celsius
}

// Parse maps a config string to a Unit. Empty input defaults to Celsius.
func Parse(s string) (Unit, error) {
	switch s {
	case "", "celsius", "c":
		return Celsius, nil
	case "fahrenheit", "f":
		return Fahrenheit, nil
	}
	return Celsius, fmt.Errorf("unknown unit %q", s)
}

// ToFahrenheit converts a Celsius value.
func ToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// ToCelsius converts a Fahrenheit value.
func ToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// Format renders a Celsius value in the requested unit with one decimal place,
// e.g. "12.5°C" or "54.5°F".
func Format(celsius float64, u Unit) string {
	v := celsius
	if u == Fahrenheit {
		v = ToFahrenheit(celsius)
	}
	return fmt.Sprintf("%.1f%s", v, u.Symbol())
}
