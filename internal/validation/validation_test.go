package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		maxLen  int
		want    string
		wantErr error
	}{
		{"simple city", "London", 128, "London", nil},
		{"trims whitespace", "  Delhi  ", 128, "Delhi", nil},
		{"city with comma", "London, Ontario", 128, "London, Ontario", nil},
		{"hyphenated", "Baden-Baden", 128, "Baden-Baden", nil},
		{"apostrophe and period", "St. John's", 128, "St. John's", nil},
		{"unicode letters", "São Paulo", 128, "São Paulo", nil},
		{"empty", "", 128, "", ErrQueryEmpty},
		{"whitespace only", "   ", 128, "", ErrQueryEmpty},
		{"too long", strings.Repeat("a", 129), 128, "", ErrQueryTooLong},
		{"at max length", strings.Repeat("a", 128), 128, strings.Repeat("a", 128), nil},
		{"invalid chars", "London; DROP TABLE", 128, "", ErrQueryInvalidChars},
		{"url injection", "x?name=y", 128, "", ErrQueryInvalidChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateQuery(tt.input, tt.maxLen)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateQuery() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateQuery() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
