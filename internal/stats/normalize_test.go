package stats

import (
	"errors"
	"testing"
)

func TestNormalizeLeadingZeros(t *testing.T) {
	for _, token := range []string{"04", "4", "004", " 4 ", "+4"} {
		got, err := Normalize(token)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", token, err)
		}
		if got != "4" {
			t.Fatalf("Normalize(%q) = %q, want %q", token, got, "4")
		}
	}
}

func TestNormalizeCanonicalForms(t *testing.T) {
	cases := map[string]string{
		"00":    "0",
		"-0":    "0",
		"-07":   "-7",
		"1.50":  "1.5",
		"1e2":   "100",
		"60":    "60",
		"012.0": "12",
	}
	for in, want := range cases {
		got, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, token := range []string{"01", "7", "0042", "3.10", "-0"} {
		once, err := Normalize(token)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", token, err)
		}
		twice, err := Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", once, err)
		}
		if once != twice {
			t.Fatalf("expected idempotence for %q: %q then %q", token, once, twice)
		}
	}
}

func TestNormalizeInvalid(t *testing.T) {
	for _, token := range []string{"", "  ", "abc", "NaN", "Inf", "-infinity", "1 2", "0x1F"} {
		if _, err := Normalize(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Normalize(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}
