// Package stats contains frequency calculations and reporting.
package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InvalidKey is the bucket used for unparsable tokens under PolicyBucket.
const InvalidKey = "NaN"

// ErrInvalidToken reports a token that does not parse as a number.
var ErrInvalidToken = errors.New("invalid number token")

// TokenError describes an unparsable token and where it came from.
type TokenError struct {
	Line   int
	Column string
	Token  string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("line %d: column %q: %v %q", e.Line, e.Column, ErrInvalidToken, e.Token)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// Normalize returns the canonical decimal form of a numeric token ("07" -> "7").
func Normalize(token string) (string, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return "", ErrInvalidToken
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", ErrInvalidToken
	}
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}
