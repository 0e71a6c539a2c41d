package stats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/drawfreq/internal/model"
)

// InvalidPolicy decides what happens to tokens that fail normalization.
type InvalidPolicy string

const (
	// PolicyError aborts aggregation on the first invalid token.
	PolicyError InvalidPolicy = "error"
	// PolicyBucket counts invalid tokens under InvalidKey.
	PolicyBucket InvalidPolicy = "bucket"
	// PolicySkip drops invalid tokens but records them.
	PolicySkip InvalidPolicy = "skip"
)

// ParsePolicy validates a policy name. Empty selects PolicyError.
func ParsePolicy(name string) (InvalidPolicy, error) {
	switch p := InvalidPolicy(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return PolicyError, nil
	case PolicyError, PolicyBucket, PolicySkip:
		return p, nil
	default:
		return "", fmt.Errorf("unknown invalid-token policy %q (use error, bucket or skip)", name)
	}
}

// Counter maps normalized numbers to counts and remembers first-insertion order.
type Counter struct {
	counts map[string]int
	order  []string
	total  int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: map[string]int{}}
}

// Add increments the count for key, starting from zero on first sight.
func (c *Counter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
	c.total++
}

// Count returns the count for key.
func (c *Counter) Count(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.order)
}

// Total returns the number of Add calls.
func (c *Counter) Total() int {
	return c.total
}

// Entries returns the entries in first-seen order.
func (c *Counter) Entries() []model.FrequencyEntry {
	out := make([]model.FrequencyEntry, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, model.FrequencyEntry{Number: key, Count: c.counts[key]})
	}
	return out
}

// Columns names the source columns used in error reports.
type Columns struct {
	Winning  string
	CashBall string
}

// DefaultColumns returns the standard header names.
func DefaultColumns() Columns {
	return Columns{Winning: "Winning Numbers", CashBall: "Cash Ball"}
}

// Aggregation is the result of one pass over the rows.
type Aggregation struct {
	Rows     int
	Winning  *Counter
	CashBall *Counter
	Invalid  []TokenError
}

// Counter returns the counter for a category.
func (a Aggregation) Counter(cat model.Category) *Counter {
	if cat == model.CategoryCashBall {
		return a.CashBall
	}
	return a.Winning
}

// Aggregate counts winning numbers and cash balls across rows.
func Aggregate(rows []model.Row, policy InvalidPolicy, cols Columns) (Aggregation, error) {
	agg := Aggregation{
		Rows:     len(rows),
		Winning:  NewCounter(),
		CashBall: NewCounter(),
	}
	for _, row := range rows {
		for _, token := range strings.Fields(row.WinningNumbers) {
			if err := agg.add(agg.Winning, token, row.Line, cols.Winning, policy); err != nil {
				return Aggregation{}, err
			}
		}
		if err := agg.add(agg.CashBall, row.CashBall, row.Line, cols.CashBall, policy); err != nil {
			return Aggregation{}, err
		}
	}
	return agg, nil
}

func (a *Aggregation) add(c *Counter, token string, line int, column string, policy InvalidPolicy) error {
	normalized, err := Normalize(token)
	if err == nil {
		c.Add(normalized)
		return nil
	}
	if !errors.Is(err, ErrInvalidToken) {
		return err
	}
	tokErr := TokenError{Line: line, Column: column, Token: token}
	switch policy {
	case PolicyBucket:
		a.Invalid = append(a.Invalid, tokErr)
		c.Add(InvalidKey)
		return nil
	case PolicySkip:
		a.Invalid = append(a.Invalid, tokErr)
		return nil
	default:
		return &tokErr
	}
}
