package stats

import (
	"errors"
	"testing"

	"github.com/verte-zerg/drawfreq/internal/model"
)

func scenarioRows() []model.Row {
	return []model.Row{
		{WinningNumbers: "01 02 03 04 01", CashBall: "05", Line: 2},
		{WinningNumbers: "1 2 3 4 2", CashBall: "05", Line: 3},
	}
}

func TestAggregateScenario(t *testing.T) {
	agg, err := Aggregate(scenarioRows(), PolicyError, DefaultColumns())
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if agg.Rows != 2 {
		t.Fatalf("expected 2 rows, got %d", agg.Rows)
	}
	want := map[string]int{"1": 3, "2": 3, "3": 2, "4": 2}
	for n, count := range want {
		if got := agg.Winning.Count(n); got != count {
			t.Fatalf("winning count for %s = %d, want %d", n, got, count)
		}
	}
	if agg.Winning.Len() != 4 {
		t.Fatalf("expected 4 distinct winning numbers, got %d", agg.Winning.Len())
	}
	if got := agg.CashBall.Count("5"); got != 2 {
		t.Fatalf("cash ball count for 5 = %d, want 2", got)
	}
	if agg.CashBall.Len() != 1 {
		t.Fatalf("expected 1 distinct cash ball, got %d", agg.CashBall.Len())
	}
}

func TestAggregateConservesCounts(t *testing.T) {
	rows := []model.Row{
		{WinningNumbers: "05 12  33 41 60", CashBall: "2"},
		{WinningNumbers: "\t12 05 09 41 58 ", CashBall: "02"},
		{WinningNumbers: "1 1 1 1 1", CashBall: "4"},
	}
	agg, err := Aggregate(rows, PolicyError, DefaultColumns())
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if agg.Winning.Total() != 15 {
		t.Fatalf("expected 15 winning tokens, got %d", agg.Winning.Total())
	}
	if got := Rank(agg.Winning).Total(); got != agg.Winning.Total() {
		t.Fatalf("ranked total %d != tokens %d", got, agg.Winning.Total())
	}
	if got := Rank(agg.CashBall).Total(); got != 3 {
		t.Fatalf("expected 3 cash balls, got %d", got)
	}
}

func TestAggregateInvalidPolicies(t *testing.T) {
	rows := []model.Row{
		{WinningNumbers: "01 xx 03", CashBall: "05", Line: 2},
		{WinningNumbers: "01", CashBall: "", Line: 3},
	}

	_, err := Aggregate(rows, PolicyError, DefaultColumns())
	var tokErr *TokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("expected TokenError, got %v", err)
	}
	if tokErr.Line != 2 || tokErr.Column != "Winning Numbers" || tokErr.Token != "xx" {
		t.Fatalf("unexpected token error: %+v", tokErr)
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken in chain")
	}

	agg, err := Aggregate(rows, PolicyBucket, DefaultColumns())
	if err != nil {
		t.Fatalf("bucket policy failed: %v", err)
	}
	if agg.Winning.Count(InvalidKey) != 1 || agg.CashBall.Count(InvalidKey) != 1 {
		t.Fatalf("expected invalid tokens bucketed under %s", InvalidKey)
	}
	if len(agg.Invalid) != 2 {
		t.Fatalf("expected 2 recorded invalid tokens, got %d", len(agg.Invalid))
	}

	agg, err = Aggregate(rows, PolicySkip, DefaultColumns())
	if err != nil {
		t.Fatalf("skip policy failed: %v", err)
	}
	if agg.Winning.Total() != 3 || agg.CashBall.Total() != 1 {
		t.Fatalf("unexpected totals after skip: %d winning, %d cash ball", agg.Winning.Total(), agg.CashBall.Total())
	}
	if len(agg.Invalid) != 2 || agg.Invalid[1].Column != "Cash Ball" {
		t.Fatalf("unexpected invalid records: %+v", agg.Invalid)
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy(""); err != nil || p != PolicyError {
		t.Fatalf("expected default error policy, got %q %v", p, err)
	}
	if p, err := ParsePolicy(" Bucket "); err != nil || p != PolicyBucket {
		t.Fatalf("expected bucket policy, got %q %v", p, err)
	}
	if _, err := ParsePolicy("drop"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
