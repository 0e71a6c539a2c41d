package stats

import (
	"testing"

	"github.com/verte-zerg/drawfreq/internal/model"
)

func TestRankTiesKeepFirstSeenOrder(t *testing.T) {
	agg, err := Aggregate(scenarioRows(), PolicyError, DefaultColumns())
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	ranked := Rank(agg.Winning)
	want := []model.FrequencyEntry{
		{Number: "1", Count: 3},
		{Number: "2", Count: 3},
		{Number: "3", Count: 2},
		{Number: "4", Count: 2},
	}
	if len(ranked) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(ranked))
	}
	for i, e := range want {
		if ranked[i] != e {
			t.Fatalf("unexpected entry at %d: %+v, want %+v", i, ranked[i], e)
		}
	}
}

func TestRankTieOrderIsNotNumeric(t *testing.T) {
	c := NewCounter()
	for _, k := range []string{"9", "3", "9", "3"} {
		c.Add(k)
	}
	ranked := Rank(c)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranked))
	}
	if ranked[0].Number != "9" || ranked[1].Number != "3" {
		t.Fatalf("expected first-seen order 9, 3; got %+v", ranked)
	}
}

func TestRankSortedDescending(t *testing.T) {
	c := NewCounter()
	for _, k := range []string{"9", "3", "3", "7", "3", "9", "1", "7", "7", "7"} {
		c.Add(k)
	}
	ranked := Rank(c)
	want := []model.FrequencyEntry{
		{Number: "7", Count: 4},
		{Number: "3", Count: 3},
		{Number: "9", Count: 2},
		{Number: "1", Count: 1},
	}
	for i, e := range want {
		if ranked[i] != e {
			t.Fatalf("rank %d = %+v, want %+v", i, ranked[i], e)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Count > ranked[i-1].Count {
			t.Fatalf("ranked list not non-increasing at %d", i)
		}
	}
}

func TestHighlightSize(t *testing.T) {
	c := NewCounter()
	for _, k := range []string{"1", "2", "3", "4", "5", "6", "7", "1"} {
		c.Add(k)
	}
	ranked := Rank(c)
	set := Highlight(ranked, DefaultTop)
	if len(set) != 5 {
		t.Fatalf("expected 5 highlighted numbers, got %d", len(set))
	}
	if !set.Contains("1") || set.Contains("6") {
		t.Fatalf("unexpected highlight set: %v", set)
	}

	short := Highlight(ranked[:3], DefaultTop)
	if len(short) != 3 {
		t.Fatalf("expected 3 highlighted numbers, got %d", len(short))
	}
}

func TestRankEmpty(t *testing.T) {
	ranked := Rank(NewCounter())
	if len(ranked) != 0 {
		t.Fatalf("expected empty ranked list")
	}
	if len(Highlight(ranked, DefaultTop)) != 0 {
		t.Fatalf("expected empty highlight set")
	}
	if len(Rank(nil)) != 0 {
		t.Fatalf("expected empty ranked list for nil counter")
	}
	if len(Top(ranked, 5)) != 0 {
		t.Fatalf("expected empty top slice")
	}
}
