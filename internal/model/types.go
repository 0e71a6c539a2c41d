// Package model defines shared data structures.
package model

import (
	"io"
	"time"
)

// Category identifies one of the two independently counted number pools.
type Category string

const (
	CategoryWinning  Category = "winning"
	CategoryCashBall Category = "cashball"
)

// Label returns the human-readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryWinning:
		return "Winning Numbers"
	case CategoryCashBall:
		return "Cash Ball"
	default:
		return string(c)
	}
}

// ChartID returns the stable identifier of the chart region for the category.
func (c Category) ChartID() string {
	return string(c) + "-chart"
}

// Row is one drawing record as read from the source table.
type Row struct {
	WinningNumbers string
	CashBall       string
	Line           int
}

// FrequencyEntry pairs a normalized number with its occurrence count.
type FrequencyEntry struct {
	Number string
	Count  int
}

// RankedList holds entries sorted by count descending, ties in first-seen order.
type RankedList []FrequencyEntry

// Total sums the counts of all entries.
func (l RankedList) Total() int {
	total := 0
	for _, e := range l {
		total += e.Count
	}
	return total
}

// MaxCount returns the largest count, or 0 for an empty list.
func (l RankedList) MaxCount() int {
	if len(l) == 0 {
		return 0
	}
	return l[0].Count
}

// IndexOf returns the position of number in the list, or -1.
func (l RankedList) IndexOf(number string) int {
	for i, e := range l {
		if e.Number == number {
			return i
		}
	}
	return -1
}

// HighlightSet holds the normalized numbers that get visual emphasis.
type HighlightSet map[string]struct{}

// Contains reports whether number is highlighted.
func (h HighlightSet) Contains(number string) bool {
	_, ok := h[number]
	return ok
}

// Chart is everything a renderer needs for one category.
type Chart struct {
	ID        string
	Label     string
	Top       int
	Entries   RankedList
	Highlight HighlightSet
}

// Config defines run settings after flags and the config file are merged.
type Config struct {
	Source         string
	WinningColumn  string
	CashBallColumn string
	Invalid        string
	Timeout        time.Duration
	Top            int
	// Stdin is read when Source is "-"; nil means os.Stdin.
	Stdin io.Reader
}

// ChartConfig defines output settings for rendered charts.
type ChartConfig struct {
	Width  int
	Height int
	Format string
	OutDir string
	Color  bool
}
