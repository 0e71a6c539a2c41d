// Package render draws frequency charts to terminals and image files.
package render

import (
	"io"

	"github.com/verte-zerg/drawfreq/internal/model"
	"github.com/verte-zerg/drawfreq/internal/stats"
)

// Renderer draws one category chart.
type Renderer interface {
	Render(w io.Writer, chart model.Chart) error
}

// Text renders bar rows for a terminal, optionally followed by a rank table.
type Text struct {
	Width      int
	ForceColor bool
	TableRows  int
}

// Render implements Renderer.
func (t Text) Render(w io.Writer, chart model.Chart) error {
	if err := stats.PlotBars(w, chart, stats.BarOptions{
		Width:      t.Width,
		ForceColor: t.ForceColor,
		Selected:   -1,
	}); err != nil {
		return err
	}
	if t.TableRows <= 0 {
		return nil
	}
	return stats.RenderRankTable(w, chart, t.TableRows)
}

// RenderAll renders every chart in order with the same renderer.
func RenderAll(w io.Writer, r Renderer, charts []model.Chart) error {
	for _, chart := range charts {
		if err := r.Render(w, chart); err != nil {
			return err
		}
	}
	return nil
}
