package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/verte-zerg/drawfreq/internal/dataset"
	"github.com/verte-zerg/drawfreq/internal/logging"
	"github.com/verte-zerg/drawfreq/internal/model"
)

// Report contains precomputed data for chart rendering.
type Report struct {
	Source      string
	Aggregation Aggregation
	Winning     model.Chart
	CashBall    model.Chart
}

// Charts returns the charts in render order.
func (r Report) Charts() []model.Chart {
	return []model.Chart{r.Winning, r.CashBall}
}

// Chart returns the chart for a category.
func (r Report) Chart(cat model.Category) model.Chart {
	if cat == model.CategoryCashBall {
		return r.CashBall
	}
	return r.Winning
}

// BuildReport loads the source table and prepares both charts.
func BuildReport(ctx context.Context, cfg model.Config) (Report, error) {
	policy, err := ParsePolicy(cfg.Invalid)
	if err != nil {
		return Report{}, err
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	started := time.Now()
	rows, err := dataset.Load(ctx, cfg.Source, dataset.Options{
		WinningColumn:  cfg.WinningColumn,
		CashBallColumn: cfg.CashBallColumn,
		Stdin:          cfg.Stdin,
	})
	if err != nil {
		return Report{}, fmt.Errorf("failed to load dataset: %w", err)
	}

	cols := DefaultColumns()
	if cfg.WinningColumn != "" {
		cols.Winning = cfg.WinningColumn
	}
	if cfg.CashBallColumn != "" {
		cols.CashBall = cfg.CashBallColumn
	}
	report, err := BuildFromRows(rows, policy, cols, cfg.Top)
	if err != nil {
		return Report{}, err
	}
	report.Source = cfg.Source

	logger := logging.FromContext(ctx)
	for _, tokErr := range report.Aggregation.Invalid {
		logger.Warn("invalid number token",
			slog.Int("line", tokErr.Line),
			slog.String("column", tokErr.Column),
			slog.String("token", tokErr.Token),
			slog.String("policy", string(policy)))
	}
	logging.LogOperation(logger, "frequencies computed",
		slog.Int("rows", report.Aggregation.Rows),
		slog.Int("winning_distinct", len(report.Winning.Entries)),
		slog.Int("cashball_distinct", len(report.CashBall.Entries)),
		slog.Duration("duration", time.Since(started)))
	return report, nil
}

// BuildFromRows aggregates rows and ranks both categories.
func BuildFromRows(rows []model.Row, policy InvalidPolicy, cols Columns, top int) (Report, error) {
	if top <= 0 {
		top = DefaultTop
	}
	agg, err := Aggregate(rows, policy, cols)
	if err != nil {
		return Report{}, fmt.Errorf("failed to aggregate: %w", err)
	}
	return Report{
		Aggregation: agg,
		Winning:     buildChart(model.CategoryWinning, agg.Winning, top),
		CashBall:    buildChart(model.CategoryCashBall, agg.CashBall, top),
	}, nil
}

func buildChart(cat model.Category, c *Counter, top int) model.Chart {
	ranked := Rank(c)
	return model.Chart{
		ID:        cat.ChartID(),
		Label:     cat.Label(),
		Top:       top,
		Entries:   ranked,
		Highlight: Highlight(ranked, top),
	}
}
