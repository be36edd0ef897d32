// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"log/slog"
	"math"

	"github.com/danielhkuo/bayroumeter/db"
	"github.com/danielhkuo/bayroumeter/models"
)

type ResultAggregator struct {
	repo db.Repository
}

func NewResultAggregator(repo db.Repository) *ResultAggregator {
	return &ResultAggregator{repo: repo}
}

// ComputeResult tallies votes per choice from the grouped count query.
// On any store failure no partial result is returned.
func (a *ResultAggregator) ComputeResult(ctx context.Context) (models.ResultSummary, error) {
	rows, err := a.repo.CountVotesByChoice(ctx)
	if err != nil {
		slog.Error("failed to aggregate votes", "error", err)
		return models.ResultSummary{}, internalError(MsgDatabaseError, err)
	}
	return Summarize(rows), nil
}

// Summarize normalizes grouped counts into a ResultSummary.
// Both choices are always present, unknown choices are ignored and
// negative counts are treated as 0. Percentages are rounded to one
// decimal (half to even) and are 0 when there are no votes.
func Summarize(rows []models.ChoiceCount) models.ResultSummary {
	var counts models.ChoiceCounts
	for _, row := range rows {
		n := row.Count
		if n < 0 {
			n = 0
		}
		switch row.Choice {
		case models.ChoiceOui:
			counts.Oui = n
		case models.ChoiceNon:
			counts.Non = n
		}
	}

	total := counts.Oui + counts.Non

	return models.ResultSummary{
		Total:  total,
		Counts: counts,
		Percent: models.ChoicePercents{
			Oui: percent(counts.Oui, total),
			Non: percent(counts.Non, total),
		},
	}
}

func percent(n, total int64) float64 {
	if total == 0 {
		return 0
	}
	// Exact ties round to even: 1/16 is 6.2, not 6.3
	x := float64(n) / float64(total) * 100
	return math.RoundToEven(x*10) / 10
}
