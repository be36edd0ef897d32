// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"testing"

	"github.com/danielhkuo/bayroumeter/models"
	"github.com/danielhkuo/bayroumeter/testutil"
)

func TestSummarize(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []models.ChoiceCount
		expected models.ResultSummary
	}{
		{
			name:     "no votes",
			rows:     nil,
			expected: models.ResultSummary{},
		},
		{
			name: "two thirds",
			rows: []models.ChoiceCount{{Choice: "Oui", Count: 2}, {Choice: "Non", Count: 1}},
			expected: models.ResultSummary{
				Total:   3,
				Counts:  models.ChoiceCounts{Oui: 2, Non: 1},
				Percent: models.ChoicePercents{Oui: 66.7, Non: 33.3},
			},
		},
		{
			name: "only one choice present",
			rows: []models.ChoiceCount{{Choice: "Non", Count: 4}},
			expected: models.ResultSummary{
				Total:   4,
				Counts:  models.ChoiceCounts{Oui: 0, Non: 4},
				Percent: models.ChoicePercents{Oui: 0, Non: 100},
			},
		},
		{
			name: "unknown choices ignored",
			rows: []models.ChoiceCount{{Choice: "Oui", Count: 1}, {Choice: "Blanc", Count: 50}, {Choice: "oui", Count: 9}},
			expected: models.ResultSummary{
				Total:   1,
				Counts:  models.ChoiceCounts{Oui: 1},
				Percent: models.ChoicePercents{Oui: 100},
			},
		},
		{
			name: "negative count treated as zero",
			rows: []models.ChoiceCount{{Choice: "Oui", Count: -3}, {Choice: "Non", Count: 1}},
			expected: models.ResultSummary{
				Total:   1,
				Counts:  models.ChoiceCounts{Non: 1},
				Percent: models.ChoicePercents{Non: 100},
			},
		},
		{
			name: "rounding to one decimal",
			rows: []models.ChoiceCount{{Choice: "Oui", Count: 1}, {Choice: "Non", Count: 6}},
			expected: models.ResultSummary{
				Total:   7,
				Counts:  models.ChoiceCounts{Oui: 1, Non: 6},
				Percent: models.ChoicePercents{Oui: 14.3, Non: 85.7},
			},
		},
		{
			name: "one in sixteen rounds half to even",
			rows: []models.ChoiceCount{{Choice: "Oui", Count: 1}, {Choice: "Non", Count: 15}},
			expected: models.ResultSummary{
				Total:   16,
				Counts:  models.ChoiceCounts{Oui: 1, Non: 15},
				Percent: models.ChoicePercents{Oui: 6.2, Non: 93.8},
			},
		},
		{
			name: "five in sixteen rounds half to even",
			rows: []models.ChoiceCount{{Choice: "Oui", Count: 5}, {Choice: "Non", Count: 11}},
			expected: models.ResultSummary{
				Total:   16,
				Counts:  models.ChoiceCounts{Oui: 5, Non: 11},
				Percent: models.ChoicePercents{Oui: 31.2, Non: 68.8},
			},
		},
		{
			name: "two in thirty-two",
			rows: []models.ChoiceCount{{Choice: "Oui", Count: 2}, {Choice: "Non", Count: 30}},
			expected: models.ResultSummary{
				Total:   32,
				Counts:  models.ChoiceCounts{Oui: 2, Non: 30},
				Percent: models.ChoicePercents{Oui: 6.2, Non: 93.8},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(tc.rows)
			if got != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestComputeResult(t *testing.T) {
	repo, conn := testutil.SetupTestRepo(t)
	aggregator := NewResultAggregator(repo)

	result, err := aggregator.ComputeResult(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result != (models.ResultSummary{}) {
		t.Errorf("Expected zero result with no votes, got %+v", result)
	}

	registry := NewVoteRegistry(repo, nil)
	for i, choice := range []string{"Oui", "Non", "Oui"} {
		userID := testutil.CreateTestUser(t, conn, "voter", "voter"+string(rune('a'+i))+"@x.com")
		if _, err := registry.CastVote(context.Background(), userID, choice); err != nil {
			t.Fatalf("CastVote failed: %v", err)
		}
	}

	result, err = aggregator.ComputeResult(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	expected := models.ResultSummary{
		Total:   3,
		Counts:  models.ChoiceCounts{Oui: 2, Non: 1},
		Percent: models.ChoicePercents{Oui: 66.7, Non: 33.3},
	}
	if result != expected {
		t.Errorf("Expected %+v, got %+v", expected, result)
	}
}

func TestComputeResultStoreFailure(t *testing.T) {
	repo := &stubRepo{
		countByChoice: func(context.Context) ([]models.ChoiceCount, error) { return nil, errStoreDown },
	}

	result, err := NewResultAggregator(repo).ComputeResult(context.Background())
	assertKind(t, err, KindInternal)
	if result != (models.ResultSummary{}) {
		t.Errorf("Expected no partial result, got %+v", result)
	}
}
