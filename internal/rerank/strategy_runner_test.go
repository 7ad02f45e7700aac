package rerank

import (
	"context"
	"testing"

	"github.com/cbouillon/frrerank/internal/normalize"
	"github.com/cbouillon/frrerank/internal/oracle"
	"github.com/cbouillon/frrerank/model"
)

func TestStrategyRunnerDedupPriority(t *testing.T) {
	fixture := oracle.NewFixtureOracle()
	fixture.Seed("places", []model.Candidate{
		{"id": "1", "name": "Paris", "name_search": "paris", "name_no_space": "paris", "name_soundex": "P620"},
	})

	runner := NewStrategyRunner(fixture, nil)
	forms := NewQueryPreprocessor(normalize.New()).Process("paris")

	hits, err := runner.Run(context.Background(), "places", forms, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected the candidate to survive dedup exactly once, got %v", hits)
	}
	if hits[0].DiscoveryStrategy() != "name_search" {
		t.Errorf("DiscoveryStrategy = %q, want name_search (highest priority)", hits[0].DiscoveryStrategy())
	}
}

func TestStrategyRunnerDropsHitsWithoutIdentifier(t *testing.T) {
	fixture := oracle.NewFixtureOracle()
	fixture.Seed("places", []model.Candidate{
		{"name": "Paris", "name_search": "paris"},
	})

	runner := NewStrategyRunner(fixture, nil)
	forms := NewQueryPreprocessor(normalize.New()).Process("paris")

	hits, err := runner.Run(context.Background(), "places", forms, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("expected identifier-less hits to be dropped, got %v", hits)
	}
}
