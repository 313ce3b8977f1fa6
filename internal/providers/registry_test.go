package providers

import (
	"testing"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/testutil"
)

func TestRegistryLookupBySport(t *testing.T) {
	nba := &testutil.StubProvider{SportKey: feed.SportNBA}
	nhl := &testutil.StubProvider{SportKey: feed.SportNHL}
	reg := NewRegistry(nhl, nba, nil)

	got, ok := reg.Lookup(feed.SportNBA)
	if !ok || got != nba {
		t.Fatalf("expected nba provider, got %v", got)
	}
	if _, ok := reg.Lookup(feed.SportNFL); ok {
		t.Fatal("expected nfl to be missing")
	}

	sports := reg.Sports()
	if len(sports) != 2 || sports[0] != feed.SportNBA || sports[1] != feed.SportNHL {
		t.Fatalf("expected sorted sports, got %v", sports)
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	first := &testutil.StubProvider{SportKey: feed.SportNFL}
	second := &testutil.StubProvider{SportKey: feed.SportNFL}
	reg := NewRegistry(first)
	reg.Register(second)

	got, _ := reg.Lookup(feed.SportNFL)
	if got != second {
		t.Fatal("expected later registration to win")
	}

	var seen []feed.Sport
	reg.Each(func(p FeedProvider) { seen = append(seen, p.Sport()) })
	if len(seen) != 1 {
		t.Fatalf("expected one provider, got %v", seen)
	}
}

func TestNilRegistryLookup(t *testing.T) {
	var reg *Registry
	if _, ok := reg.Lookup(feed.SportNBA); ok {
		t.Fatal("expected nil registry lookup to miss")
	}
	if reg.Sports() != nil {
		t.Fatal("expected nil sports")
	}
}
