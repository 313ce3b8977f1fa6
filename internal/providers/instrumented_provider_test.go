package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/logging"
	"github.com/preston-bernstein/sports-feed-service/internal/testutil"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestInstrumentedProviderPassesThrough(t *testing.T) {
	inner := &testutil.StubProvider{
		SportKey: feed.SportNHL,
		Games:    []feed.Game{{GameID: "1", Matchup: "TOR @ MTL", Status: feed.StatusLive}},
		Plays:    testutil.SamplePlays(3),
	}
	p := NewInstrumentedProvider(inner, nil)

	if p.Sport() != feed.SportNHL {
		t.Fatalf("expected nhl sport, got %s", p.Sport())
	}
	games, err := p.FetchGames(context.Background())
	if err != nil || len(games) != 1 {
		t.Fatalf("unexpected games %v err %v", games, err)
	}
	plays, err := p.FetchPlays(context.Background(), "1", 2)
	if err != nil || len(plays) != 2 {
		t.Fatalf("unexpected plays %v err %v", plays, err)
	}
	if inner.LastLimit.Load() != 2 {
		t.Fatalf("expected limit forwarded, got %d", inner.LastLimit.Load())
	}
	if u, ok := p.(interface{ Unwrap() FeedProvider }); !ok || u.Unwrap() != inner {
		t.Fatal("expected Unwrap to expose inner provider")
	}
}

func TestInstrumentedProviderLogsFailureWithKind(t *testing.T) {
	var buf bytes.Buffer
	inner := &testutil.StubProvider{
		SportKey: feed.SportNBA,
		PlaysErr: NewUpstreamError("nba", "playbyplay", KindUpstreamUnavailable, 503, errors.New("down")),
	}
	p := NewInstrumentedProvider(inner, newBufferLogger(&buf))

	if _, err := p.FetchPlays(context.Background(), "0022400001", 50); err == nil {
		t.Fatal("expected error to propagate")
	}

	out := buf.String()
	for _, want := range []string{"provider fetch failed", "sport=nba", "endpoint=plays", "error_kind=upstream_unavailable", "game_id=0022400001"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output %q", want, out)
		}
	}
}

func TestInstrumentedProviderPrefersContextLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	inner := &testutil.StubProvider{SportKey: feed.SportNFL, GamesErr: ErrProviderUnavailable}
	p := NewInstrumentedProvider(inner, newBufferLogger(&base))

	ctx := logging.WithLogger(context.Background(), newBufferLogger(&scoped))
	_, _ = p.FetchGames(ctx)

	if base.Len() != 0 {
		t.Fatalf("expected base logger unused, got %q", base.String())
	}
	if !strings.Contains(scoped.String(), "sport=nfl") {
		t.Fatalf("expected scoped logger record, got %q", scoped.String())
	}
}
