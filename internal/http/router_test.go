package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfeed "github.com/preston-bernstein/sports-feed-service/internal/app/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
	"github.com/preston-bernstein/sports-feed-service/internal/http/handlers"
	"github.com/preston-bernstein/sports-feed-service/internal/metrics"
	"github.com/preston-bernstein/sports-feed-service/internal/providers"
	"github.com/preston-bernstein/sports-feed-service/internal/providers/nba"
	"github.com/preston-bernstein/sports-feed-service/internal/testutil"
)

func newRouter(ps ...providers.FeedProvider) http.Handler {
	logger, _ := testutil.NewBufferLogger()
	svc := appfeed.NewService(providers.NewRegistry(ps...), 0, metrics.NewRecorder(), logger)
	return NewRouter(handlers.NewHandler(svc, logger, nil), RouterConfig{Logger: logger})
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newRouter(&testutil.StubProvider{})

	cases := map[string]int{
		"/health":               http.StatusOK,
		"/ready":                http.StatusOK,
		"/api/sports":           http.StatusOK,
		"/api/nba/games":        http.StatusOK,
		"/api/nba/pbp?gameId=1": http.StatusOK,
		"/api/NBA/games":        http.StatusOK,
		"/api/nba/pbp":          http.StatusBadRequest,
		"/api/nfl/games":        http.StatusNotFound,
		"/api/cricket/games":    http.StatusNotFound,
		"/does-not-exist":       http.StatusNotFound,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
		if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
			t.Fatalf("route %s expected json, got %q", path, ct)
		}
	}
}

func TestRouterRejectsNonGet(t *testing.T) {
	router := newRouter(&testutil.StubProvider{})

	rr := testutil.Serve(router, http.MethodPost, "/api/nba/games", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
}

func TestRouterCORS(t *testing.T) {
	router := newRouter(&testutil.StubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/nba/games", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := testutil.ServeRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterSportsListing(t *testing.T) {
	router := newRouter(&testutil.StubProvider{SportKey: feed.SportNHL}, &testutil.StubProvider{SportKey: feed.SportNBA})

	rr := testutil.Serve(router, http.MethodGet, "/api/sports", nil)
	var body struct {
		Sports []string `json:"sports"`
	}
	testutil.DecodeJSON(t, rr, &body)
	assert.Equal(t, []string{"nba", "nhl"}, body.Sports)
}

func TestRouterGamesFailureIsEmptyArray(t *testing.T) {
	router := newRouter(&testutil.StubProvider{GamesErr: errors.New("boom")})

	rr := testutil.Serve(router, http.MethodGet, "/api/nba/games", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestRouterPlaysNoPlaysIsInactive(t *testing.T) {
	router := newRouter(&testutil.StubProvider{SportKey: feed.SportNHL})

	rr := testutil.Serve(router, http.MethodGet, "/api/nhl/pbp?gameId=2024020001", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `{"active":false,"message":"WAITING FOR PUCK DROP","plays":[]}`, rr.Body.String())
}

// nbaActions renders n chronological NBA actions.
func nbaActions(n int) string {
	actions := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		actions = append(actions, fmt.Sprintf(
			`{"actionNumber": %d, "clock": "PT07M29.00S", "period": 2, "teamTricode": "BOS", "actionType": "2pt", "description": "Tatum driving layup %d", "scoreHome": "%d", "scoreAway": "40"}`,
			i, i, 40+i))
	}
	return `{"game": {"gameId": "0022400001", "actions": [` + strings.Join(actions, ",") + `]}}`
}

func TestEndToEndNBAPlayFeed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, nbaActions(60))
	}))
	defer upstream.Close()

	client := nba.NewClient(nba.Config{BaseURL: upstream.URL})
	router := newRouter(providers.NewInstrumentedProvider(client, nil))

	rr := testutil.Serve(router, http.MethodGet, "/api/nba/pbp?gameId=0022400001", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var result feed.PlayFeedResult
	testutil.DecodeJSON(t, rr, &result)
	assert.True(t, result.Active)
	require.Len(t, result.Plays, 50)
	assert.Equal(t, "Tatum driving layup 60", result.Plays[0].Description)
	assert.Equal(t, "Tatum driving layup 11", result.Plays[49].Description)
	assert.Equal(t, "07:29", result.Plays[0].Clock)
	assert.Equal(t, "100-40", result.Plays[0].Score)
	for _, p := range result.Plays {
		assert.NotEmpty(t, p.Description)
	}
}

func TestEndToEndNBAConnectionErrorIsFeedOffline(t *testing.T) {
	rt := testutil.RoundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp 127.0.0.1:443: connect: connection refused")
	})
	client := nba.NewClient(nba.Config{HTTPClient: &http.Client{Transport: rt}})
	router := newRouter(providers.NewInstrumentedProvider(client, nil))

	rr := testutil.Serve(router, http.MethodGet, "/api/nba/pbp?gameId=0022400001", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `{"active":false,"message":"FEED OFFLINE","plays":[]}`, rr.Body.String())
}

func TestHealthShuttingDown(t *testing.T) {
	router := newRouter(&testutil.StubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(router, req.WithContext(ctx))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
