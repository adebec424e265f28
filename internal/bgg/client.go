package bgg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gierkopolecacz/backend/internal/logging"
	"gierkopolecacz/backend/internal/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	DefaultAPIURL       = "https://boardgamegeek.com/xmlapi2/"
	DefaultDumpURL      = "https://raw.githubusercontent.com/beefsack/bgg-ranking-historicals/master/"
	DefaultRetryCount   = 3
	DefaultRetryDelay   = 500 * time.Millisecond
	DefaultDumpAttempts = 3

	dumpDateLayout = "2006-01-02"
	breakerName    = "bgg-thing-api"
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	APIURL       string
	DumpURL      string
	RetryCount   int
	RetryDelay   time.Duration
	DumpAttempts int

	// RequestsPerSecond paces thing requests; 0 disables pacing.
	RequestsPerSecond float64

	// DumpDir, when set, receives a copy of the downloaded dump as dump-<date>.csv.
	DumpDir string

	Cache      Cache
	HTTPClient *http.Client

	// Now is used to pick the first dump date.
	Now func() time.Time
}

// Client talks to the BoardGameGeek XML API and the ranking dump repository.
type Client struct {
	apiURL       string
	dumpURL      string
	retryCount   int
	retryDelay   time.Duration
	dumpAttempts int
	dumpDir      string
	cache        Cache
	httpClient   *http.Client
	limiter      *rate.Limiter
	breaker      *gobreaker.CircuitBreaker[[]byte]
	now          func() time.Time
}

func NewClient(opts Options) *Client {
	c := &Client{
		apiURL:       withTrailingSlash(firstNonEmpty(opts.APIURL, DefaultAPIURL)),
		dumpURL:      withTrailingSlash(firstNonEmpty(opts.DumpURL, DefaultDumpURL)),
		retryCount:   opts.RetryCount,
		retryDelay:   opts.RetryDelay,
		dumpAttempts: opts.DumpAttempts,
		dumpDir:      opts.DumpDir,
		cache:        opts.Cache,
		httpClient:   opts.HTTPClient,
		now:          opts.Now,
	}
	if c.retryCount <= 0 {
		c.retryCount = DefaultRetryCount
	}
	if c.retryDelay <= 0 {
		c.retryDelay = DefaultRetryDelay
	}
	if c.dumpAttempts <= 0 {
		c.dumpAttempts = DefaultDumpAttempts
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.now == nil {
		c.now = time.Now
	}
	if opts.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	c.breaker = newBreaker()
	return c
}

func newBreaker() *gobreaker.CircuitBreaker[[]byte] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     time.Minute,
		// A game that failed all its retries counts once; five such games in a row
		// means the API is down and the rest of the batch fails fast.
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// FetchRankingDump downloads the ranking dump for today, falling back one day
// at a time for up to the configured number of attempts.
func (c *Client) FetchRankingDump(ctx context.Context) ([]byte, error) {
	date := c.now()
	for attempt := 1; attempt <= c.dumpAttempts; attempt++ {
		name := date.Format(dumpDateLayout) + ".csv"
		body, status, err := c.get(ctx, c.dumpURL+name)
		if err == nil && status == http.StatusOK {
			metrics.BGGRequests.WithLabelValues("dump", "success").Inc()
			if err := c.saveDump(name, body); err != nil {
				return nil, err
			}
			logging.Info().Str("dump", name).Int("bytes", len(body)).Msg("ranking dump downloaded")
			return body, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		metrics.BGGRequests.WithLabelValues("dump", "failure").Inc()
		logging.Warn().Err(err).Int("status", status).Str("dump", name).Int("attempt", attempt).Msg("ranking dump not available")

		date = date.AddDate(0, 0, -1)
		if attempt < c.dumpAttempts {
			metrics.BGGRetries.WithLabelValues("dump").Inc()
			if err := sleep(ctx, c.retryDelay); err != nil {
				return nil, err
			}
		}
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrDumpUnavailable, c.dumpAttempts)
}

func (c *Client) saveDump(name string, body []byte) error {
	if c.dumpDir == "" {
		return nil
	}
	path := filepath.Join(c.dumpDir, "dump-"+name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("save ranking dump: %w", err)
	}
	return nil
}

// FetchRankings downloads and parses the ranking dump.
func (c *Client) FetchRankings(ctx context.Context) ([]RankingRow, error) {
	body, err := c.FetchRankingDump(ctx)
	if err != nil {
		return nil, err
	}
	return ParseRankingDump(bytes.NewReader(body))
}

// FetchThing returns the raw thing XML for a game, retrying non-200 responses.
func (c *Client) FetchThing(ctx context.Context, gameID string) ([]byte, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(gameID)
		if err != nil {
			logging.Warn().Err(err).Str("game_id", gameID).Msg("thing cache read failed")
		} else if ok {
			metrics.BGGRequests.WithLabelValues("thing", "cached").Inc()
			return body, nil
		}
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.requestThing(ctx, gameID)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.BGGRequests.WithLabelValues("thing", "rejected").Inc()
			return nil, &RequestError{GameID: gameID, Err: err}
		}
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(gameID, body); err != nil {
			logging.Warn().Err(err).Str("game_id", gameID).Msg("thing cache write failed")
		}
	}
	return body, nil
}

func (c *Client) requestThing(ctx context.Context, gameID string) ([]byte, error) {
	requestURL := c.apiURL + "thing?id=" + url.QueryEscape(gameID)

	var (
		status  int
		body    []byte
		lastErr error
	)
	for attempt := 0; attempt <= c.retryCount; attempt++ {
		if attempt > 0 {
			metrics.BGGRetries.WithLabelValues("thing").Inc()
			logging.Debug().Str("game_id", gameID).Int("attempt", attempt).Int("status", status).Msg("retrying thing request")
			if err := sleep(ctx, c.retryDelay); err != nil {
				return nil, err
			}
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		body, status, lastErr = c.get(ctx, requestURL)
		if lastErr == nil && status == http.StatusOK {
			metrics.BGGRequests.WithLabelValues("thing", "success").Inc()
			return body, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	metrics.BGGRequests.WithLabelValues("thing", "failure").Inc()
	logging.Warn().Err(lastErr).Str("game_id", gameID).Int("status", status).Msg("thing request failed after retries")
	return nil, &RequestError{GameID: gameID, StatusCode: status, Body: body, Err: lastErr}
}

// GetThing fetches and parses the metadata of one game.
func (c *Client) GetThing(ctx context.Context, gameID string) (*Thing, error) {
	body, err := c.FetchThing(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return ParseThing(body)
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
