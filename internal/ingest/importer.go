// Package ingest stores the games prepared by the BoardGameGeek client.
package ingest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"gierkopolecacz/backend/internal/bgg"
	"gierkopolecacz/backend/internal/hub"
	"gierkopolecacz/backend/internal/logging"
	"gierkopolecacz/backend/internal/metrics"
	"gierkopolecacz/backend/internal/models"
)

var ErrImportRunning = errors.New("import already running")

const (
	EventStarted  = "import.started"
	EventProgress = "import.progress"
	EventFinished = "import.finished"
	EventFailed   = "import.failed"
)

type Source interface {
	Prepare(ctx context.Context, limit int, progress bgg.ProgressFunc) ([]bgg.GameRecord, []bgg.FailedGame, error)
}

type GameWriter interface {
	UpsertByBGGID(ctx context.Context, game *models.Game, tagNames []string) error
}

type Publisher interface {
	Broadcast(topic string, event hub.Event)
}

// Summary reports the outcome of one import run. Failed holds games whose
// metadata could not be fetched; Skipped holds games that could not be stored.
type Summary struct {
	Processed int              `json:"processed"`
	Failed    []bgg.FailedGame `json:"failed"`
	Skipped   []bgg.FailedGame `json:"skipped"`
	Duration  time.Duration    `json:"duration"`
}

// Importer runs at most one import at a time.
type Importer struct {
	source  Source
	games   GameWriter
	events  Publisher
	running atomic.Bool
	wg      sync.WaitGroup
}

// NewImporter creates an importer. events may be nil.
func NewImporter(source Source, games GameWriter, events Publisher) *Importer {
	return &Importer{source: source, games: games, events: events}
}

// Running reports whether an import is in progress.
func (i *Importer) Running() bool {
	return i.running.Load()
}

// Run imports the first limit games of the ranking (all when limit <= 0).
func (i *Importer) Run(ctx context.Context, limit int) (*Summary, error) {
	if !i.running.CompareAndSwap(false, true) {
		return nil, ErrImportRunning
	}
	defer i.running.Store(false)
	return i.run(ctx, limit)
}

// Start runs an import in a background goroutine. Cancelling ctx aborts it;
// Wait blocks until it has returned.
func (i *Importer) Start(ctx context.Context, limit int) error {
	if !i.running.CompareAndSwap(false, true) {
		return ErrImportRunning
	}
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		defer i.running.Store(false)
		if _, err := i.run(ctx, limit); err != nil {
			logging.Error().Err(err).Msg("background import failed")
		}
	}()
	return nil
}

// Wait blocks until the background import started by Start, if any, has finished.
func (i *Importer) Wait() {
	i.wg.Wait()
}

func (i *Importer) run(ctx context.Context, limit int) (*Summary, error) {
	start := time.Now()
	log := logging.With().Str("component", "importer").Logger()
	log.Info().Int("limit", limit).Msg("import started")
	i.publish(EventStarted, map[string]int{"limit": limit})

	records, failed, err := i.source.Prepare(ctx, limit, func(done, total int) {
		i.publish(EventProgress, map[string]int{"done": done, "total": total})
	})
	if err != nil {
		log.Error().Err(err).Msg("import aborted")
		i.publish(EventFailed, map[string]string{"error": err.Error()})
		return nil, err
	}
	metrics.ImportFailures.WithLabelValues("fetch").Add(float64(len(failed)))

	summary := &Summary{Failed: failed, Skipped: []bgg.FailedGame{}}
	if summary.Failed == nil {
		summary.Failed = []bgg.FailedGame{}
	}
	for _, rec := range records {
		if err := i.store(ctx, rec); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				i.publish(EventFailed, map[string]string{"error": ctxErr.Error()})
				return nil, ctxErr
			}
			log.Warn().Err(err).Str("game_id", rec.ID).Msg("could not store game")
			metrics.ImportFailures.WithLabelValues("store").Inc()
			summary.Skipped = append(summary.Skipped, bgg.FailedGame{ID: rec.ID, Reason: err.Error()})
			continue
		}
		metrics.ImportedGames.Inc()
		summary.Processed++
	}

	summary.Duration = time.Since(start)
	metrics.ImportDuration.Observe(summary.Duration.Seconds())
	log.Info().
		Int("processed", summary.Processed).
		Int("failed", len(summary.Failed)).
		Int("skipped", len(summary.Skipped)).
		Dur("duration", summary.Duration).
		Msg("import finished")
	i.publish(EventFinished, summary)
	return summary, nil
}

func (i *Importer) store(ctx context.Context, rec bgg.GameRecord) error {
	game, tags, err := ToGame(rec)
	if err != nil {
		return err
	}
	return i.games.UpsertByBGGID(ctx, game, tags)
}

func (i *Importer) publish(eventType string, payload any) {
	if i.events == nil {
		return
	}
	i.events.Broadcast(hub.ImportTopic, hub.Event{Type: eventType, Payload: payload})
}
