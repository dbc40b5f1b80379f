package download

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rnozawa/fanbox-dl/internal/config"
	ioutils "github.com/rnozawa/fanbox-dl/internal/io"
	"github.com/rnozawa/fanbox-dl/internal/model"
	"github.com/rnozawa/fanbox-dl/internal/rules"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Progress is a snapshot of the run's counters.
type Progress struct {
	Downloaded int32
	Skipped    int32
	Failed     int32
	Received   int64
	PostsDone  int32
	PostsTotal int32
}

// Manager coordinates the whole download run.
type Manager struct {
	settings *config.Settings
	catalog  Catalog
	fetcher  Fetcher
	ruleSet  *rules.RuleSet
	inflight *Inflight
	images   *ioutils.ImageService
	force    bool

	artists []*model.Artist

	downloadedFiles int32
	skippedFiles    int32
	failedFiles     int32
	receivedBytes   int64
	postsDone       int32
	postsTotal      int32

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager. The inflight registry is shared with the
// caller, which also hands it to the termination signal handler.
func NewManager(settings *config.Settings, catalog Catalog, fetcher Fetcher, ruleSet *rules.RuleSet, inflight *Inflight, force bool, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		catalog:    catalog,
		fetcher:    fetcher,
		ruleSet:    ruleSet,
		inflight:   inflight,
		images:     ioutils.NewImageService(),
		force:      force,
		onProgress: onProgress,
	}
}

// Initialize fetches the supporting-plan list and reports the summary.
func (m *Manager) Initialize(ctx context.Context) error {
	artists, err := m.catalog.ListSupportingPlans(ctx)
	if err != nil {
		return err
	}
	m.artists = artists

	total := 0
	for _, artist := range artists {
		total += artist.PledgedFee
	}
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Supporting %d creators (total pledge %d/month)", len(artists), total),
		Level:   LevelInfo,
	})

	return nil
}

// ArtistNames returns display lines for the initialized artists.
func (m *Manager) ArtistNames() []string {
	names := make([]string, len(m.artists))
	for i, artist := range m.artists {
		names[i] = fmt.Sprintf("%s — %s (%d/month)", artist.Name, artist.PlanTitle, artist.PledgedFee)
	}
	return names
}

// Run processes the initialized artists strictly one after another,
// applying the ignore rules and draining one worker pool per artist.
//
// A failed artist does not abort the run; cancellation does.
func (m *Manager) Run(ctx context.Context) error {
	for i, artist := range m.artists {
		if err := ctx.Err(); err != nil {
			return err
		}

		if m.ruleSet.Skip(artist) {
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Skipping %s (ignore rules)", artist.Name),
				Level:   LevelInfo,
			})
			continue
		}

		if err := m.downloadArtist(ctx, artist); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Error processing %s: %v", artist.Name, err),
				Level:   LevelError,
			})
		}

		if i < len(m.artists)-1 {
			if err := m.pace(ctx); err != nil {
				return err
			}
		}
	}

	return nil
}

// Progress returns the current counters.
func (m *Manager) Progress() Progress {
	return Progress{
		Downloaded: atomic.LoadInt32(&m.downloadedFiles),
		Skipped:    atomic.LoadInt32(&m.skippedFiles),
		Failed:     atomic.LoadInt32(&m.failedFiles),
		Received:   atomic.LoadInt64(&m.receivedBytes),
		PostsDone:  atomic.LoadInt32(&m.postsDone),
		PostsTotal: atomic.LoadInt32(&m.postsTotal),
	}
}

func (m *Manager) pace(ctx context.Context) error {
	delay := m.settings.RequestDelay()
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
