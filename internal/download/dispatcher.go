package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	ioutils "github.com/rnozawa/fanbox-dl/internal/io"
	"github.com/rnozawa/fanbox-dl/internal/model"
	"golang.org/x/sync/errgroup"
)

// downloadArtist enumerates one artist's posts, queues the accessible
// ones, and drains the queue with a fixed pool of workers.
func (m *Manager) downloadArtist(ctx context.Context, artist *model.Artist) error {
	posts, err := m.catalog.ListCreatorPosts(ctx, artist.CreatorID)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	var accessible []*model.Post
	for _, post := range posts {
		if artist.CanAccess(post.FeeRequired) {
			accessible = append(accessible, post)
		}
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("%s: %d posts, %d within pledged tier", artist.Name, len(posts), len(accessible)),
		Level:   LevelInfo,
	})
	if len(accessible) == 0 {
		return nil
	}

	atomic.AddInt32(&m.postsTotal, int32(len(accessible)))

	// All jobs are queued up front and the channel closed, so a worker's
	// receive on the emptied queue ends its loop instead of blocking.
	queue := make(chan *model.Post, len(accessible))
	for _, post := range accessible {
		queue <- post
	}
	close(queue)

	workers := m.settings.Workers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		worker := w
		g.Go(func() error {
			return m.drainQueue(ctx, worker, artist, queue)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Finished %s", artist.Name),
		Level:   LevelSuccess,
	})
	return nil
}

// drainQueue is one worker's loop. Job failures are reported and the
// worker moves on; only cancellation stops it early.
func (m *Manager) drainQueue(ctx context.Context, worker int, artist *model.Artist, queue <-chan *model.Post) error {
	for post := range queue {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := m.downloadPost(ctx, worker, artist, post); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Error on post %s (%s): %v", post.ID, post.Title, err),
				Level:   LevelError,
			})
		}
		atomic.AddInt32(&m.postsDone, 1)
	}
	return nil
}

// downloadPost fetches one post's detail and downloads its files
// sequentially, in source order. A failed file is counted and skipped;
// its siblings still download.
func (m *Manager) downloadPost(ctx context.Context, worker int, artist *model.Artist, post *model.Post) error {
	detail, err := m.catalog.GetPostDetail(ctx, artist, post.ID)
	if err != nil {
		return fmt.Errorf("fetch detail: %w", err)
	}

	if len(detail.Files) == 0 && !(m.settings.SaveCoverArt && detail.HasCover()) {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Post %s has no downloadable files", post.ID),
			Level:   LevelVerbose,
		})
		return nil
	}

	if err := ioutils.EnsureDir(detail.Dir); err != nil {
		return fmt.Errorf("create %s: %w", detail.Dir, err)
	}

	if m.settings.SaveCoverArt && detail.HasCover() {
		if err := m.downloadCover(ctx, worker, detail); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Error saving cover for post %s: %v", post.ID, err),
				Level:   LevelWarning,
			})
		}
	}

	for _, entry := range detail.Files {
		if err := m.downloadFile(ctx, worker, entry); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			atomic.AddInt32(&m.failedFiles, 1)
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Error downloading %s: %v", filepath.Base(entry.Path), err),
				Level:   LevelWarning,
			})
		}
	}

	return nil
}

// downloadFile streams one entry to its destination unless the file is
// already present and force is off. The in-flight registry brackets the
// write so an interrupt can remove the partial file.
func (m *Manager) downloadFile(ctx context.Context, worker int, entry *model.FileEntry) error {
	if _, err := os.Stat(entry.Path); err == nil && !m.force {
		atomic.AddInt32(&m.skippedFiles, 1)
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Skipping existing: %s", filepath.Base(entry.Path)),
			Level:   LevelVerbose,
		})
		return nil
	}

	m.inflight.Set(worker, entry.Path)
	err := m.fetcher.DownloadFile(ctx, entry.URL, entry.Path, nil)
	m.inflight.Clear(worker)

	if err != nil {
		// Drop the partial so the next run re-fetches instead of
		// skip-matching a truncated file.
		os.Remove(entry.Path)
		return err
	}

	if info, statErr := os.Stat(entry.Path); statErr == nil {
		atomic.AddInt64(&m.receivedBytes, info.Size())
	}
	atomic.AddInt32(&m.downloadedFiles, 1)

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Downloaded: %s", filepath.Base(entry.Path)),
		Level:   LevelVerbose,
	})
	return nil
}

// downloadCover fetches the post's cover art, normalizes it to JPEG
// (resizing when configured), and writes it next to the post's files.
func (m *Manager) downloadCover(ctx context.Context, worker int, detail *model.PostDetail) error {
	if _, err := os.Stat(detail.CoverPath); err == nil && !m.force {
		atomic.AddInt32(&m.skippedFiles, 1)
		return nil
	}

	data, err := m.fetcher.Get(ctx, detail.CoverURL)
	if err != nil {
		return err
	}

	if m.settings.CoverArtResize {
		data, err = m.images.Resize(data, m.settings.CoverArtMaxSize, m.settings.CoverArtMaxSize)
	} else {
		data, err = m.images.ConvertToJPEG(data)
	}
	if err != nil {
		return err
	}

	m.inflight.Set(worker, detail.CoverPath)
	err = ioutils.WriteFile(detail.CoverPath, data)
	m.inflight.Clear(worker)
	if err != nil {
		os.Remove(detail.CoverPath)
		return err
	}

	atomic.AddInt32(&m.downloadedFiles, 1)
	atomic.AddInt64(&m.receivedBytes, int64(len(data)))
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Saved cover for post %s", detail.ID),
		Level:   LevelVerbose,
	})
	return nil
}
