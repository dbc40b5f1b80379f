package download

import (
	"os"
	"sync"
)

// Inflight maps each active worker to the destination path it is
// currently writing. It is created once in main and shared by reference
// between the manager's workers and the termination signal handler; its
// lifetime is the process lifetime.
type Inflight struct {
	mu    sync.Mutex
	paths map[int]string
}

// NewInflight creates an empty registry.
func NewInflight() *Inflight {
	return &Inflight{paths: make(map[int]string)}
}

// Set records the path a worker is about to write. Call immediately
// before the write begins.
func (r *Inflight) Set(worker int, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths[worker] = path
}

// Clear removes a worker's entry. Call immediately after the write ends,
// on success and on failure alike.
func (r *Inflight) Clear(worker int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.paths, worker)
}

// Len returns the number of registered in-flight writes.
func (r *Inflight) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.paths)
}

// CleanupPartials deletes every registered destination file that still
// exists on disk, clears the registry, and returns how many files were
// removed.
//
// This is a best-effort compensating action for process termination. A
// worker may complete between the existence check and the delete, in
// which case a finished file is removed; a worker may also still be
// writing when its file is deleted, losing that partial download. Both
// outcomes are accepted: a re-run restores the file.
func (r *Inflight) CleanupPartials() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, path := range r.paths {
		if _, err := os.Stat(path); err == nil {
			if os.Remove(path) == nil {
				removed++
			}
		}
	}
	r.paths = make(map[int]string)

	return removed
}
