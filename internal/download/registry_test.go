package download

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nalgeon/be"
)

func TestInflight_SetClear(t *testing.T) {
	r := NewInflight()
	r.Set(0, "/tmp/a")
	r.Set(1, "/tmp/b")
	be.Equal(t, r.Len(), 2)

	r.Set(0, "/tmp/c") // worker moved on to its next file
	be.Equal(t, r.Len(), 2)

	r.Clear(0)
	r.Clear(1)
	be.Equal(t, r.Len(), 0)
}

func TestInflight_CleanupPartials(t *testing.T) {
	dir := t.TempDir()

	partial := filepath.Join(dir, "01-partial.png")
	err := os.WriteFile(partial, []byte("half of an ima"), 0644)
	be.Err(t, err, nil)

	r := NewInflight()
	r.Set(0, partial)
	r.Set(1, filepath.Join(dir, "never-created.png"))

	removed := r.CleanupPartials()
	be.Equal(t, removed, 1)
	be.Equal(t, r.Len(), 0)

	_, err = os.Stat(partial)
	be.True(t, os.IsNotExist(err))
}

func TestInflight_CleanupIdempotent(t *testing.T) {
	r := NewInflight()
	r.Set(0, filepath.Join(t.TempDir(), "gone"))
	be.Equal(t, r.CleanupPartials(), 0)
	be.Equal(t, r.CleanupPartials(), 0)
}

func TestInflight_ConcurrentAccess(t *testing.T) {
	r := NewInflight()
	dir := t.TempDir()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				r.Set(worker, filepath.Join(dir, "f"))
				r.Clear(worker)
			}
		}(w)
	}
	wg.Wait()

	be.Equal(t, r.Len(), 0)
}
