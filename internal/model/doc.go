// Package model defines the core data structures used throughout fanbox-dl.
//
// All types here are write-once: they are fully populated by their
// constructor (from an API record) and never mutated afterwards, so they
// are safe to share across download workers without synchronization.
//
// # Artist
//
// Artist is one supported creator, derived from a supporting-plan record:
//
//	artist := &model.Artist{Name: "Creator", PledgedFee: 500, ...}
//	artist.CanAccess(300) // true: within the pledged tier
//	artist.CanAccess(0)   // false: free posts are not gated content
//
// # PostDetail and FileEntry
//
// PostDetail owns the resolved, ordered list of downloadable files for one
// post. Each FileEntry carries its computed destination path:
//
//	detail := model.NewPostDetail(artist, "12345", "Title", tags, excerpt, coverURL, cfg)
//	entry := model.NewFileEntry(detail, 1, published, "sketch", "png", url)
//	fmt.Println(entry.Path) // out/Creator/12345-Title/01-20260115-sketch.png
//
// # Path derivation
//
// Paths are deterministic: the same (artist, post, index, timestamp, name)
// always yields the same path. That collision is the de-duplication
// mechanism — a re-run skips files that already exist on disk.
package model
