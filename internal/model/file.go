package model

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Windows MAX_PATH limits: 248 for directories, 260 for files.
const (
	maxDirLen  = 248
	maxPathLen = 260
)

// PathConfig holds path derivation settings.
type PathConfig struct {
	// OutDir is the output root every artist directory is created under.
	OutDir string
}

// FileEntry is one downloadable item of a post: an image or an attachment.
//
// The destination path is computed once at construction and never changes,
// so the same source item always maps to the same file on disk.
type FileEntry struct {
	// Post is a back-reference to the owning post, used only for path
	// derivation. The entry does not own it.
	Post *PostDetail

	// Index is the entry's 1-based position within the post's file union.
	Index int

	// Published is the post's publication time. The zero value drops the
	// timestamp component from the filename.
	Published time.Time

	// Name is the item's display name: the attachment filename for files,
	// the post title for images.
	Name string

	// Extension is the file extension without the leading dot.
	Extension string

	// URL is the source URL the bytes are fetched from.
	URL string

	// Path is the computed destination path.
	Path string
}

// NewFileEntry creates a FileEntry with its computed destination path.
//
// The basename joins {index, timestamp, name} with "-", dropping empty
// components. The index is zero-padded to two digits.
func NewFileEntry(post *PostDetail, index int, published time.Time, name, extension, url string) *FileEntry {
	e := &FileEntry{
		Post:      post,
		Index:     index,
		Published: published,
		Name:      name,
		Extension: extension,
		URL:       url,
	}

	e.Path = e.parsePath()
	return e
}

func (e *FileEntry) parsePath() string {
	parts := []string{fmt.Sprintf("%02d", e.Index)}
	if !e.Published.IsZero() {
		parts = append(parts, e.Published.Format("20060102"))
	}
	if name := Sanitize(e.Name); name != "" {
		parts = append(parts, name)
	}

	fileName := strings.Join(parts, "-")
	if e.Extension != "" {
		fileName += "." + e.Extension
	}

	path := filepath.Join(e.Post.Dir, fileName)
	if len(path) >= maxPathLen {
		ext := filepath.Ext(path)
		maxLen := maxPathLen - len(e.Post.Dir) - len(ext) - 1
		if maxLen > 0 && maxLen < len(fileName) {
			path = filepath.Join(e.Post.Dir, fileName[:maxLen]+ext)
		}
	}

	return path
}

var unsafeChars = regexp.MustCompile(`[\s&?*:|"<>()]+`)

// Sanitize replaces characters that are unsafe in file and directory names.
//
// Every maximal run of whitespace and the characters & ? * : | " < > ( )
// collapses to a single underscore. The mapping is idempotent: sanitizing
// an already-sanitized string changes nothing.
//
// Example:
//
//	Sanitize("What? (part 2)") // "What_part_2_"
func Sanitize(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}
