package model

import (
	"fmt"
	"path/filepath"
)

// Post is a post summary from one page of a creator's paginated listing.
// Summaries are ephemeral: they exist only to feed the fee filter and the
// download queue, and are never persisted.
type Post struct {
	// ID is the post id, as the API returns it.
	ID string

	// Title is the post title.
	Title string

	// FeeRequired is the minimum monthly fee needed to read this post.
	// Zero means the post is free.
	FeeRequired int
}

// PostDetail is the full record of one post, with its resolved file list.
//
// PostDetail owns its Files; each FileEntry holds a back-reference for
// path derivation but never outlives its detail.
type PostDetail struct {
	Artist  *Artist
	ID      string
	Title   string
	Tags    []string
	Excerpt string

	// CoverURL is the post's cover image URL, empty when the post has none.
	CoverURL string

	// Files is the ordered union of the post body's downloadable items.
	// Empty when the body carries neither a file list nor a file map.
	Files []*FileEntry

	// Dir is the computed directory all of this post's files land in:
	// <out>/<artist>/<postID>-<title>.
	Dir string

	// CoverPath is where the cover art is saved, empty when CoverURL is.
	CoverPath string
}

// NewPostDetail creates a PostDetail with computed paths. Files are
// appended afterwards via NewFileEntry, which reads Dir.
func NewPostDetail(artist *Artist, id, title string, tags []string, excerpt, coverURL string, cfg *PathConfig) *PostDetail {
	d := &PostDetail{
		Artist:   artist,
		ID:       id,
		Title:    title,
		Tags:     tags,
		Excerpt:  excerpt,
		CoverURL: coverURL,
	}

	d.Dir = filepath.Join(cfg.OutDir, Sanitize(artist.Name), fmt.Sprintf("%s-%s", id, Sanitize(title)))
	if len(d.Dir) >= maxDirLen {
		d.Dir = d.Dir[:maxDirLen-1]
	}

	if coverURL != "" {
		d.CoverPath = filepath.Join(d.Dir, "cover.jpg")
	}

	return d
}

// HasCover returns true if the post has cover art available for download.
func (d *PostDetail) HasCover() bool {
	return d.CoverURL != ""
}
