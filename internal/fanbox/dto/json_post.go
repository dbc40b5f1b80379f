package dto

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rnozawa/fanbox-dl/internal/model"
)

// FanboxTime is a custom time type that tolerates the API's timestamp
// variants and empty strings.
type FanboxTime struct {
	time.Time
}

// UnmarshalJSON parses RFC 3339 timestamps, with and without offset,
// mapping an empty string to the zero time.
func (ft *FanboxTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		ft.Time = time.Time{}
		return nil
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02 15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			ft.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse date: %s", s)
}

// JSONPostList is the post.listCreator response envelope.
type JSONPostList struct {
	Body JSONPostPage `json:"body"`
}

// JSONPostPage is one page of a creator's post listing.
type JSONPostPage struct {
	Items []JSONPostItem `json:"items"`

	// NextURL points at the next page, nil on the last page.
	NextURL *string `json:"nextUrl"`
}

// JSONPostItem is a post summary within a listing page.
type JSONPostItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	FeeRequired int    `json:"feeRequired"`
}

// ToPost converts a JSONPostItem to a model.Post.
func (ji *JSONPostItem) ToPost() *model.Post {
	return &model.Post{
		ID:          ji.ID,
		Title:       ji.Title,
		FeeRequired: ji.FeeRequired,
	}
}

// JSONPostInfo is the post.info response envelope.
type JSONPostInfo struct {
	Body JSONPostDetail `json:"body"`
}

// JSONPostDetail is the full record of one post.
type JSONPostDetail struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	FeeRequired       int           `json:"feeRequired"`
	PublishedDatetime *FanboxTime   `json:"publishedDatetime"`
	CoverImageURL     string        `json:"coverImageUrl"`
	Excerpt           string        `json:"excerpt"`
	Tags              []string      `json:"tags"`
	Body              *JSONPostBody `json:"body"`
}

// JSONPostBody carries a post's downloadable items in one of two shapes:
// ordered lists (files, images) or keyed maps (fileMap, imageMap).
// Whichever shape is present wins; both absent means no files.
type JSONPostBody struct {
	Files    []JSONFile           `json:"files"`
	Images   []JSONImage          `json:"images"`
	FileMap  map[string]JSONFile  `json:"fileMap"`
	ImageMap map[string]JSONImage `json:"imageMap"`
}

// JSONFile is an attachment entry.
type JSONFile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
	URL       string `json:"url"`
}

// JSONImage is an image entry. Images have no display name of their own;
// the owning post's title names them.
type JSONImage struct {
	ID          string `json:"id"`
	Extension   string `json:"extension"`
	OriginalURL string `json:"originalUrl"`
}

// ToPostDetail converts a JSONPostDetail to a model.PostDetail, resolving
// the body's two possible shapes into a single ordered file list.
//
// List-form entries keep their source order, files before images. Map-form
// entries are ordered by key (numerically when keys parse as integers)
// since the wire format itself carries no order.
func (jd *JSONPostDetail) ToPostDetail(artist *model.Artist, cfg *model.PathConfig) *model.PostDetail {
	detail := model.NewPostDetail(artist, jd.ID, jd.Title, jd.Tags, jd.Excerpt, jd.CoverImageURL, cfg)

	if jd.Body == nil {
		return detail
	}

	var published time.Time
	if jd.PublishedDatetime != nil {
		published = jd.PublishedDatetime.Time
	}

	add := func(name, extension, url string) {
		entry := model.NewFileEntry(detail, len(detail.Files)+1, published, name, extension, url)
		detail.Files = append(detail.Files, entry)
	}

	if len(jd.Body.Files) > 0 || len(jd.Body.Images) > 0 {
		for _, f := range jd.Body.Files {
			add(f.Name, f.Extension, f.URL)
		}
		for _, img := range jd.Body.Images {
			add(jd.Title, img.Extension, img.OriginalURL)
		}
		return detail
	}

	for _, key := range sortedKeys(jd.Body.FileMap) {
		f := jd.Body.FileMap[key]
		add(f.Name, f.Extension, f.URL)
	}
	for _, key := range sortedKeys(jd.Body.ImageMap) {
		img := jd.Body.ImageMap[key]
		add(jd.Title, img.Extension, img.OriginalURL)
	}

	return detail
}

// sortedKeys orders map keys numerically when every key parses as an
// integer, lexicographically otherwise.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	numeric := true
	for _, k := range keys {
		if _, err := strconv.Atoi(k); err != nil {
			numeric = false
			break
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if numeric {
			a, _ := strconv.Atoi(keys[i])
			b, _ := strconv.Atoi(keys[j])
			return a < b
		}
		return keys[i] < keys[j]
	})

	return keys
}
