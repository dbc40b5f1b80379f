package model

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file", "normal-file"},
		{"name with spaces", "name_with_spaces"},
		{"a & b", "a_b"},
		{"what?", "what_"},
		{"star*colon:pipe|", "star_colon_pipe_"},
		{`quote"less<more>`, "quote_less_more_"},
		{"(parens)", "_parens_"},
		{"tab\tand\nnewline", "tab_and_newline"},
		{"run of ?*: mixed", "run_of_mixed"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"plain",
		"with space & (symbols)?",
		"*  leading and trailing  *",
		"already_sanitized_",
	}

	for _, s := range inputs {
		once := Sanitize(s)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestArtist_CanAccess(t *testing.T) {
	artist := &Artist{Name: "creator", PledgedFee: 500}

	tests := []struct {
		name        string
		feeRequired int
		want        bool
	}{
		{"free post excluded", 0, false},
		{"below tier", 300, true},
		{"exactly at tier", 500, true},
		{"above tier", 900, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artist.CanAccess(tt.feeRequired); got != tt.want {
				t.Errorf("CanAccess(%d) = %v, want %v", tt.feeRequired, got, tt.want)
			}
		})
	}
}

func TestNewPostDetail_Dir(t *testing.T) {
	artist := &Artist{Name: "Some Creator", PledgedFee: 500}
	cfg := &PathConfig{OutDir: "out"}

	detail := NewPostDetail(artist, "12345", "Title: Part (1)", nil, "", "", cfg)

	want := filepath.Join("out", "Some_Creator", "12345-Title_Part_1_")
	if detail.Dir != want {
		t.Errorf("Dir = %q, want %q", detail.Dir, want)
	}
	if detail.HasCover() {
		t.Error("post without cover URL should not report cover art")
	}
	if detail.CoverPath != "" {
		t.Errorf("CoverPath = %q, want empty", detail.CoverPath)
	}
}

func TestNewPostDetail_Cover(t *testing.T) {
	artist := &Artist{Name: "creator"}
	cfg := &PathConfig{OutDir: "out"}

	detail := NewPostDetail(artist, "1", "t", nil, "", "https://example.com/cover.webp", cfg)

	if !detail.HasCover() {
		t.Error("post with cover URL should report cover art")
	}
	want := filepath.Join(detail.Dir, "cover.jpg")
	if detail.CoverPath != want {
		t.Errorf("CoverPath = %q, want %q", detail.CoverPath, want)
	}
}

func TestNewFileEntry_Path(t *testing.T) {
	artist := &Artist{Name: "creator"}
	cfg := &PathConfig{OutDir: "out"}
	detail := NewPostDetail(artist, "42", "post", nil, "", "", cfg)
	published := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		index    int
		pub      time.Time
		fileName string
		ext      string
		want     string
	}{
		{"all components", 1, published, "sketch", "png", "01-20260115-sketch.png"},
		{"no timestamp", 2, time.Time{}, "notes", "pdf", "02-notes.pdf"},
		{"empty name", 3, published, "", "jpg", "03-20260115.jpg"},
		{"index only", 4, time.Time{}, "", "zip", "04.zip"},
		{"double digit index", 12, time.Time{}, "x", "png", "12-x.png"},
		{"name needing sanitize", 5, time.Time{}, "a b?c", "png", "05-a_b_c.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := NewFileEntry(detail, tt.index, tt.pub, tt.fileName, tt.ext, "https://example.com/f")
			want := filepath.Join(detail.Dir, tt.want)
			if entry.Path != want {
				t.Errorf("Path = %q, want %q", entry.Path, want)
			}
		})
	}
}

// Entries differing only in fields outside the path template collide on
// purpose: the collision is the de-duplication mechanism.
func TestNewFileEntry_PathCollision(t *testing.T) {
	artist := &Artist{Name: "creator"}
	cfg := &PathConfig{OutDir: "out"}
	detail := NewPostDetail(artist, "42", "post", nil, "", "", cfg)

	a := NewFileEntry(detail, 1, time.Time{}, "same", "png", "https://example.com/a")
	b := NewFileEntry(detail, 1, time.Time{}, "same", "png", "https://example.com/b")

	if a.Path != b.Path {
		t.Errorf("entries differing only in URL should share a path: %q != %q", a.Path, b.Path)
	}
}

func TestNewFileEntry_LongPathClamped(t *testing.T) {
	artist := &Artist{Name: "creator"}
	cfg := &PathConfig{OutDir: "out"}
	detail := NewPostDetail(artist, "1", "t", nil, "", "", cfg)

	longName := strings.Repeat("a", 300)

	entry := NewFileEntry(detail, 1, time.Time{}, longName, "png", "u")
	if len(entry.Path) >= 260 {
		t.Errorf("path length = %d, want < 260", len(entry.Path))
	}
	if filepath.Ext(entry.Path) != ".png" {
		t.Errorf("clamped path lost extension: %q", entry.Path)
	}
}
