package download

import (
	"context"

	"github.com/rnozawa/fanbox-dl/internal/model"
)

// Catalog is the API surface the manager consumes: plan discovery, post
// listing, and post detail. Satisfied by fanbox.Client.
type Catalog interface {
	ListSupportingPlans(ctx context.Context) ([]*model.Artist, error)
	ListCreatorPosts(ctx context.Context, creatorID string) ([]*model.Post, error)
	GetPostDetail(ctx context.Context, artist *model.Artist, postID string) (*model.PostDetail, error)
}

// Fetcher performs the raw transfers. Satisfied by http.Client.
type Fetcher interface {
	// Get returns a response body for in-memory use (cover art).
	Get(ctx context.Context, url string) ([]byte, error)

	// DownloadFile streams a URL to a destination path.
	DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error
}
