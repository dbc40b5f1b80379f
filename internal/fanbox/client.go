package fanbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/rnozawa/fanbox-dl/internal/fanbox/dto"
	"github.com/rnozawa/fanbox-dl/internal/http"
	"github.com/rnozawa/fanbox-dl/internal/model"
)

const defaultBaseURL = "https://api.fanbox.cc"

// Client talks to the FANBOX API.
type Client struct {
	httpClient *http.Client
	pathCfg    *model.PathConfig
	baseURL    string
	delay      time.Duration
	pageLimit  int
}

// NewClient creates an API client.
//
// delay paces consecutive listing-page requests; pageLimit is the page
// size requested from the listing endpoint.
func NewClient(httpClient *http.Client, pathCfg *model.PathConfig, delay time.Duration, pageLimit int) *Client {
	return &Client{
		httpClient: httpClient,
		pathCfg:    pathCfg,
		baseURL:    defaultBaseURL,
		delay:      delay,
		pageLimit:  pageLimit,
	}
}

// ListSupportingPlans fetches the caller's supported plans and converts
// them to artists.
func (c *Client) ListSupportingPlans(ctx context.Context) ([]*model.Artist, error) {
	body, err := c.httpClient.Get(ctx, c.baseURL+"/plan.listSupporting")
	if err != nil {
		return nil, fmt.Errorf("list supporting plans: %w", err)
	}

	var list dto.JSONPlanList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode plan list: %w", err)
	}

	artists := make([]*model.Artist, 0, len(list.Body))
	for i := range list.Body {
		artists = append(artists, list.Body[i].ToArtist())
	}
	return artists, nil
}

// ListCreatorPosts walks the creator's paginated post listing and returns
// all summaries. A fixed delay separates page requests.
func (c *Client) ListCreatorPosts(ctx context.Context, creatorID string) ([]*model.Post, error) {
	next := fmt.Sprintf("%s/post.listCreator?creatorId=%s&limit=%d",
		c.baseURL, url.QueryEscape(creatorID), c.pageLimit)

	var posts []*model.Post
	for next != "" {
		body, err := c.httpClient.Get(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("list posts for %s: %w", creatorID, err)
		}

		var page dto.JSONPostList
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decode post list for %s: %w", creatorID, err)
		}

		for i := range page.Body.Items {
			posts = append(posts, page.Body.Items[i].ToPost())
		}

		next = ""
		if page.Body.NextURL != nil {
			next = *page.Body.NextURL
		}
		if next != "" {
			if err := c.pace(ctx); err != nil {
				return nil, err
			}
		}
	}

	return posts, nil
}

// GetPostDetail fetches one post's full record, with its file union
// resolved into an ordered list.
func (c *Client) GetPostDetail(ctx context.Context, artist *model.Artist, postID string) (*model.PostDetail, error) {
	body, err := c.httpClient.Get(ctx, fmt.Sprintf("%s/post.info?postId=%s", c.baseURL, url.QueryEscape(postID)))
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", postID, err)
	}

	var info dto.JSONPostInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("decode post %s: %w", postID, err)
	}

	return info.Body.ToPostDetail(artist, c.pathCfg), nil
}

func (c *Client) pace(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.delay):
		return nil
	}
}
