package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/lcmendes/weather-gist/internal/config"
	"github.com/lcmendes/weather-gist/internal/logger"
)

// GithubGistClient is the resty-backed implementation of [GistClient]
// against the GitHub gist comments API. All calls target the comment thread
// of one configured gist.
type GithubGistClient struct {
	client *resty.Client
	gistID string
	logger *logger.Logger
}

// NewGithubGistClient constructs a [GistClient] for the configured gist.
func NewGithubGistClient(cfg config.Gist, log *logger.Logger) *GithubGistClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/vnd.github+json")

	return &GithubGistClient{
		client: client,
		gistID: cfg.GistID,
		logger: log,
	}
}

type gistCommentPayload struct {
	Body string `json:"body"`
}

type gistCommentResponse struct {
	ID int64 `json:"id"`
}

// CreateComment publishes a new comment on the gist thread and returns the
// identifier assigned by the host.
func (c *GithubGistClient) CreateComment(ctx context.Context, body string) (int64, error) {
	log := logger.FromContext(ctx)

	var created gistCommentResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(gistCommentPayload{Body: body}).
		SetResult(&created).
		Post(fmt.Sprintf("/gists/%s/comments", c.gistID))
	if err != nil {
		log.Err(err).Str("gist_id", c.gistID).Msg("gist comment creation failed")
		return 0, classifyTransportError(err)
	}

	if resp.IsError() {
		log.Error().Str("gist_id", c.gistID).Int("status", resp.StatusCode()).Msg("gist host rejected comment creation")
		return 0, fmt.Errorf("%w: status %d", ErrGistPublish, resp.StatusCode())
	}

	return created.ID, nil
}

// EditComment replaces the body of an existing comment.
func (c *GithubGistClient) EditComment(ctx context.Context, commentID int64, body string) error {
	log := logger.FromContext(ctx)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(gistCommentPayload{Body: body}).
		Patch(fmt.Sprintf("/gists/%s/comments/%d", c.gistID, commentID))
	if err != nil {
		log.Err(err).Str("gist_id", c.gistID).Int64("comment_id", commentID).Msg("gist comment edit failed")
		return classifyTransportError(err)
	}

	if resp.IsError() {
		log.Error().Str("gist_id", c.gistID).Int64("comment_id", commentID).Int("status", resp.StatusCode()).Msg("gist host rejected comment edit")
		return fmt.Errorf("%w: status %d", ErrGistEdit, resp.StatusCode())
	}

	return nil
}

// DeleteComment removes a comment from the gist thread.
func (c *GithubGistClient) DeleteComment(ctx context.Context, commentID int64) error {
	log := logger.FromContext(ctx)

	resp, err := c.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/gists/%s/comments/%d", c.gistID, commentID))
	if err != nil {
		log.Err(err).Str("gist_id", c.gistID).Int64("comment_id", commentID).Msg("gist comment delete failed")
		return classifyTransportError(err)
	}

	if resp.IsError() {
		log.Error().Str("gist_id", c.gistID).Int64("comment_id", commentID).Int("status", resp.StatusCode()).Msg("gist host rejected comment delete")
		return fmt.Errorf("%w: status %d", ErrGistDelete, resp.StatusCode())
	}

	return nil
}
