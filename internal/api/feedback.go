package api

import (
	"context"
	"net/http"

	"docugen-cli/internal/model"
)

// SubmitFeedback sends a like/dislike and/or comment for a section.
// A nil IsLiked omits the key entirely (comment-only feedback).
func (c *Client) SubmitFeedback(ctx context.Context, fb model.Feedback) error {
	return c.doJSON(ctx, http.MethodPost, "/feedback/", fb, nil)
}
