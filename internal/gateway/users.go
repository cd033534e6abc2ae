package gateway

import (
	"context"
	"net/url"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
)

// FetchUserByEmail returns the first user record matching the email, or
// domain.ErrNotFound when no user exists for it.
func (c *Client) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := url.Values{}
	q.Set("email", email)

	var users []domain.User
	if err := c.getJSON(ctx, "fetch user", "/users", q, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNotFound
	}
	return &users[0], nil
}
