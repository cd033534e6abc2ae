package gateway

import (
	"context"

	"github.com/Dhoini/invoice-dashboard/internal/domain"
)

// FetchRevenue returns the monthly revenue time series. This read can be
// slow on the data service side; dashboard callers fetch it independently
// so the rest of the page renders without waiting on it.
func (c *Client) FetchRevenue(ctx context.Context) ([]domain.RevenuePoint, error) {
	var revenue []domain.RevenuePoint
	if err := c.getJSON(ctx, "fetch revenue", "/revenue", nil, &revenue); err != nil {
		return nil, err
	}
	return revenue, nil
}
