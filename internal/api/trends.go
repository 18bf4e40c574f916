package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/novraux/novraux-desk/internal/model"
)

// TrendParams are the backend-side trend filters. Zero values are omitted.
type TrendParams struct {
	MinScore *float64
	Source   string
	IPSafe   *bool
	Limit    int
}

// NewTrendParams converts the server part of a trend filter
func NewTrendParams(f model.TrendFilter, limit int) TrendParams {
	p := TrendParams{Source: f.SourceConstraint(), Limit: limit}
	if minScore, ok := f.Score.MinScore(); ok {
		p.MinScore = &minScore
	}
	if f.SafeOnly {
		safe := true
		p.IPSafe = &safe
	}
	return p
}

func (p TrendParams) values() url.Values {
	q := url.Values{}
	if p.MinScore != nil {
		q.Set("min_score", strconv.FormatFloat(*p.MinScore, 'f', -1, 64))
	}
	if p.Source != "" {
		q.Set("source", p.Source)
	}
	if p.IPSafe != nil {
		q.Set("ip_safe", strconv.FormatBool(*p.IPSafe))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// GetTrends lists trends matching params
func (c *Client) GetTrends(ctx context.Context, params TrendParams) ([]model.Trend, error) {
	var trends []model.Trend
	if err := c.do(ctx, MsgFetchTrends, http.MethodGet, "/trends", params.values(), nil, &trends); err != nil {
		return nil, err
	}
	return trends, nil
}

// GetTrend fetches one trend
func (c *Client) GetTrend(ctx context.Context, id int) (model.Trend, error) {
	var trend model.Trend
	err := c.do(ctx, MsgFetchTrend, http.MethodGet, fmt.Sprintf("/trends/%d", id), nil, nil, &trend)
	return trend, err
}
