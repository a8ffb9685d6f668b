package report

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fstore/backoffice/internal/apiclient"
	"github.com/fstore/backoffice/internal/filter"
	"github.com/fstore/backoffice/internal/format"
	"github.com/fstore/backoffice/internal/notify"
	"github.com/rs/zerolog/log"
)

// Service exposes the report endpoints of the storefront API.
type Service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) *Service {
	return &Service{api: api}
}

// GetCustomerReport fetches the per-customer aggregates for a date range.
// A zero start means an open lower bound (the All Time bucket) and is left
// out of the query entirely.
func (s *Service) GetCustomerReport(ctx context.Context, start, end time.Time) ([]CustomerRow, error) {
	query := url.Values{}
	if !start.IsZero() {
		query.Set("startDate", format.Date(start))
	}
	query.Set("endDate", format.Date(end))

	var rows []CustomerRow
	if err := s.api.Get(ctx, "/api/reports/customers?"+query.Encode(), &rows); err != nil {
		return nil, fmt.Errorf("report: failed to fetch customer report: %w", err)
	}
	return rows, nil
}

// Fetcher is the slice of Service the controller needs; mocked in tests.
type Fetcher interface {
	GetCustomerReport(ctx context.Context, start, end time.Time) ([]CustomerRow, error)
}

// Controller holds the active report conditions and re-fetches whenever any
// of them changes: time mode, bucket, static range, or a metric range.
// Failures notify the user and keep the previously loaded rows.
type Controller struct {
	svc      Fetcher
	notifier notify.Notifier
	clock    filter.Clock
	loc      *time.Location

	mode   filter.TimeMode
	single filter.Bucket
	static filter.DateRange
	ranges map[Metric]Range

	rows []CustomerRow
}

func NewController(svc Fetcher, notifier notify.Notifier, clock filter.Clock, loc *time.Location) *Controller {
	ranges := make(map[Metric]Range, len(Metrics()))
	for _, m := range Metrics() {
		ranges[m] = Unbounded()
	}
	return &Controller{
		svc:      svc,
		notifier: notifier,
		clock:    clock,
		loc:      loc,
		mode:     filter.SingleTime,
		single:   filter.Today,
		ranges:   ranges,
	}
}

func (c *Controller) SetTimeMode(ctx context.Context, mode filter.TimeMode) error {
	c.mode = mode
	return c.Refresh(ctx)
}

func (c *Controller) SetBucket(ctx context.Context, bucket filter.Bucket) error {
	c.single = bucket
	return c.Refresh(ctx)
}

func (c *Controller) SetStaticRange(ctx context.Context, static filter.DateRange) error {
	c.static = static
	return c.Refresh(ctx)
}

func (c *Controller) SetRange(ctx context.Context, metric Metric, rng Range) error {
	c.ranges[metric] = rng
	return c.Refresh(ctx)
}

// DateRange resolves the active time condition.
func (c *Controller) DateRange() (filter.DateRange, error) {
	return filter.ResolveDateRange(c.mode, c.single, c.static, c.clock, c.loc)
}

// Refresh re-fetches the report for the current conditions and applies the
// metric range filters. Any failure surfaces one user-visible notification
// and keeps the previously loaded rows.
func (c *Controller) Refresh(ctx context.Context) error {
	dateRange, err := c.DateRange()
	if err != nil {
		log.Error().Err(err).Msg("report: failed to resolve report date range")
		c.notifier.Error(err.Error())
		return err
	}

	rows, err := c.svc.GetCustomerReport(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		log.Error().Err(err).Msg("report: failed to fetch customer report")
		c.notifier.Error(err.Error())
		return err
	}

	c.rows = ApplyRanges(c.ranges, rows)
	return nil
}

// Rows returns a copy of the filtered report rows from the last refresh.
func (c *Controller) Rows() []CustomerRow {
	out := make([]CustomerRow, len(c.rows))
	copy(out, c.rows)
	return out
}
