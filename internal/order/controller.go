package order

import (
	"context"
	"sort"
	"sync"

	"github.com/fstore/backoffice/internal/notify"
	"github.com/rs/zerolog/log"
)

// Controller orchestrates the order-management workflow: fetch, convert,
// sort, store, and pessimistic status updates with a per-row in-flight
// marker. Failures notify the user and leave the stored collection untouched.
type Controller struct {
	api      API
	store    *Store
	notifier notify.Notifier

	mu       sync.Mutex
	inFlight map[int]struct{}
}

func NewController(api API, store *Store, notifier notify.Notifier) *Controller {
	return &Controller{
		api:      api,
		store:    store,
		notifier: notifier,
		inFlight: make(map[int]struct{}),
	}
}

// FetchAll loads every order, converts each record, and stores the collection
// sorted newest first. The sort is stable: orders with identical timestamps
// keep the server's relative order.
func (c *Controller) FetchAll(ctx context.Context) error {
	records, err := c.api.GetAllOrders(ctx)
	if err != nil {
		log.Error().Err(err).Msg("controller: failed to fetch orders")
		c.notifier.Error(err.Error())
		return err
	}

	orders := make([]Order, 0, len(records))
	for _, rec := range records {
		o, err := ToReceive(rec)
		if err != nil {
			log.Error().Err(err).Int("order_id", rec.ID).Msg("controller: failed to convert order")
			c.notifier.Error(err.Error())
			return err
		}
		orders = append(orders, o)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	c.store.Replace(orders)
	log.Info().Int("count", len(orders)).Msg("controller: orders loaded")
	return nil
}

// UpdateStatus requests a status transition for one order. The row is marked
// in-flight before the call and cleared when the call settles, success or
// failure, so the UI never leaves a row permanently stuck. On success the
// returned record replaces the stored order by id.
func (c *Controller) UpdateStatus(ctx context.Context, id int, status Status) error {
	c.markInFlight(id)
	defer c.clearInFlight(id)

	record, err := c.api.UpdateOrder(ctx, id, status)
	if err != nil {
		log.Error().Err(err).Int("order_id", id).Stringer("status", status).Msg("controller: failed to update order status")
		c.notifier.Error(err.Error())
		return err
	}

	updated, err := ToReceive(record)
	if err != nil {
		log.Error().Err(err).Int("order_id", id).Msg("controller: failed to convert updated order")
		c.notifier.Error(err.Error())
		return err
	}

	orders := c.store.Snapshot()
	for i := range orders {
		if orders[i].ID == updated.ID {
			orders[i] = updated
		}
	}
	c.store.Replace(orders)

	log.Info().Int("order_id", id).Stringer("status", status).Msg("controller: order status updated")
	return nil
}

// IsUpdating reports whether the given row has an outstanding update.
func (c *Controller) IsUpdating(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inFlight[id]
	return ok
}

// Updating returns the ids of all rows with outstanding updates.
func (c *Controller) Updating() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]int, 0, len(c.inFlight))
	for id := range c.inFlight {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (c *Controller) markInFlight(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight[id] = struct{}{}
}

func (c *Controller) clearInFlight(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, id)
}
