package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fstore/backoffice/internal/order"
)

type mockAPI struct {
	getAllFunc func(ctx context.Context) ([]order.OrderRecord, error)
	updateFunc func(ctx context.Context, id int, status order.Status) (order.OrderRecord, error)
}

func (m *mockAPI) GetAllOrders(ctx context.Context) ([]order.OrderRecord, error) {
	return m.getAllFunc(ctx)
}

func (m *mockAPI) UpdateOrder(ctx context.Context, id int, status order.Status) (order.OrderRecord, error) {
	return m.updateFunc(ctx, id, status)
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func recordWithID(id int, createdAt string) order.OrderRecord {
	rec := wireOrder()
	rec.ID = id
	rec.CreatedAt = createdAt
	return rec
}

func TestController_FetchAll(t *testing.T) {
	t.Run("sorts_newest_first", func(t *testing.T) {
		api := &mockAPI{
			getAllFunc: func(ctx context.Context) ([]order.OrderRecord, error) {
				return []order.OrderRecord{
					recordWithID(1, "2024-01-05T10:00:00Z"),
					recordWithID(2, "2024-01-06T10:00:00Z"),
				}, nil
			},
		}
		store := order.NewStore()
		ctrl := order.NewController(api, store, &recordingNotifier{})

		require.NoError(t, ctrl.FetchAll(context.Background()))

		orders := store.Snapshot()
		require.Len(t, orders, 2)
		assert.Equal(t, 2, orders[0].ID)
		assert.Equal(t, 1, orders[1].ID)
	})

	t.Run("stable_on_equal_timestamps", func(t *testing.T) {
		api := &mockAPI{
			getAllFunc: func(ctx context.Context) ([]order.OrderRecord, error) {
				return []order.OrderRecord{
					recordWithID(5, "2024-01-05T10:00:00Z"),
					recordWithID(6, "2024-01-05T10:00:00Z"),
					recordWithID(7, "2024-01-05T10:00:00Z"),
				}, nil
			},
		}
		store := order.NewStore()
		ctrl := order.NewController(api, store, &recordingNotifier{})

		require.NoError(t, ctrl.FetchAll(context.Background()))

		orders := store.Snapshot()
		require.Len(t, orders, 3)
		assert.Equal(t, []int{5, 6, 7}, []int{orders[0].ID, orders[1].ID, orders[2].ID})
	})

	t.Run("conversion_failure_notifies_and_keeps_store", func(t *testing.T) {
		bad := recordWithID(9, "2024-01-05T10:00:00Z")
		bad.Status = "TELEPORTED"
		api := &mockAPI{
			getAllFunc: func(ctx context.Context) ([]order.OrderRecord, error) {
				return []order.OrderRecord{bad}, nil
			},
		}
		store := order.NewStore()
		prior, err := order.ToReceive(recordWithID(1, "2024-01-01T00:00:00Z"))
		require.NoError(t, err)
		store.Replace([]order.Order{prior})

		notifier := &recordingNotifier{}
		ctrl := order.NewController(api, store, notifier)

		assert.Error(t, ctrl.FetchAll(context.Background()))
		assert.Len(t, notifier.errors, 1)

		orders := store.Snapshot()
		require.Len(t, orders, 1)
		assert.Equal(t, 1, orders[0].ID)
	})
}

func TestController_UpdateStatus(t *testing.T) {
	seed := func(t *testing.T, store *order.Store) {
		t.Helper()
		a, err := order.ToReceive(recordWithID(3, "2024-01-05T10:00:00Z"))
		require.NoError(t, err)
		b, err := order.ToReceive(recordWithID(4, "2024-01-04T10:00:00Z"))
		require.NoError(t, err)
		store.Replace([]order.Order{a, b})
	}

	t.Run("success_replaces_row_by_id", func(t *testing.T) {
		store := order.NewStore()
		seed(t, store)

		var ctrl *order.Controller
		api := &mockAPI{
			updateFunc: func(ctx context.Context, id int, status order.Status) (order.OrderRecord, error) {
				assert.True(t, ctrl.IsUpdating(id), "row must be in flight during the call")
				rec := recordWithID(id, "2024-01-05T10:00:00Z")
				rec.Status = string(status)
				return rec, nil
			},
		}
		notifier := &recordingNotifier{}
		ctrl = order.NewController(api, store, notifier)

		require.NoError(t, ctrl.UpdateStatus(context.Background(), 3, order.StatusCancelled))

		assert.Empty(t, ctrl.Updating(), "in-flight set must be empty after the call")
		assert.Empty(t, notifier.errors)

		orders := store.Snapshot()
		require.Len(t, orders, 2)
		assert.Equal(t, order.StatusCancelled, orders[0].Status)
		assert.Equal(t, order.StatusPending, orders[1].Status)
	})

	t.Run("failure_clears_in_flight_and_keeps_store", func(t *testing.T) {
		store := order.NewStore()
		seed(t, store)

		var ctrl *order.Controller
		api := &mockAPI{
			updateFunc: func(ctx context.Context, id int, status order.Status) (order.OrderRecord, error) {
				assert.Equal(t, []int{3}, ctrl.Updating())
				return order.OrderRecord{}, assert.AnError
			},
		}
		notifier := &recordingNotifier{}
		ctrl = order.NewController(api, store, notifier)

		assert.Error(t, ctrl.UpdateStatus(context.Background(), 3, order.StatusCancelled))

		assert.Empty(t, ctrl.Updating())
		assert.Len(t, notifier.errors, 1)

		orders := store.Snapshot()
		require.Len(t, orders, 2)
		assert.Equal(t, order.StatusPending, orders[0].Status, "stored order must be unchanged on failure")
	})

	t.Run("malformed_update_response_keeps_store", func(t *testing.T) {
		store := order.NewStore()
		seed(t, store)

		api := &mockAPI{
			updateFunc: func(ctx context.Context, id int, status order.Status) (order.OrderRecord, error) {
				rec := recordWithID(id, "not a date")
				return rec, nil
			},
		}
		notifier := &recordingNotifier{}
		ctrl := order.NewController(api, store, notifier)

		assert.Error(t, ctrl.UpdateStatus(context.Background(), 3, order.StatusAccepted))
		assert.Empty(t, ctrl.Updating())
		assert.Len(t, notifier.errors, 1)
		assert.Equal(t, order.StatusPending, store.Snapshot()[0].Status)
	})
}

func TestStore_ReplaceAndSnapshot(t *testing.T) {
	store := order.NewStore()
	assert.Equal(t, 0, store.Len())

	a, err := order.ToReceive(recordWithID(1, "2024-01-01T00:00:00Z"))
	require.NoError(t, err)
	store.Replace([]order.Order{a})

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1)

	// Mutating the snapshot must not leak into the store.
	snapshot[0].Note = "changed"
	assert.Equal(t, "ring the bell", store.Snapshot()[0].Note)
}
