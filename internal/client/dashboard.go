package client

import (
	"context"
	"log/slog"
	"net/http"

	"propmart/internal/domain/entity"
	"propmart/internal/store"
	"propmart/internal/transport"
)

const msgFetchStats = "Could not fetch stats."

// Dashboard is the aggregate-stats slice. It only ever holds a focused
// singleton; the collection stays empty.
type Dashboard struct {
	res *store.Resource[entity.DashboardStats]
	t   transport.Client
}

func newDashboard(t transport.Client, logger *slog.Logger) *Dashboard {
	return &Dashboard{
		res: store.New[entity.DashboardStats]("dashboard", logger),
		t:   t,
	}
}

// Fetch refreshes the stats snapshot.
func (d *Dashboard) Fetch(ctx context.Context) (entity.DashboardStats, error) {
	return d.res.Get(ctx, msgFetchStats, func(ctx context.Context) (entity.DashboardStats, error) {
		var stats entity.DashboardStats
		err := d.t.Do(ctx, transport.Request{
			Method: http.MethodGet,
			Path:   "/dashboard/stats",
		}, &stats)

		return stats, err
	})
}

// Stats returns the last fetched snapshot, or nil before the first
// successful fetch.
func (d *Dashboard) Stats() *entity.DashboardStats {
	return d.res.Current()
}

// Status returns the slice's shared request status.
func (d *Dashboard) Status() store.Status {
	return d.res.Status()
}

// Subscribe registers a render callback.
func (d *Dashboard) Subscribe(fn func(store.Snapshot[entity.DashboardStats])) (cancel func()) {
	return d.res.Subscribe(fn)
}

// Reset returns the status to Idle, keeping cached data.
func (d *Dashboard) Reset() {
	d.res.Reset()
}
