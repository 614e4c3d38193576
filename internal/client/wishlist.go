package client

import (
	"context"
	"log/slog"
	"net/http"

	"propmart/internal/domain/entity"
	"propmart/internal/store"
	"propmart/internal/transport"
)

const (
	msgFetchWishlist  = "Failed to fetch wishlist."
	msgUpdateWishlist = "Failed to update wishlist."
)

// Wishlist is the saved-properties slice. Membership is keyed by
// property id; Toggle adds or removes depending on the cached state.
type Wishlist struct {
	res *store.Resource[entity.WishlistItem]
	t   transport.Client
}

func newWishlist(t transport.Client, logger *slog.Logger) *Wishlist {
	return &Wishlist{
		res: store.New[entity.WishlistItem]("wishlist", logger),
		t:   t,
	}
}

// List replaces the collection with the session user's saved properties.
func (w *Wishlist) List(ctx context.Context) ([]entity.WishlistItem, error) {
	return w.res.List(ctx, msgFetchWishlist, func(ctx context.Context) ([]entity.WishlistItem, error) {
		var items []entity.WishlistItem
		err := w.t.Do(ctx, transport.Request{
			Method: http.MethodGet,
			Path:   "/wishlist",
		}, &items)

		return items, err
	})
}

// Toggle flips membership for the given property: saved becomes removed,
// unsaved becomes saved. The decision is made against the cached
// collection, so callers should List first.
func (w *Wishlist) Toggle(ctx context.Context, propertyID string) error {
	if w.Contains(propertyID) {
		return w.res.Delete(ctx, propertyID, msgUpdateWishlist, func(ctx context.Context) error {
			return w.t.Do(ctx, transport.Request{
				Method: http.MethodDelete,
				Path:   "/wishlist/" + propertyID,
			}, nil)
		})
	}

	_, err := w.res.Create(ctx, msgUpdateWishlist, store.Append, func(ctx context.Context) (entity.WishlistItem, error) {
		var item entity.WishlistItem
		err := w.t.Do(ctx, transport.Request{
			Method: http.MethodPost,
			Path:   "/wishlist",
			Body:   map[string]string{"propertyId": propertyID},
		}, &item)

		return item, err
	})

	return err
}

// Contains reports whether the property is in the cached wishlist. This
// is the membership read other views join against.
func (w *Wishlist) Contains(propertyID string) bool {
	_, ok := w.res.Find(propertyID)

	return ok
}

// Items returns a copy of the cached wishlist entries.
func (w *Wishlist) Items() []entity.WishlistItem {
	return w.res.Items()
}

// PropertyIDs returns the saved property ids in collection order.
func (w *Wishlist) PropertyIDs() []string {
	items := w.res.Items()
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.PropertyID
	}

	return ids
}

// Status returns the slice's shared request status.
func (w *Wishlist) Status() store.Status {
	return w.res.Status()
}

// Subscribe registers a render callback.
func (w *Wishlist) Subscribe(fn func(store.Snapshot[entity.WishlistItem])) (cancel func()) {
	return w.res.Subscribe(fn)
}

// Reset returns the status to Idle, keeping cached data.
func (w *Wishlist) Reset() {
	w.res.Reset()
}
