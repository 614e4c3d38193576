package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   string
	Name string
}

func (t testItem) EntityID() string { return t.ID }

// apiError fakes a transport failure carrying a server message.
type apiError struct {
	message string
}

func (e *apiError) Error() string      { return "request failed" }
func (e *apiError) APIMessage() string { return e.message }

func createTestResource(t *testing.T) *Resource[testItem] {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New[testItem]("test", logger)
}

func TestResource_List_ReplacesCollection(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}, {ID: "b"}}, nil
	})
	require.NoError(t, err)

	items, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "c"}}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []testItem{{ID: "c"}}, items)
	assert.Equal(t, []testItem{{ID: "c"}}, res.Items())
	assert.Equal(t, Succeeded, res.Status().Phase)
}

func TestResource_List_FailureKeepsCollection(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}}, nil
	})
	require.NoError(t, err)

	_, err = res.List(ctx, "Failed to fetch.", func(context.Context) ([]testItem, error) {
		return nil, errors.New("boom")
	})

	require.Error(t, err)
	assert.Equal(t, "Failed to fetch.", err.Error())
	assert.Equal(t, []testItem{{ID: "a"}}, res.Items())
	assert.Equal(t, Status{Phase: Failed, Message: "Failed to fetch."}, res.Status())
}

func TestResource_Get_SetsSingletonOnly(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}}, nil
	})
	require.NoError(t, err)

	item, err := res.Get(ctx, "fallback", func(context.Context) (testItem, error) {
		return testItem{ID: "b", Name: "focused"}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, "b", item.ID)
	require.NotNil(t, res.Current())
	assert.Equal(t, "focused", res.Current().Name)
	// The collection is untouched by a singleton fetch.
	assert.Equal(t, []testItem{{ID: "a"}}, res.Items())
}

func TestResource_Create_RequireRefetchLeavesCollection(t *testing.T) {
	res := createTestResource(t)

	item, err := res.Create(context.Background(), "fallback", RequireRefetch, func(context.Context) (testItem, error) {
		return testItem{ID: "new"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "new", item.ID)
	assert.Empty(t, res.Items())
	assert.Equal(t, Succeeded, res.Status().Phase)
}

func TestResource_Create_AppendAddsToCollection(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}}, nil
	})
	require.NoError(t, err)

	_, err = res.Create(ctx, "fallback", Append, func(context.Context) (testItem, error) {
		return testItem{ID: "b"}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []testItem{{ID: "a"}, {ID: "b"}}, res.Items())
}

func TestResource_Update_ReplacesInPlace(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
	})
	require.NoError(t, err)

	_, err = res.Update(ctx, "b", "fallback", func(context.Context) (testItem, error) {
		return testItem{ID: "b", Name: "updated"}, nil
	})
	require.NoError(t, err)

	// Order is preserved; only the matching element changed.
	assert.Equal(t, []testItem{{ID: "a"}, {ID: "b", Name: "updated"}, {ID: "c"}}, res.Items())
}

func TestResource_Update_AbsentIDLeavesCollectionUnchanged(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}}, nil
	})
	require.NoError(t, err)

	item, err := res.Update(ctx, "ghost", "fallback", func(context.Context) (testItem, error) {
		return testItem{ID: "ghost"}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, "ghost", item.ID)
	assert.Equal(t, []testItem{{ID: "a"}}, res.Items())
	assert.Equal(t, Succeeded, res.Status().Phase)
}

func TestResource_Update_RefreshesMatchingSingleton(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.Get(ctx, "fallback", func(context.Context) (testItem, error) {
		return testItem{ID: "a", Name: "before"}, nil
	})
	require.NoError(t, err)

	_, err = res.Update(ctx, "a", "fallback", func(context.Context) (testItem, error) {
		return testItem{ID: "a", Name: "after"}, nil
	})
	require.NoError(t, err)

	require.NotNil(t, res.Current())
	assert.Equal(t, "after", res.Current().Name)
}

func TestResource_Delete_RemovesElement(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}, {ID: "b"}}, nil
	})
	require.NoError(t, err)

	err = res.Delete(ctx, "a", "fallback", func(context.Context) error {
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []testItem{{ID: "b"}}, res.Items())
}

func TestResource_Delete_FailureLeavesCollection(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}}, nil
	})
	require.NoError(t, err)

	err = res.Delete(ctx, "a", "Failed to delete.", func(context.Context) error {
		return errors.New("404")
	})

	require.Error(t, err)
	assert.Equal(t, []testItem{{ID: "a"}}, res.Items())
	assert.Equal(t, Status{Phase: Failed, Message: "Failed to delete."}, res.Status())
}

func TestResource_Discard_RemovesLocallyWithoutStatusChange(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}, {ID: "b"}}, nil
	})
	require.NoError(t, err)
	before := res.Status()

	res.Discard("a")

	assert.Equal(t, []testItem{{ID: "b"}}, res.Items())
	assert.Equal(t, before, res.Status())
}

func TestResource_StatusLifecycle(t *testing.T) {
	res := createTestResource(t)

	var phases []Phase
	cancel := res.Subscribe(func(snap Snapshot[testItem]) {
		phases = append(phases, snap.Status.Phase)
	})
	defer cancel()

	assert.Equal(t, Idle, res.Status().Phase)

	_, err := res.List(context.Background(), "fallback", func(context.Context) ([]testItem, error) {
		return nil, nil
	})
	require.NoError(t, err)

	// Pending and Succeeded were both delivered before List returned.
	assert.Equal(t, []Phase{Pending, Succeeded}, phases)
}

func TestResource_MessageNormalization(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	// A server-provided message wins over the fallback.
	_, err := res.List(ctx, "Fallback message.", func(context.Context) ([]testItem, error) {
		return nil, &apiError{message: "Property not found."}
	})
	require.Error(t, err)
	assert.Equal(t, "Property not found.", err.Error())
	assert.Equal(t, "Property not found.", res.Status().Message)

	// Without one, the operation's fixed fallback applies.
	_, err = res.List(ctx, "Fallback message.", func(context.Context) ([]testItem, error) {
		return nil, &apiError{}
	})
	require.Error(t, err)
	assert.Equal(t, "Fallback message.", err.Error())
}

func TestResource_OpError_UnwrapsCause(t *testing.T) {
	res := createTestResource(t)

	cause := &apiError{message: "Server said no."}
	_, err := res.List(context.Background(), "fallback", func(context.Context) ([]testItem, error) {
		return nil, cause
	})

	require.Error(t, err)
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.ErrorIs(t, err, error(cause))
}

func TestResource_Reset_KeepsDataClearsStatus(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	_, err := res.List(ctx, "Failed.", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}}, nil
	})
	require.NoError(t, err)

	_, err = res.List(ctx, "Failed.", func(context.Context) ([]testItem, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	res.Reset()

	assert.Equal(t, Status{}, res.Status())
	assert.Equal(t, []testItem{{ID: "a"}}, res.Items())
}

func TestResource_SubscribeCancel(t *testing.T) {
	res := createTestResource(t)

	var calls int
	cancel := res.Subscribe(func(Snapshot[testItem]) { calls++ })

	res.Reset()
	assert.Equal(t, 1, calls)

	cancel()
	res.Reset()
	assert.Equal(t, 1, calls)
}

func TestResource_SnapshotIsACopy(t *testing.T) {
	res := createTestResource(t)

	_, err := res.List(context.Background(), "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a", Name: "original"}}, nil
	})
	require.NoError(t, err)

	snap := res.Snapshot()
	snap.Items[0].Name = "mutated"

	assert.Equal(t, "original", res.Items()[0].Name)
}

// Two concurrent operations share one status record. The operation that
// settles last owns the final status, regardless of start order.
func TestResource_LastSettledStatusWins(t *testing.T) {
	res := createTestResource(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	// The slow operation starts first but settles last.
	go func() {
		_, err := res.List(ctx, "Slow fetch failed.", func(context.Context) ([]testItem, error) {
			close(started)
			<-release

			return nil, errors.New("boom")
		})
		done <- err
	}()

	<-started
	_, err := res.List(ctx, "fallback", func(context.Context) ([]testItem, error) {
		return []testItem{{ID: "a"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, Succeeded, res.Status().Phase)

	close(release)
	require.Error(t, <-done)

	// The later settlement overwrote the earlier success.
	assert.Equal(t, Status{Phase: Failed, Message: "Slow fetch failed."}, res.Status())
	// Data from the successful fetch survives the status overwrite.
	assert.Equal(t, []testItem{{ID: "a"}}, res.Items())
}
