package memory_test

import (
	"sync"
	"testing"

	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(order.DishSnapshot{ID: "d1"}, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(id, "addr", "555", status, []order.LineItem{item})
	require.NoError(t, err)
	return o
}

func TestOrderRepository(t *testing.T) {
	t.Run("should remove by id and keep the rest in order", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		ctx := t.Context()
		for _, id := range []string{"a", "b", "c"} {
			require.NoError(t, repo.Add(ctx, newOrder(t, id, order.Pending)))
		}

		require.NoError(t, repo.Remove(ctx, "b"))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "a", all[0].ID())
		assert.Equal(t, "c", all[1].ID())
		_, err = repo.Get(ctx, "b")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail removing a missing order", func(t *testing.T) {
		repo := memory.NewOrderRepository()

		require.ErrorIs(t, repo.Remove(t.Context(), "missing"), errs.ErrObjectNotFound)
	})

	t.Run("should persist replacements", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		ctx := t.Context()
		require.NoError(t, repo.Add(ctx, newOrder(t, "a", order.Pending)))

		o, err := repo.Get(ctx, "a")
		require.NoError(t, err)
		item, err := order.NewLineItem(order.DishSnapshot{ID: "d2"}, 4)
		require.NoError(t, err)
		require.NoError(t, o.Replace("new addr", "999", order.Preparing, []order.LineItem{item}))
		require.NoError(t, repo.Update(ctx, o))

		got, err := repo.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "new addr", got.DeliverTo())
		assert.Equal(t, order.Preparing, got.Status())
		assert.Equal(t, 4, got.Items()[0].Quantity())
	})

	t.Run("should stay consistent under concurrent writers", func(t *testing.T) {
		repo := memory.NewOrderRepository()
		ctx := t.Context()

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id := string(rune('A' + i))
				assert.NoError(t, repo.Add(ctx, newOrder(t, id, order.Pending)))
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, repo.Len())
	})
}
