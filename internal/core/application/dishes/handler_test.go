package dishes_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/core/application/dishes"
	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() kernel.IDGenerator {
	n := 0
	return kernel.IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("dish-%d", n)
	})
}

func request(t *testing.T, routeID, body string) pipeline.Request {
	t.Helper()
	payload, err := pipeline.ParseEnvelope([]byte(body))
	require.NoError(t, err)
	return pipeline.NewRequest(routeID, payload)
}

func requireFailure(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	f, ok := pipeline.AsFailure(err)
	require.True(t, ok, "expected a pipeline failure, got %v", err)
	assert.Equal(t, status, f.Status)
	assert.Equal(t, message, f.Message)
}

func seeded(t *testing.T) (*dishes.Handler, *memory.DishRepository) {
	t.Helper()
	repo := memory.NewDishRepository()
	d, err := dish.NewDish("existing", "Taco", "Crunchy", 3, "taco.png")
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), d))
	return dishes.NewHandler(repo, sequentialIDs()), repo
}

const validBody = `{"data":{"name":"Dolcelatte and chickpea spaghetti","description":"Spaghetti topped with a blend of dolcelatte and chickpeas","price":5,"image_url":"https://example.com/spaghetti.jpg"}}`

func TestHandler_Create(t *testing.T) {
	t.Run("should append a dish with a generated id", func(t *testing.T) {
		handler, repo := seeded(t)

		created, err := handler.Create(t.Context(), request(t, "", validBody))

		require.NoError(t, err)
		assert.Equal(t, "dish-1", created.ID())
		assert.Equal(t, 5, created.Price())
		assert.Equal(t, "Dolcelatte and chickpea spaghetti", created.Name())
		assert.Equal(t, 2, repo.Len())

		all, err := handler.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "dish-1", all[len(all)-1].ID())
	})

	t.Run("should ignore an id supplied in the body", func(t *testing.T) {
		handler, _ := seeded(t)

		created, err := handler.Create(t.Context(), request(t, "",
			`{"data":{"id":"mine","name":"n","description":"d","price":1,"image_url":"i"}}`))

		require.NoError(t, err)
		assert.Equal(t, "dish-1", created.ID())
	})

	t.Run("should accept an integral float price", func(t *testing.T) {
		handler, _ := seeded(t)

		created, err := handler.Create(t.Context(), request(t, "",
			`{"data":{"name":"n","description":"d","price":5.0,"image_url":"i"}}`))

		require.NoError(t, err)
		assert.Equal(t, 5, created.Price())
	})

	t.Run("should report a non-positive price as out of range", func(t *testing.T) {
		handler, _ := seeded(t)

		_, err := handler.Create(t.Context(), request(t, "",
			`{"data":{"name":"n","description":"d","price":-3,"image_url":"i"}}`))

		requireFailure(t, err, http.StatusBadRequest, "price requires a valid number")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should report a non-integer price as invalid", func(t *testing.T) {
		handler, _ := seeded(t)

		_, err := handler.Create(t.Context(), request(t, "",
			`{"data":{"name":"n","description":"d","price":2.5,"image_url":"i"}}`))

		requireFailure(t, err, http.StatusBadRequest, "price requires a valid number")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing name", `{"data":{"description":"d","price":1,"image_url":"i"}}`, "Must include a name"},
		{"empty name", `{"data":{"name":"","description":"d","price":1,"image_url":"i"}}`, "Must include a name"},
		{"missing description", `{"data":{"name":"n","price":1,"image_url":"i"}}`, "Must include a description"},
		{"zero price", `{"data":{"name":"n","description":"d","price":0,"image_url":"i"}}`, "Must include a price"},
		{"missing image_url", `{"data":{"name":"n","description":"d","price":1}}`, "Must include a image_url"},
		{"negative price", `{"data":{"name":"n","description":"d","price":-1,"image_url":"i"}}`, "price requires a valid number"},
		{"fractional price", `{"data":{"name":"n","description":"d","price":5.5,"image_url":"i"}}`, "price requires a valid number"},
		{"string price", `{"data":{"name":"n","description":"d","price":"5","image_url":"i"}}`, "price requires a valid number"},
		{"presence is checked before price", `{"data":{"price":-1}}`, "Must include a name"},
		{"empty body", ``, "Must include a name"},
		{"non-string name", `{"data":{"name":42,"description":"d","price":1,"image_url":"i"}}`, "name must be a string"},
	}
	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			handler, repo := seeded(t)

			created, err := handler.Create(t.Context(), request(t, "", tt.body))

			requireFailure(t, err, http.StatusBadRequest, tt.message)
			assert.Nil(t, created)
			assert.Equal(t, 1, repo.Len())
		})
	}
}

func TestHandler_Read(t *testing.T) {
	t.Run("should return the dish named by the route", func(t *testing.T) {
		handler, _ := seeded(t)

		got, err := handler.Read(t.Context(), request(t, "existing", ""))

		require.NoError(t, err)
		assert.Equal(t, "Taco", got.Name())
	})

	t.Run("should return 404 for an unknown id", func(t *testing.T) {
		handler, _ := seeded(t)

		_, err := handler.Read(t.Context(), request(t, "x", ""))

		requireFailure(t, err, http.StatusNotFound, "Dish id not found x")
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("should overwrite the dish in place", func(t *testing.T) {
		handler, repo := seeded(t)

		updated, err := handler.Update(t.Context(), request(t, "existing",
			`{"data":{"id":"existing","name":"Burrito","description":"Big","price":9,"image_url":"b.png"}}`))

		require.NoError(t, err)
		assert.Equal(t, "existing", updated.ID())
		assert.Equal(t, "Burrito", updated.Name())

		stored, err := repo.Get(t.Context(), "existing")
		require.NoError(t, err)
		assert.Equal(t, 9, stored.Price())
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("should allow a body without id", func(t *testing.T) {
		handler, _ := seeded(t)

		_, err := handler.Update(t.Context(), request(t, "existing",
			`{"data":{"name":"Burrito","description":"Big","price":9,"image_url":"b.png"}}`))

		require.NoError(t, err)
	})

	t.Run("should reject a body id that differs from the route", func(t *testing.T) {
		handler, repo := seeded(t)

		_, err := handler.Update(t.Context(), request(t, "existing",
			`{"data":{"id":"other","name":"Burrito","description":"Big","price":9,"image_url":"b.png"}}`))

		requireFailure(t, err, http.StatusBadRequest, "Dish id does not match :dishId. Dish: other, :dishId: existing")
		stored, getErr := repo.Get(t.Context(), "existing")
		require.NoError(t, getErr)
		assert.Equal(t, "Taco", stored.Name())
	})

	t.Run("should check existence before the body", func(t *testing.T) {
		handler, _ := seeded(t)

		_, err := handler.Update(t.Context(), request(t, "missing", `{"data":{}}`))

		requireFailure(t, err, http.StatusNotFound, "Dish id not found missing")
	})

	t.Run("should validate details before the id", func(t *testing.T) {
		handler, _ := seeded(t)

		_, err := handler.Update(t.Context(), request(t, "existing", `{"data":{"id":"other","price":2}}`))

		requireFailure(t, err, http.StatusBadRequest, "Must include a name")
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("should always refuse", func(t *testing.T) {
		handler, repo := seeded(t)

		for _, id := range []string{"existing", "missing"} {
			err := handler.Delete(t.Context(), request(t, id, ""))

			requireFailure(t, err, http.StatusMethodNotAllowed, "Deleting dishes is not allowed")
		}
		assert.Equal(t, 1, repo.Len())
	})
}
