package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvarnsen/indyplan/internal/catalog"
	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/invention"
	"github.com/tvarnsen/indyplan/internal/pricing"
)

func inventionStore() *catalog.MemoryStore {
	store := catalog.NewMemoryStore()
	store.AddItem(12345, "Light Frigate Hull", 25)
	store.AddItem(20410, "Datacore", 333)
	store.AddRecipe(300, domain.RecipeProduct{OutputID: 12345, OutputQuantity: 10},
		[]domain.RecipeMaterial{{MaterialID: 20410, BaseQuantity: 2}})
	store.AddDecryptor(domain.Decryptor{ID: 34201, Name: "Accelerant", ProbabilityMultiplier: 1.2, OutputCountModifier: 1})
	return store
}

func postInvention(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	store := inventionStore()
	svc := invention.NewService(store)
	prices := pricing.StaticProvider{20410: 100_000, 34201: 500_000}

	req := httptest.NewRequest("POST", "/api/v1/invention/best", strings.NewReader(body))
	w := httptest.NewRecorder()
	HandleBestCatalyst(svc, store, prices).ServeHTTP(w, req)
	return w
}

func TestHandleBestCatalyst(t *testing.T) {
	t.Run("Valid job returns every option", func(t *testing.T) {
		w := postInvention(t, `{"recipe_id": 300, "base_probability": 0.3, "skills": {"encryption_level": 5}}`)

		require.Equal(t, http.StatusOK, w.Code)

		var result invention.OptimizerResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Len(t, result.AllOptions, 2, "baseline plus one decryptor")
		assert.Nil(t, result.NoCatalyst.Decryptor)
		for _, option := range result.AllOptions {
			assert.LessOrEqual(t, result.Best.CostPerOutputUnit, option.CostPerOutputUnit)
		}
	})

	t.Run("Unknown recipe is not found", func(t *testing.T) {
		w := postInvention(t, `{"recipe_id": 999, "base_probability": 0.3}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgRecipeNotFoundError)
	})

	t.Run("Probability above one fails validation", func(t *testing.T) {
		w := postInvention(t, `{"recipe_id": 300, "base_probability": 1.5}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed body is rejected", func(t *testing.T) {
		w := postInvention(t, `{not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}
