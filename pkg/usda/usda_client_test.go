package usda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"nutritrack/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetFood(t *testing.T) {
	t.Run("parses detail payload and sends api key", func(t *testing.T) {
		var gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("x-api-key")
			assert.Equal(t, "/food/169967", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"fdcId": 169967,
				"description": "Apples, raw, with skin",
				"servingSize": 125,
				"servingSizeUnit": "g",
				"foodNutrients": [
					{"amount": 52, "nutrient": {"id": 1008, "name": "Energy", "unitName": "kcal"}},
					{"amount": 0.3, "nutrient": {"id": 1003, "name": "Protein", "unitName": "g"}}
				]
			}`))
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", server.URL)
		detail, err := client.GetFood(context.Background(), 169967)
		require.NoError(t, err)

		assert.Equal(t, "test-key", gotKey)
		assert.Equal(t, int64(169967), detail.FdcID)
		assert.Equal(t, "Apples, raw, with skin", detail.Description)
		assert.Equal(t, float64(125), detail.ServingSize)
		require.Len(t, detail.FoodNutrients, 2)
		assert.Equal(t, int64(1008), detail.FoodNutrients[0].Nutrient.ID)
		assert.Equal(t, float64(52), detail.FoodNutrients[0].Amount)
	})

	t.Run("maps 404 to remote not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", server.URL)
		_, err := client.GetFood(context.Background(), 42)
		assert.ErrorIs(t, err, domain.ErrFoodNotFoundRemote)
	})

	t.Run("maps server failure to remote unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", server.URL)
		_, err := client.GetFood(context.Background(), 42)
		assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	})

	t.Run("maps transport failure to remote unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClientWithBaseURL("test-key", server.URL)
		_, err := client.GetFood(context.Background(), 42)
		assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	})
}

func TestClient_Search(t *testing.T) {
	t.Run("parses search payload with flattened nutrients", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/foods/search", r.URL.Path)
			assert.Equal(t, "apple", r.URL.Query().Get("query"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"foods": [
					{
						"fdcId": 169967,
						"description": "Apples, raw, with skin",
						"brandName": "",
						"foodNutrients": [
							{"nutrientId": 1008, "nutrientName": "Energy", "value": 52, "unitName": "kcal"}
						]
					}
				]
			}`))
		}))
		defer server.Close()

		client := NewClientWithBaseURL("test-key", server.URL)
		result, err := client.Search(context.Background(), "apple")
		require.NoError(t, err)

		require.Len(t, result.Foods, 1)
		assert.Equal(t, int64(169967), result.Foods[0].FdcID)
		require.Len(t, result.Foods[0].FoodNutrients, 1)
		assert.Equal(t, int64(1008), result.Foods[0].FoodNutrients[0].NutrientID)
		assert.Equal(t, float64(52), result.Foods[0].FoodNutrients[0].Value)
	})
}
