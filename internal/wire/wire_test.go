package wire_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-rating/internal/data/repository"
	"restaurant-rating/internal/dto/response"
	"restaurant-rating/internal/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := repository.NewMemoryRepository(zap.NewNop())
	app := wire.Wiring(repo, zap.NewNop())

	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func createVisitorHTTP(t *testing.T, server *httptest.Server, name string) string {
	t.Helper()

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/visitors", map[string]any{
		"name":   name,
		"age":    30,
		"gender": "Man",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var visitor response.VisitorResponse
	require.NoError(t, json.Unmarshal(env.Data, &visitor))
	return visitor.ID
}

func createRestaurantHTTP(t *testing.T, server *httptest.Server, name string) string {
	t.Helper()

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/restaurants", map[string]any{
		"name":         name,
		"description":  "test kitchen",
		"cuisine_type": "JAPANESE",
		"average_bill": 25.00,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var restaurant response.RestaurantResponse
	require.NoError(t, json.Unmarshal(env.Data, &restaurant))
	return restaurant.ID
}

func createReviewHTTP(t *testing.T, server *httptest.Server, visitorID, restaurantID string, rating int) {
	t.Helper()

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/reviews", map[string]any{
		"visitor_id":    visitorID,
		"restaurant_id": restaurantID,
		"rating":        rating,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func getRestaurantHTTP(t *testing.T, server *httptest.Server, restaurantID string) response.RestaurantResponse {
	t.Helper()

	resp, env := doJSON(t, http.MethodGet, server.URL+"/api/restaurants/"+restaurantID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var restaurant response.RestaurantResponse
	require.NoError(t, json.Unmarshal(env.Data, &restaurant))
	return restaurant
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReviewLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)

	visitorID := createVisitorHTTP(t, server, "Alice")
	restaurantID := createRestaurantHTTP(t, server, "Sakura")

	createReviewHTTP(t, server, visitorID, restaurantID, 5)
	assert.Equal(t, 5.00, getRestaurantHTTP(t, server, restaurantID).Rating)

	// Second review from the same visitor is rejected
	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/reviews", map[string]any{
		"visitor_id":    visitorID,
		"restaurant_id": restaurantID,
		"rating":        1,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)

	reviewURL := fmt.Sprintf("%s/api/reviews/%s/%s", server.URL, visitorID, restaurantID)

	resp, env = doJSON(t, http.MethodGet, reviewURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var review response.ReviewResponse
	require.NoError(t, json.Unmarshal(env.Data, &review))
	assert.Equal(t, 5, review.Rating)

	resp, _ = doJSON(t, http.MethodPut, reviewURL, map[string]any{
		"rating":      3,
		"review_text": "slipped a bit",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3.00, getRestaurantHTTP(t, server, restaurantID).Rating)

	resp, _ = doJSON(t, http.MethodDelete, reviewURL, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0.00, getRestaurantHTTP(t, server, restaurantID).Rating)

	resp, _ = doJSON(t, http.MethodGet, reviewURL, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateReview_UnknownReferences(t *testing.T) {
	server := newTestServer(t)

	visitorID := createVisitorHTTP(t, server, "Alice")

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/reviews", map[string]any{
		"visitor_id":    visitorID,
		"restaurant_id": "8a0b73f4-14f5-47c7-9f3b-7a3f6f6b2f10",
		"rating":        4,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateReview_ValidationFailure(t *testing.T) {
	server := newTestServer(t)

	visitorID := createVisitorHTTP(t, server, "Alice")
	restaurantID := createRestaurantHTTP(t, server, "Sakura")

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/reviews", map[string]any{
		"visitor_id":    visitorID,
		"restaurant_id": restaurantID,
		"rating":        6,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, env.Errors)
}

func TestPagedReviewsOverHTTP(t *testing.T) {
	server := newTestServer(t)

	restaurantID := createRestaurantHTTP(t, server, "Sakura")
	for _, rating := range []int{2, 5, 3} {
		visitorID := createVisitorHTTP(t, server, "Visitor")
		createReviewHTTP(t, server, visitorID, restaurantID, rating)
	}

	url := fmt.Sprintf("%s/api/restaurants/%s/reviews?page=0&size=2&sort=rating&direction=desc", server.URL, restaurantID)
	resp, env := doJSON(t, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page response.PaginatedResponse[response.ReviewResponse]
	require.NoError(t, json.Unmarshal(env.Data, &page))

	require.Len(t, page.Data, 2)
	assert.Equal(t, 5, page.Data[0].Rating)
	assert.Equal(t, 3, page.Data[1].Rating)
	assert.Equal(t, int64(3), page.Pagination.TotalElements)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	url = fmt.Sprintf("%s/api/restaurants/%s/reviews/by-rating?ascending=true", server.URL, restaurantID)
	resp, env = doJSON(t, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Data, 3)
	assert.Equal(t, 2, page.Data[0].Rating)
	assert.Equal(t, 5, page.Data[2].Rating)
}

func TestDeleteVisitorCascadeOverHTTP(t *testing.T) {
	server := newTestServer(t)

	visitorID := createVisitorHTTP(t, server, "Alice")
	otherID := createVisitorHTTP(t, server, "Bob")
	restaurantID := createRestaurantHTTP(t, server, "Sakura")

	createReviewHTTP(t, server, visitorID, restaurantID, 5)
	createReviewHTTP(t, server, otherID, restaurantID, 3)
	require.Equal(t, 4.00, getRestaurantHTTP(t, server, restaurantID).Rating)

	resp, _ := doJSON(t, http.MethodDelete, server.URL+"/api/visitors/"+visitorID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	assert.Equal(t, 3.00, getRestaurantHTTP(t, server, restaurantID).Rating)

	reviewURL := fmt.Sprintf("%s/api/reviews/%s/%s", server.URL, visitorID, restaurantID)
	resp, _ = doJSON(t, http.MethodGet, reviewURL, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
