// ABOUTME: Tests for the HTTP catalog client against a local test server
// ABOUTME: Verifies request paths, auth headers and error wrapping

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPClient(HTTPClientOptions{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		APIHost:   "test-host",
		LangID:    4,
		CountryID: 62,
	})
}

func TestHTTPClient_VehicleTypes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/types/list-vehicles-type", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "test-host", r.Header.Get("X-RapidAPI-Host"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"vehicleType":"Passenger Car"},{"id":2,"vehicleType":"Truck"}]`))
	})

	types, err := client.VehicleTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, 1, types[0].ID)
	assert.Equal(t, "Passenger Car", types[0].Name)
}

func TestHTTPClient_Manufacturers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/manufacturers/list/lang-id/4/country-filter-id/62/type-id/1", r.URL.Path)
		w.Write([]byte(`{"manufacturers":[{"manufacturerId":72,"brand":"TOYOTA"}]}`))
	})

	manufacturers, err := client.Manufacturers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, manufacturers, 1)
	assert.Equal(t, 72, manufacturers[0].ID)
	assert.Equal(t, "TOYOTA", manufacturers[0].Brand)
}

func TestHTTPClient_Models(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/list/manufacturer-id/72/lang-id/4/country-filter-id/62/type-id/1", r.URL.Path)
		w.Write([]byte(`{"models":[{"modelId":1484,"modelName":"COROLLA","modelYearFrom":"2013","modelYearTo":"2019"}]}`))
	})

	models, err := client.Models(context.Background(), 72, 1)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, 1484, models[0].ID)
	assert.Equal(t, "COROLLA", models[0].Name)
}

func TestHTTPClient_Vehicles(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/types/list-vehicles-types/1484/manufacturer-id/72/lang-id/4/country-filter-id/62/type-id/1", r.URL.Path)
		w.Write([]byte(`{"modelTypes":[{"vehicleId":9877,"manufacturerName":"TOYOTA","modelName":"COROLLA","typeEngineName":"1.8 VVT-i"}]}`))
	})

	vehicles, err := client.Vehicles(context.Background(), 1484, 72, 1)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, 9877, vehicles[0].ID)
	assert.Equal(t, "1.8 VVT-i", vehicles[0].TypeEngineName)
}

func TestHTTPClient_Categories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/category/category-products-groups-variant-3/9877/manufacturer-id/72/lang-id/4/country-filter-id/62/type-id/1", r.URL.Path)
		w.Write([]byte(`{"categories":{"100006":{"text":"Frenos","children":{"100806":{"text":"Pastillas de freno","children":{}}}}}}`))
	})

	categories, err := client.Categories(context.Background(), 9877, 72, 1)
	require.NoError(t, err)
	require.Contains(t, categories, "100006")
	assert.Equal(t, "Frenos", categories["100006"].Text)
	assert.Contains(t, categories["100006"].Children, "100806")
}

func TestHTTPClient_Articles(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/articles/list/vehicle-id/9877/product-group-id/100806/manufacturer-id/72/lang-id/4/country-filter-id/62/type-id/1", r.URL.Path)
		w.Write([]byte(`{"articles":[{"articleId":1129109,"articleNo":"0 986 494 104","supplierName":"BOSCH","articleProductName":"Brake Pad Set"}],"countArticles":1,"vehicleId":9877,"productGroupId":100806}`))
	})

	list, err := client.Articles(context.Background(), 9877, 100806, 72, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
	require.Len(t, list.Articles, 1)
	assert.Equal(t, int64(1129109), list.Articles[0].ID)
	assert.Equal(t, "BOSCH", list.Articles[0].SupplierName)
}

func TestHTTPClient_ServerErrorWrapsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.VehicleTypes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_BadJSONWrapsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.VehicleTypes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}
