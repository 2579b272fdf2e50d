// ABOUTME: HTTP implementation of the catalog Client against a TecDoc-style REST API
// ABOUTME: Path-encoded parameters, API key headers, bounded request timeout

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// HTTPClient calls a TecDoc-style catalog API. Language and country filters
// are fixed per deployment and applied to every request.
type HTTPClient struct {
	baseURL   string
	apiKey    string
	apiHost   string
	langID    int
	countryID int
	client    *http.Client
	logger    *slog.Logger
}

// HTTPClientOptions configures NewHTTPClient.
type HTTPClientOptions struct {
	BaseURL   string
	APIKey    string
	APIHost   string
	LangID    int // 4 covers English/Spanish
	CountryID int // 62 = Spain
	Timeout   time.Duration
}

// NewHTTPClient creates a catalog client. A zero timeout defaults to 30s.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		apiKey:    opts.APIKey,
		apiHost:   opts.APIHost,
		langID:    opts.LangID,
		countryID: opts.CountryID,
		client:    &http.Client{Timeout: timeout},
		logger:    slog.Default().With("component", "catalog"),
	}
}

// VehicleTypes lists the selectable vehicle classes.
func (c *HTTPClient) VehicleTypes(ctx context.Context) ([]VehicleType, error) {
	var types []VehicleType
	if err := c.get(ctx, "/types/list-vehicles-type", &types); err != nil {
		return nil, err
	}
	return types, nil
}

// Manufacturers lists brands for a vehicle type.
func (c *HTTPClient) Manufacturers(ctx context.Context, typeID int) ([]Manufacturer, error) {
	path := fmt.Sprintf("/manufacturers/list/lang-id/%d/country-filter-id/%d/type-id/%d",
		c.langID, c.countryID, typeID)
	var out struct {
		Manufacturers []Manufacturer `json:"manufacturers"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Manufacturers, nil
}

// Models lists model lines for a manufacturer.
func (c *HTTPClient) Models(ctx context.Context, manufacturerID, typeID int) ([]Model, error) {
	path := fmt.Sprintf("/models/list/manufacturer-id/%d/lang-id/%d/country-filter-id/%d/type-id/%d",
		manufacturerID, c.langID, c.countryID, typeID)
	var out struct {
		Models []Model `json:"models"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Models, nil
}

// Vehicles lists engine variants for a model.
func (c *HTTPClient) Vehicles(ctx context.Context, modelID, manufacturerID, typeID int) ([]Vehicle, error) {
	path := fmt.Sprintf("/types/list-vehicles-types/%d/manufacturer-id/%d/lang-id/%d/country-filter-id/%d/type-id/%d",
		modelID, manufacturerID, c.langID, c.countryID, typeID)
	var out struct {
		ModelTypes []Vehicle `json:"modelTypes"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.ModelTypes, nil
}

// Categories returns the hierarchical part-category tree for a vehicle.
func (c *HTTPClient) Categories(ctx context.Context, vehicleID, manufacturerID, typeID int) (map[string]*CategoryNode, error) {
	path := fmt.Sprintf("/category/category-products-groups-variant-3/%d/manufacturer-id/%d/lang-id/%d/country-filter-id/%d/type-id/%d",
		vehicleID, manufacturerID, c.langID, c.countryID, typeID)
	var out struct {
		Categories map[string]*CategoryNode `json:"categories"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Articles lists parts for a vehicle and product group.
func (c *HTTPClient) Articles(ctx context.Context, vehicleID, productGroupID, manufacturerID, typeID int) (*ArticleList, error) {
	path := fmt.Sprintf("/articles/list/vehicle-id/%d/product-group-id/%d/manufacturer-id/%d/lang-id/%d/country-filter-id/%d/type-id/%d",
		vehicleID, productGroupID, manufacturerID, c.langID, c.countryID, typeID)
	var out ArticleList
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
	}
	if c.apiHost != "" {
		req.Header.Set("X-RapidAPI-Host", c.apiHost)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("catalog request failed",
			"path", path,
			"status", resp.StatusCode,
			"body", string(body))
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return nil
}
