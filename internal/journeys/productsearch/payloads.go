// ABOUTME: Structured JSON payloads tunneled back to the rich client
// ABOUTME: Every payload carries a type tag the frontend dispatches on

package productsearch

import (
	"encoding/json"

	"github.com/repuai/parts-gateway/internal/catalog"
)

// Payload type tags.
const (
	payloadVehicleIDOptions  = "VEHICLE_ID_OPTIONS"
	payloadOpenVehicleModal  = "OPEN_VEHICLE_MODAL"
	payloadManufacturersData = "MANUFACTURERS_DATA"
	payloadModelsData        = "MODELS_DATA"
	payloadVehiclesData      = "VEHICLES_DATA"
	payloadOpenCategoryModal = "OPEN_CATEGORY_MODAL"
	payloadCategoriesData    = "CATEGORIES_DATA"
	payloadArticlesData      = "ARTICLES_DATA"
	payloadNoArticles        = "NO_ARTICLES"
	payloadNoInventory       = "NO_INVENTORY"
	payloadInventoryError    = "INVENTORY_ERROR"
	payloadError             = "ERROR"
)

// Button tokens the frontend sends back as plain text.
const (
	buttonVINLicense = "VIN_LICENSE_OPTION"
	buttonMakeModel  = "MAKE_MODEL_OPTION"
)

type optionButton struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Disabled bool   `json:"disabled"`
	Note     string `json:"note,omitempty"`
}

// inventoryInfo is the per-article inventory block joined onto a catalog
// article. Articles missing from inventory keep the zero values: not in
// stock, no price.
type inventoryInfo struct {
	InStock           bool     `json:"in_stock"`
	QuantityAvailable int      `json:"quantity_available"`
	PriceCOP          *float64 `json:"price_cop"`
	Currency          string   `json:"currency"`
	HasInventory      bool     `json:"has_inventory"`
	WarehouseLocation string   `json:"warehouse_location,omitempty"`
}

type enrichedArticle struct {
	catalog.Article
	Inventory inventoryInfo `json:"inventory"`
}

// render marshals a payload into the outgoing message string. Payloads are
// built from known types, so a marshal failure is a programming error; it
// degrades to an empty ERROR payload rather than panicking mid-turn.
func render(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return `{"type":"ERROR","message":""}`
	}
	return string(data)
}

// errorPayload is the structured error answer required by the sub-protocol.
func errorPayload(message string) string {
	return render(map[string]any{
		"type":    payloadError,
		"message": message,
	})
}

func (j *Journey) vehicleOptionsPayload(language string, vehicleTypes []catalog.VehicleType) string {
	payload := map[string]any{
		"type":    payloadVehicleIDOptions,
		"message": j.msgs.Get("vehicle_identification_prompt", language),
		"buttons": []optionButton{
			{
				ID:       buttonVINLicense,
				Text:     j.msgs.Get("vin_license_button", language),
				Disabled: true,
				Note:     j.msgs.Get("not_implemented_note", language),
			},
			{
				ID:   buttonMakeModel,
				Text: j.msgs.Get("make_model_button", language),
			},
		},
	}
	if vehicleTypes != nil {
		payload["vehicleTypes"] = vehicleTypes
	}
	return render(payload)
}
