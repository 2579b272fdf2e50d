// ABOUTME: Catalog collaborator types and the Client interface consumed by journeys
// ABOUTME: The catalog is a read-only black box keyed by integer identifiers

package catalog

import (
	"context"
	"errors"
)

// ErrUnavailable wraps every transport-level catalog failure so handlers can
// recover with a localized error payload instead of propagating.
var ErrUnavailable = errors.New("catalog unavailable")

// VehicleType is a top-level vehicle class (car, truck, motorcycle).
type VehicleType struct {
	ID   int    `json:"id"`
	Name string `json:"vehicleType"`
}

// Manufacturer is a vehicle brand.
type Manufacturer struct {
	ID    int    `json:"manufacturerId"`
	Brand string `json:"brand"`
}

// Model is one model line of a manufacturer.
type Model struct {
	ID       int    `json:"modelId"`
	Name     string `json:"modelName"`
	YearFrom string `json:"modelYearFrom"`
	YearTo   string `json:"modelYearTo"`
}

// Vehicle is a concrete engine variant of a model.
type Vehicle struct {
	ID                        int    `json:"vehicleId"`
	ManufacturerName          string `json:"manufacturerName"`
	ModelName                 string `json:"modelName"`
	TypeEngineName            string `json:"typeEngineName"`
	ConstructionIntervalStart string `json:"constructionIntervalStart"`
	ConstructionIntervalEnd   string `json:"constructionIntervalEnd"`
	PowerKW                   string `json:"powerKw"`
	PowerPS                   string `json:"powerPs"`
	FuelType                  string `json:"fuelType"`
	BodyType                  string `json:"bodyType"`
	NumberOfCylinders         int    `json:"numberOfCylinders"`
	CapacityLt                string `json:"capacityLt"`
}

// CategoryNode is one node of the hierarchical part-category tree as the
// catalog returns it. Leaf nodes have an empty children map.
type CategoryNode struct {
	Text     string                   `json:"text"`
	Children map[string]*CategoryNode `json:"children"`
}

// Article is one part offered for a vehicle and product group.
type Article struct {
	ID           int64  `json:"articleId"`
	ArticleNo    string `json:"articleNo"`
	SupplierName string `json:"supplierName"`
	ProductName  string `json:"articleProductName"`
}

// ArticleList is a page of articles for one vehicle and product group.
type ArticleList struct {
	Articles       []Article `json:"articles"`
	Count          int       `json:"countArticles"`
	VehicleID      int       `json:"vehicleId"`
	ProductGroupID int       `json:"productGroupId"`
}

// Client is the read-only catalog lookup contract. Implementations must bound
// every call with a timeout; a timeout surfaces as an error, never as a hang.
type Client interface {
	VehicleTypes(ctx context.Context) ([]VehicleType, error)
	Manufacturers(ctx context.Context, typeID int) ([]Manufacturer, error)
	Models(ctx context.Context, manufacturerID, typeID int) ([]Model, error)
	Vehicles(ctx context.Context, modelID, manufacturerID, typeID int) ([]Vehicle, error)
	Categories(ctx context.Context, vehicleID, manufacturerID, typeID int) (map[string]*CategoryNode, error)
	Articles(ctx context.Context, vehicleID, productGroupID, manufacturerID, typeID int) (*ArticleList, error)
}
