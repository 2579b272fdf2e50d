// ABOUTME: Embedded client sub-protocol parsed out of the free-text message field
// ABOUTME: Parse returns command-or-freetext before any natural-language handling

package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind names a recognized sub-protocol command. Prefixes are case-sensitive.
type Kind string

const (
	KindGetCategories    Kind = "GET_CATEGORIES"
	KindGetArticles      Kind = "GET_ARTICLES"
	KindCategorySelected Kind = "CATEGORY_SELECTED"
	KindVehicleSelected  Kind = "VEHICLE_SELECTED"
	KindGetManufacturers Kind = "GET_MANUFACTURERS"
	KindGetModels        Kind = "GET_MODELS"
	KindGetVehicles      Kind = "GET_VEHICLES"
)

// ErrMalformed is wrapped by every argument-level parse failure. A malformed
// command is still a command: handlers answer it with an ERROR payload
// instead of treating the text as natural language.
var ErrMalformed = errors.New("malformed command")

// VehicleSelection is the payload of VEHICLE_SELECTED.
type VehicleSelection struct {
	VehicleTypeID    int    `json:"vehicle_type_id"`
	ManufacturerID   int    `json:"manufacturer_id"`
	ModelID          int    `json:"model_id"`
	VehicleID        int    `json:"vehicle_id"`
	ManufacturerName string `json:"manufacturer_name"`
	ModelName        string `json:"model_name"`
	Year             string `json:"year"`
}

// CategorySelection is the payload of CATEGORY_SELECTED.
type CategorySelection struct {
	Path         string  `json:"path"`
	CategoryID   int     `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Articles     []int64 `json:"articles"`
}

// Command is one parsed sub-protocol turn. Only the fields matching the Kind
// are populated.
type Command struct {
	Kind Kind

	VehicleID      int
	ManufacturerID int
	ModelID        int
	TypeID         int
	ProductGroupID int

	Vehicle  *VehicleSelection
	Category *CategorySelection
}

// Parse splits the inbound message into command-or-freetext. ok is false when
// the text carries no recognized prefix and should flow to the state's
// natural-language handling. A recognized prefix with bad arguments returns
// ok=true together with an error wrapping ErrMalformed.
func Parse(text string) (cmd *Command, ok bool, err error) {
	prefix, rest, found := strings.Cut(text, ":")
	if !found {
		return nil, false, nil
	}

	switch Kind(prefix) {
	case KindGetCategories:
		args, err := intArgs(rest, 2)
		if err != nil {
			return &Command{Kind: KindGetCategories}, true, err
		}
		return &Command{Kind: KindGetCategories, VehicleID: args[0], ManufacturerID: args[1]}, true, nil

	case KindGetArticles:
		args, err := intArgs(rest, 3)
		if err != nil {
			return &Command{Kind: KindGetArticles}, true, err
		}
		return &Command{Kind: KindGetArticles, VehicleID: args[0], ProductGroupID: args[1], ManufacturerID: args[2]}, true, nil

	case KindGetManufacturers:
		args, err := intArgs(rest, 1)
		if err != nil {
			return &Command{Kind: KindGetManufacturers}, true, err
		}
		return &Command{Kind: KindGetManufacturers, TypeID: args[0]}, true, nil

	case KindGetModels:
		args, err := intArgs(rest, 2)
		if err != nil {
			return &Command{Kind: KindGetModels}, true, err
		}
		return &Command{Kind: KindGetModels, ManufacturerID: args[0], TypeID: args[1]}, true, nil

	case KindGetVehicles:
		args, err := intArgs(rest, 3)
		if err != nil {
			return &Command{Kind: KindGetVehicles}, true, err
		}
		return &Command{Kind: KindGetVehicles, ModelID: args[0], ManufacturerID: args[1], TypeID: args[2]}, true, nil

	case KindVehicleSelected:
		var sel VehicleSelection
		if err := json.Unmarshal([]byte(rest), &sel); err != nil {
			return &Command{Kind: KindVehicleSelected}, true, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return &Command{Kind: KindVehicleSelected, Vehicle: &sel}, true, nil

	case KindCategorySelected:
		var sel CategorySelection
		if err := json.Unmarshal([]byte(rest), &sel); err != nil {
			return &Command{Kind: KindCategorySelected}, true, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return &Command{Kind: KindCategorySelected, Category: &sel}, true, nil
	}

	return nil, false, nil
}

// intArgs parses a colon-delimited list of exactly n integers.
func intArgs(rest string, n int) ([]int, error) {
	parts := strings.Split(rest, ":")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", ErrMalformed, n, len(parts))
	}
	args := make([]int, n)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d is not an integer", ErrMalformed, i+1)
		}
		args[i] = v
	}
	return args, nil
}
