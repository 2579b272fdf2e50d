// ABOUTME: Tests for the embedded sub-protocol parser
// ABOUTME: Covers command recognition, argument parsing and malformed inputs

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FreeText(t *testing.T) {
	for _, input := range []string{
		"hola",
		"quiero pastillas de freno",
		"hola: mundo", // unknown prefix, not a command
		"get_categories:1:2",
	} {
		cmd, ok, err := Parse(input)
		assert.False(t, ok, "input %q", input)
		assert.Nil(t, cmd, "input %q", input)
		assert.NoError(t, err, "input %q", input)
	}
}

func TestParse_GetCategories(t *testing.T) {
	cmd, ok, err := Parse("GET_CATEGORIES:9877:72")
	require.True(t, ok)
	require.NoError(t, err)

	assert.Equal(t, KindGetCategories, cmd.Kind)
	assert.Equal(t, 9877, cmd.VehicleID)
	assert.Equal(t, 72, cmd.ManufacturerID)
}

func TestParse_GetArticles(t *testing.T) {
	cmd, ok, err := Parse("GET_ARTICLES:9877:100806:72")
	require.True(t, ok)
	require.NoError(t, err)

	assert.Equal(t, KindGetArticles, cmd.Kind)
	assert.Equal(t, 9877, cmd.VehicleID)
	assert.Equal(t, 100806, cmd.ProductGroupID)
	assert.Equal(t, 72, cmd.ManufacturerID)
}

func TestParse_VehicleListCommands(t *testing.T) {
	cmd, ok, err := Parse("GET_MANUFACTURERS:1")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, KindGetManufacturers, cmd.Kind)
	assert.Equal(t, 1, cmd.TypeID)

	cmd, ok, err = Parse("GET_MODELS:72:1")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, KindGetModels, cmd.Kind)
	assert.Equal(t, 72, cmd.ManufacturerID)
	assert.Equal(t, 1, cmd.TypeID)

	cmd, ok, err = Parse("GET_VEHICLES:1484:72:1")
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, KindGetVehicles, cmd.Kind)
	assert.Equal(t, 1484, cmd.ModelID)
	assert.Equal(t, 72, cmd.ManufacturerID)
	assert.Equal(t, 1, cmd.TypeID)
}

func TestParse_VehicleSelected(t *testing.T) {
	input := `VEHICLE_SELECTED:{"vehicle_type_id":1,"manufacturer_id":72,"model_id":1484,"vehicle_id":9877,"manufacturer_name":"Toyota","model_name":"Corolla","year":"2018"}`

	cmd, ok, err := Parse(input)
	require.True(t, ok)
	require.NoError(t, err)

	assert.Equal(t, KindVehicleSelected, cmd.Kind)
	require.NotNil(t, cmd.Vehicle)
	assert.Equal(t, 1, cmd.Vehicle.VehicleTypeID)
	assert.Equal(t, 72, cmd.Vehicle.ManufacturerID)
	assert.Equal(t, 1484, cmd.Vehicle.ModelID)
	assert.Equal(t, 9877, cmd.Vehicle.VehicleID)
	assert.Equal(t, "Toyota", cmd.Vehicle.ManufacturerName)
	assert.Equal(t, "Corolla", cmd.Vehicle.ModelName)
	assert.Equal(t, "2018", cmd.Vehicle.Year)
}

func TestParse_CategorySelected(t *testing.T) {
	input := `CATEGORY_SELECTED:{"path":"Frenos > Pastillas","category_id":100806,"category_name":"Pastillas de freno","articles":[1129109,1129110]}`

	cmd, ok, err := Parse(input)
	require.True(t, ok)
	require.NoError(t, err)

	assert.Equal(t, KindCategorySelected, cmd.Kind)
	require.NotNil(t, cmd.Category)
	assert.Equal(t, "Frenos > Pastillas", cmd.Category.Path)
	assert.Equal(t, 100806, cmd.Category.CategoryID)
	assert.Equal(t, "Pastillas de freno", cmd.Category.CategoryName)
	assert.Equal(t, []int64{1129109, 1129110}, cmd.Category.Articles)
}

func TestParse_MalformedIsStillACommand(t *testing.T) {
	tests := []string{
		"GET_CATEGORIES:abc:1",
		"GET_CATEGORIES:1",
		"GET_ARTICLES:1:2",
		"GET_ARTICLES:1:2:3:4",
		"GET_MANUFACTURERS:one",
		"VEHICLE_SELECTED:not-json",
		"CATEGORY_SELECTED:[1,2]",
	}

	for _, input := range tests {
		cmd, ok, err := Parse(input)
		assert.True(t, ok, "input %q", input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", input)
		require.NotNil(t, cmd, "input %q", input)
		assert.NotEmpty(t, cmd.Kind, "input %q", input)
	}
}
