// ABOUTME: Init and vehicle-identification handlers of the product search journey
// ABOUTME: Dispatches embedded sub-commands for vehicle, manufacturer and model lists

package productsearch

import (
	"context"

	"github.com/repuai/parts-gateway/internal/command"
	"github.com/repuai/parts-gateway/internal/conversation"
)

// processInit advances straight into vehicle identification, pre-fetching the
// vehicle-type choices so the entry payload is immediately selectable.
func (j *Journey) processInit(ctx context.Context, sess *conversation.Session) (*conversation.Result, error) {
	language := sess.Context.Language

	vehicleTypes, err := j.catalog.VehicleTypes(ctx)
	if err != nil {
		j.logger.Error("vehicle type prefetch failed", "session_id", sess.ID, "error", err)
		// Transition anyway; the client can re-request the lists in the
		// vehicle identification state.
		return &conversation.Result{
			Response:  errorPayload(j.msgs.Get("vehicle_selection_error", language)),
			NextState: conversation.StateVehicleIdentification,
		}, nil
	}

	return &conversation.Result{
		Response:  j.vehicleOptionsPayload(language, vehicleTypes),
		NextState: conversation.StateVehicleIdentification,
	}, nil
}

func (j *Journey) processVehicleIdentification(ctx context.Context, sess *conversation.Session, message string) (*conversation.Result, error) {
	language := sess.Context.Language

	cmd, isCommand, err := command.Parse(message)
	if isCommand {
		if err != nil {
			j.logger.Warn("malformed vehicle command",
				"session_id", sess.ID,
				"kind", cmd.Kind,
				"error", err)
			return &conversation.Result{Response: errorPayload(j.msgs.Get("invalid_command", language))}, nil
		}
		return j.handleVehicleCommand(ctx, sess, cmd)
	}

	switch message {
	case buttonVINLicense:
		return &conversation.Result{Response: j.msgs.Get("vin_not_implemented", language)}, nil
	case buttonMakeModel:
		vehicleTypes, err := j.catalog.VehicleTypes(ctx)
		if err != nil {
			j.logger.Error("vehicle types fetch failed", "session_id", sess.ID, "error", err)
			return &conversation.Result{Response: j.msgs.Get("vehicle_selection_error", language)}, nil
		}
		return &conversation.Result{
			Response: render(map[string]any{
				"type":         payloadOpenVehicleModal,
				"message":      j.msgs.Get("opening_vehicle_selector", language),
				"vehicleTypes": vehicleTypes,
			}),
		}, nil
	}

	// Free-form text re-presents the identification options; the raw text is
	// kept as a slot for later diagnosis of failed identifications.
	return &conversation.Result{
		Response: j.vehicleOptionsPayload(language, nil),
		Patch:    conversation.Patch{"vehicle_raw_text": message},
	}, nil
}

func (j *Journey) handleVehicleCommand(ctx context.Context, sess *conversation.Session, cmd *command.Command) (*conversation.Result, error) {
	language := sess.Context.Language

	switch cmd.Kind {
	case command.KindVehicleSelected:
		sel := cmd.Vehicle
		patch := conversation.Patch{
			"vehicle_type_id": sel.VehicleTypeID,
			"manufacturer_id": sel.ManufacturerID,
			"model_id":        sel.ModelID,
			"vehicle_id":      sel.VehicleID,
			"vehicle_make":    sel.ManufacturerName,
			"vehicle_model":   sel.ModelName,
			"vehicle_year":    sel.Year,
		}
		response := j.msgs.Format("vehicle_selected", language, sel.ManufacturerName, sel.ModelName, sel.Year) +
			"\n\n" + j.msgs.Get("proceed_to_parts", language)
		return &conversation.Result{
			Response:  response,
			NextState: conversation.StatePartTypeSelection,
			Patch:     patch,
		}, nil

	case command.KindGetManufacturers:
		manufacturers, err := j.catalog.Manufacturers(ctx, cmd.TypeID)
		if err != nil {
			j.logger.Error("manufacturers fetch failed", "session_id", sess.ID, "error", err)
			return &conversation.Result{Response: errorPayload(j.msgs.Get("manufacturers_error", language))}, nil
		}
		return &conversation.Result{
			Response: render(map[string]any{"type": payloadManufacturersData, "data": manufacturers}),
		}, nil

	case command.KindGetModels:
		models, err := j.catalog.Models(ctx, cmd.ManufacturerID, cmd.TypeID)
		if err != nil {
			j.logger.Error("models fetch failed", "session_id", sess.ID, "error", err)
			return &conversation.Result{Response: errorPayload(j.msgs.Get("models_error", language))}, nil
		}
		return &conversation.Result{
			Response: render(map[string]any{"type": payloadModelsData, "data": models}),
		}, nil

	case command.KindGetVehicles:
		vehicles, err := j.catalog.Vehicles(ctx, cmd.ModelID, cmd.ManufacturerID, cmd.TypeID)
		if err != nil {
			j.logger.Error("vehicles fetch failed", "session_id", sess.ID, "error", err)
			return &conversation.Result{Response: errorPayload(j.msgs.Get("vehicles_error", language))}, nil
		}
		return &conversation.Result{
			Response: render(map[string]any{"type": payloadVehiclesData, "data": vehicles}),
		}, nil
	}

	// A part-selection command arriving in the vehicle state is out of order.
	return &conversation.Result{Response: errorPayload(j.msgs.Get("invalid_command", language))}, nil
}
