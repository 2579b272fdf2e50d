// ABOUTME: Part-type selection handler: category tree and article listing
// ABOUTME: Joins catalog articles with inventory; missing records default to no stock

package productsearch

import (
	"context"

	"github.com/repuai/parts-gateway/internal/catalog"
	"github.com/repuai/parts-gateway/internal/command"
	"github.com/repuai/parts-gateway/internal/conversation"
)

func (j *Journey) processPartSelection(ctx context.Context, sess *conversation.Session, message string) (*conversation.Result, error) {
	language := sess.Context.Language

	cmd, isCommand, err := command.Parse(message)
	if isCommand {
		if err != nil {
			j.logger.Warn("malformed part command",
				"session_id", sess.ID,
				"kind", cmd.Kind,
				"error", err)
			return &conversation.Result{Response: errorPayload(j.msgs.Get("invalid_command", language))}, nil
		}
		switch cmd.Kind {
		case command.KindGetCategories:
			return j.handleCategoriesRequest(ctx, sess, cmd)
		case command.KindGetArticles:
			return j.handleArticlesRequest(ctx, sess, cmd)
		case command.KindCategorySelected:
			return j.handleCategorySelection(sess, cmd)
		}
		return &conversation.Result{Response: errorPayload(j.msgs.Get("invalid_command", language))}, nil
	}

	// Natural-language entry requires an identified vehicle; without one the
	// user is routed back to vehicle identification.
	vehicleID, okVehicle := sess.Context.Int("vehicle_id")
	manufacturerID, okManufacturer := sess.Context.Int("manufacturer_id")
	if !okVehicle || !okManufacturer {
		j.logger.Warn("missing vehicle context", "session_id", sess.ID)
		return &conversation.Result{
			Response:  j.msgs.Get("missing_vehicle_info", language),
			NextState: conversation.StateVehicleIdentification,
		}, nil
	}

	typeID := j.vehicleTypeID(sess)
	categories, err := j.catalog.Categories(ctx, vehicleID, manufacturerID, typeID)
	if err != nil {
		j.logger.Error("category fetch failed",
			"session_id", sess.ID,
			"vehicle_id", vehicleID,
			"error", err)
		return &conversation.Result{Response: j.msgs.Get("category_selection_error", language)}, nil
	}

	return &conversation.Result{
		Response: render(map[string]any{
			"type":           payloadOpenCategoryModal,
			"message":        j.msgs.Get("opening_category_selector", language),
			"vehicleId":      vehicleID,
			"manufacturerId": manufacturerID,
			"categoryLevels": j.categoryLevels,
			"categories":     catalog.TransformTree(categories),
		}),
	}, nil
}

func (j *Journey) handleCategoriesRequest(ctx context.Context, sess *conversation.Session, cmd *command.Command) (*conversation.Result, error) {
	language := sess.Context.Language

	categories, err := j.catalog.Categories(ctx, cmd.VehicleID, cmd.ManufacturerID, j.vehicleTypeID(sess))
	if err != nil {
		j.logger.Error("category fetch failed",
			"session_id", sess.ID,
			"vehicle_id", cmd.VehicleID,
			"error", err)
		return &conversation.Result{Response: errorPayload(j.msgs.Get("categories_error", language))}, nil
	}
	if len(categories) == 0 {
		j.logger.Warn("no categories for vehicle", "session_id", sess.ID, "vehicle_id", cmd.VehicleID)
		return &conversation.Result{Response: errorPayload(j.msgs.Get("no_categories_available", language))}, nil
	}

	return &conversation.Result{
		Response: render(map[string]any{
			"type": payloadCategoriesData,
			"data": map[string]any{
				"categories": catalog.TransformTree(categories),
			},
		}),
	}, nil
}

func (j *Journey) handleArticlesRequest(ctx context.Context, sess *conversation.Session, cmd *command.Command) (*conversation.Result, error) {
	language := sess.Context.Language

	list, err := j.catalog.Articles(ctx, cmd.VehicleID, cmd.ProductGroupID, cmd.ManufacturerID, j.vehicleTypeID(sess))
	if err != nil {
		j.logger.Error("article fetch failed",
			"session_id", sess.ID,
			"vehicle_id", cmd.VehicleID,
			"product_group_id", cmd.ProductGroupID,
			"error", err)
		return &conversation.Result{Response: errorPayload(j.msgs.Get("articles_error", language))}, nil
	}
	if len(list.Articles) == 0 || list.Count == 0 {
		return &conversation.Result{
			Response: render(map[string]any{
				"type":    payloadNoArticles,
				"message": j.msgs.Get("no_articles_found", language),
			}),
		}, nil
	}

	articles := list.Articles
	if len(articles) > j.maxArticles {
		articles = articles[:j.maxArticles]
	}
	articleIDs := make([]int64, len(articles))
	for i, a := range articles {
		articleIDs[i] = a.ID
	}

	records, err := j.inventory.ArticlesWithInventory(ctx, articleIDs)
	if err != nil {
		j.logger.Error("inventory lookup failed", "session_id", sess.ID, "error", err)
		// Degrade to the plain catalog listing rather than failing the turn.
		plain := make([]enrichedArticle, len(articles))
		for i, a := range articles {
			plain[i] = enrichedArticle{Article: a, Inventory: inventoryInfo{Currency: "COP"}}
		}
		return &conversation.Result{
			Response: render(map[string]any{
				"type":     payloadInventoryError,
				"message":  j.msgs.Get("inventory_check_error", language),
				"articles": plain,
			}),
		}, nil
	}

	byArticle := make(map[int64]inventoryInfo, len(records))
	hasAnyInventory := false
	for _, rec := range records {
		byArticle[rec.ArticleID] = inventoryInfo{
			InStock:           rec.InStock,
			QuantityAvailable: rec.QuantityAvailable,
			PriceCOP:          rec.PriceCOP,
			Currency:          rec.Currency,
			HasInventory:      rec.HasInventory,
			WarehouseLocation: rec.WarehouseLocation,
		}
		if rec.HasInventory {
			hasAnyInventory = true
		}
	}

	enriched := make([]enrichedArticle, len(articles))
	for i, a := range articles {
		info, ok := byArticle[a.ID]
		if !ok {
			info = inventoryInfo{Currency: "COP"}
		}
		enriched[i] = enrichedArticle{Article: a, Inventory: info}
	}

	if !hasAnyInventory {
		j.logger.Warn("no inventory for product group",
			"session_id", sess.ID,
			"product_group_id", cmd.ProductGroupID)
		return &conversation.Result{
			Response: render(map[string]any{
				"type":     payloadNoInventory,
				"message":  j.msgs.Get("no_stock_available", language),
				"articles": enriched,
			}),
		}, nil
	}

	return &conversation.Result{
		Response: render(map[string]any{
			"type": payloadArticlesData,
			"data": map[string]any{
				"articles":       enriched,
				"totalCount":     list.Count,
				"vehicleId":      cmd.VehicleID,
				"productGroupId": cmd.ProductGroupID,
				"hasInventory":   true,
			},
		}),
		Patch: conversation.Patch{
			"selected_category_id": cmd.ProductGroupID,
			"filtered_article_ids": articleIDs,
		},
	}, nil
}

func (j *Journey) handleCategorySelection(sess *conversation.Session, cmd *command.Command) (*conversation.Result, error) {
	language := sess.Context.Language
	sel := cmd.Category

	response := j.msgs.Format("category_selected", language, sel.CategoryName) +
		"\n\n" + j.msgs.Get("proceed_to_inventory", language)

	return &conversation.Result{
		Response:  response,
		NextState: conversation.StateProductPresentation,
		Patch: conversation.Patch{
			"selected_category_path": sel.Path,
			"selected_category_id":   sel.CategoryID,
			"selected_category_name": sel.CategoryName,
			"selected_articles":      sel.Articles,
		},
	}, nil
}

// vehicleTypeID reads the vehicle type slot, defaulting to passenger cars.
func (j *Journey) vehicleTypeID(sess *conversation.Session) int {
	if id, ok := sess.Context.Int("vehicle_type_id"); ok {
		return id
	}
	return 1
}
