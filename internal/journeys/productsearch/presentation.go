// ABOUTME: Product presentation handler summarizing the selected category
// ABOUTME: Offers the way back to the main menu after a completed selection

package productsearch

import (
	"strings"

	"github.com/repuai/parts-gateway/internal/conversation"
)

func (j *Journey) processPresentation(sess *conversation.Session, message string) (*conversation.Result, error) {
	language := sess.Context.Language

	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "menu" || lowered == "menú" {
		return &conversation.Result{
			Response:  j.msgs.Get("menu", language),
			NextState: conversation.StateIntentMenu,
		}, nil
	}

	categoryName, _ := sess.Context.String("selected_category_name")
	if categoryName == "" {
		categoryName, _ = sess.Context.String("selected_category_path")
	}
	articleCount := 0
	if v, ok := sess.Context.Extra["selected_articles"]; ok {
		switch list := v.(type) {
		case []int64:
			articleCount = len(list)
		case []any:
			articleCount = len(list)
		}
	}

	return &conversation.Result{
		Response: j.msgs.Format("presentation_summary", language, categoryName, articleCount),
	}, nil
}
