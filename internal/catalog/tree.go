// ABOUTME: Stable recursive transform of the raw category tree into the frontend form
// ABOUTME: Each node keeps id, name and children; leaves keep an empty children map

package catalog

import "strconv"

// TreeNode is the frontend-consumable category node.
type TreeNode struct {
	CategoryID   int                  `json:"categoryId"`
	CategoryName string               `json:"categoryName"`
	Text         string               `json:"text"`
	Level        int                  `json:"level"`
	Children     map[string]*TreeNode `json:"children"`
}

// TransformTree converts the raw catalog tree into frontend nodes. The map
// key doubles as the category id; nodes whose key is not numeric keep id 0.
func TransformTree(categories map[string]*CategoryNode) map[string]*TreeNode {
	return transformLevel(categories, 1)
}

func transformLevel(categories map[string]*CategoryNode, level int) map[string]*TreeNode {
	out := make(map[string]*TreeNode, len(categories))
	for key, node := range categories {
		if node == nil {
			continue
		}
		id, _ := strconv.Atoi(key)
		t := &TreeNode{
			CategoryID:   id,
			CategoryName: node.Text,
			Text:         node.Text,
			Level:        level,
			Children:     map[string]*TreeNode{},
		}
		if len(node.Children) > 0 {
			t.Children = transformLevel(node.Children, level+1)
		}
		out[key] = t
	}
	return out
}
