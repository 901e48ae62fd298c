// Package projection renders step input mappings against an execution's
// context document.
package projection

import (
	"github.com/batonworks/baton/pkg/expr"
)

// Project builds a step input from its input mapping. A nil mapping selects
// the whole context. Otherwise every string leaf that is exactly a ${path}
// reference is replaced by the referenced value, which may be of any JSON
// type; a reference into missing data resolves to nil. All other leaves
// pass through verbatim
func Project(context map[string]interface{}, mapping map[string]interface{}) map[string]interface{} {
	if mapping == nil {
		return context
	}
	projected := make(map[string]interface{}, len(mapping))
	for key, value := range mapping {
		projected[key] = projectValue(context, value)
	}
	return projected
}

func projectValue(context map[string]interface{}, value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		if path, ok := expr.Reference(v); ok {
			return expr.ResolvePath(context, path)
		}
		return v
	case map[string]interface{}:
		nested := make(map[string]interface{}, len(v))
		for key, item := range v {
			nested[key] = projectValue(context, item)
		}
		return nested
	case []interface{}:
		items := make([]interface{}, len(v))
		for i, item := range v {
			items[i] = projectValue(context, item)
		}
		return items
	default:
		return v
	}
}
