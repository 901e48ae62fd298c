package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	context := map[string]interface{}{
		"input": map[string]interface{}{
			"ticket": "INC-42",
			"count":  float64(3),
		},
		"analysis": map[string]interface{}{
			"text":     "looks bad",
			"verified": true,
			"details":  map[string]interface{}{"severity": "high"},
			"hosts":    []interface{}{"web-1", "web-2"},
		},
	}

	t.Run("nil mapping selects whole context", func(t *testing.T) {
		projected := Project(context, nil)
		assert.Equal(t, context, projected)
	})

	t.Run("empty mapping projects empty input", func(t *testing.T) {
		projected := Project(context, map[string]interface{}{})
		assert.Empty(t, projected)
	})

	t.Run("substitutes values of any type", func(t *testing.T) {
		projected := Project(context, map[string]interface{}{
			"ticket":   "${input.ticket}",
			"count":    "${input.count}",
			"verified": "${analysis.verified}",
			"details":  "${analysis.details}",
			"hosts":    "${analysis.hosts}",
		})

		assert.Equal(t, "INC-42", projected["ticket"])
		assert.Equal(t, float64(3), projected["count"])
		assert.Equal(t, true, projected["verified"])
		assert.Equal(t, map[string]interface{}{"severity": "high"}, projected["details"])
		assert.Equal(t, []interface{}{"web-1", "web-2"}, projected["hosts"])
	})

	t.Run("missing reference resolves to nil", func(t *testing.T) {
		projected := Project(context, map[string]interface{}{
			"gone": "${analysis.nope.deeper}",
		})
		assert.Nil(t, projected["gone"])
	})

	t.Run("non-reference leaves pass through verbatim", func(t *testing.T) {
		projected := Project(context, map[string]interface{}{
			"label":    "plain text",
			"embedded": "ticket ${input.ticket} here",
			"number":   float64(9),
			"flag":     false,
		})

		assert.Equal(t, "plain text", projected["label"])
		assert.Equal(t, "ticket ${input.ticket} here", projected["embedded"])
		assert.Equal(t, float64(9), projected["number"])
		assert.Equal(t, false, projected["flag"])
	})

	t.Run("recurses through nested objects and arrays", func(t *testing.T) {
		projected := Project(context, map[string]interface{}{
			"report": map[string]interface{}{
				"summary": "${analysis.text}",
				"meta":    map[string]interface{}{"source": "${input.ticket}"},
			},
			"items": []interface{}{
				"${analysis.verified}",
				"literal",
				map[string]interface{}{"n": "${input.count}"},
			},
		})

		report := projected["report"].(map[string]interface{})
		assert.Equal(t, "looks bad", report["summary"])
		assert.Equal(t, "INC-42", report["meta"].(map[string]interface{})["source"])

		items := projected["items"].([]interface{})
		assert.Equal(t, true, items[0])
		assert.Equal(t, "literal", items[1])
		assert.Equal(t, float64(3), items[2].(map[string]interface{})["n"])
	})

	t.Run("idempotent once references are gone", func(t *testing.T) {
		once := Project(context, map[string]interface{}{
			"summary": "${analysis.text}",
			"nested":  map[string]interface{}{"hosts": "${analysis.hosts}"},
		})
		twice := Project(context, once)
		assert.Equal(t, once, twice)
	})
}
