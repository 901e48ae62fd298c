package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	doc := map[string]interface{}{
		"analysis": map[string]interface{}{
			"text":  "skip",
			"score": float64(7),
			"inner": map[string]interface{}{"deep": true},
		},
		"plain": "value",
	}

	tests := []struct {
		name     string
		path     string
		expected interface{}
	}{
		{"top level", "plain", "value"},
		{"nested", "analysis.text", "skip"},
		{"deeply nested", "analysis.inner.deep", true},
		{"missing key", "nope", nil},
		{"missing nested key", "analysis.nope", nil},
		{"through non-object", "plain.deeper", nil},
		{"through missing branch", "nope.deeper.still", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolvePath(doc, tt.path))
		})
	}

	t.Run("nil document", func(t *testing.T) {
		assert.Nil(t, ResolvePath(nil, "anything"))
	})
}

func TestEvaluateBool(t *testing.T) {
	doc := map[string]interface{}{
		"a": map[string]interface{}{
			"text":  "skip",
			"count": float64(5),
			"flag":  true,
			"off":   false,
			"empty": "",
			"zero":  float64(0),
			"obj":   map[string]interface{}{},
			"list":  []interface{}{},
		},
	}

	tests := []struct {
		name     string
		expr     string
		expected bool
		wantErr  bool
	}{
		{"equality match", "${a.text}==skip", true, false},
		{"equality mismatch", "${a.text}==proceed", false, false},
		{"equality with spaces", "${a.text} == skip", true, false},
		{"inequality match", "${a.text}!=proceed", true, false},
		{"inequality mismatch", "${a.text}!=skip", false, false},
		{"number against literal", "${a.count}==5", true, false},
		{"number mismatch", "${a.count}==6", false, false},
		{"boolean against literal", "${a.flag}==true", true, false},
		{"two references equal", "${a.text}==${a.text}", true, false},
		{"null left operand equality", "${a.missing}==skip", false, false},
		{"null left operand inequality", "${a.missing}!=skip", false, false},
		{"null right operand", "${a.text}==${a.missing}", false, false},
		{"both operands null", "${a.missing}==${a.gone}", false, false},
		{"bare reference string", "${a.text}", true, false},
		{"bare reference empty string", "${a.empty}", false, false},
		{"bare reference true", "${a.flag}", true, false},
		{"bare reference false", "${a.off}", false, false},
		{"bare reference zero", "${a.zero}", true, false},
		{"bare reference empty object", "${a.obj}", true, false},
		{"bare reference empty list", "${a.list}", true, false},
		{"bare reference missing", "${a.missing}", false, false},
		{"negated bare reference", "!${a.off}", true, false},
		{"negated missing reference", "!${a.missing}", true, false},
		{"negation covers whole comparison", "!${a.text}==skip", false, false},
		{"negated mismatch comparison", "!${a.text}==proceed", true, false},
		{"unrecognized expression", "just words", false, true},
		{"empty expression", "", false, true},
		{"negated unrecognized expression", "!garbage", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EvaluateBool(doc, tt.expr)
			assert.Equal(t, tt.expected, result)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEvaluateBoolIsPure(t *testing.T) {
	doc := map[string]interface{}{
		"a": map[string]interface{}{"text": "skip"},
	}

	first, firstErr := EvaluateBool(doc, "${a.text}==skip")
	for i := 0; i < 10; i++ {
		again, againErr := EvaluateBool(doc, "${a.text}==skip")
		assert.Equal(t, first, again)
		assert.Equal(t, firstErr, againErr)
	}

	// Evaluation never mutates the document
	assert.Equal(t, "skip", doc["a"].(map[string]interface{})["text"])
}
