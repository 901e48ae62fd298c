// Package expr evaluates the condition expressions attached to workflow
// steps against an execution's context document.
//
// The grammar is deliberately tiny: dotted ${path} references, bare string
// literals, == and != compared by JSON string form, and a leading !
// negation. Evaluation is pure and never fails; forms the grammar does not
// recognize evaluate to false and return a diagnostic for the caller to log.
package expr

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches a whole-token ${path} reference
var placeholderPattern = regexp.MustCompile(`^\$\{([^}]+)\}$`)

// Reference reports whether s is exactly a ${path} reference, returning
// the inner path when it is
func Reference(s string) (string, bool) {
	if m := placeholderPattern.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	return "", false
}

// ResolvePath looks up a dotted path in a nested document. A missing key or
// a non-object intermediate segment resolves to nil
func ResolvePath(doc map[string]interface{}, path string) interface{} {
	var current interface{} = doc
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = obj[segment]
		if !ok {
			return nil
		}
	}
	return current
}

// EvaluateBool evaluates a condition expression to its boolean value. The
// error return is diagnostic only: the boolean is always usable, and
// unrecognized expressions evaluate to false
func EvaluateBool(doc map[string]interface{}, expression string) (bool, error) {
	expr := strings.TrimSpace(expression)
	if expr == "" {
		return false, fmt.Errorf("empty condition expression")
	}

	// Leading negation flips the rest; != at position zero is an operator
	if strings.HasPrefix(expr, "!") && !strings.HasPrefix(expr, "!=") {
		value, err := EvaluateBool(doc, expr[1:])
		return !value, err
	}

	if op, left, right, ok := splitComparison(expr); ok {
		lv := resolveOperand(doc, left)
		rv := resolveOperand(doc, right)
		// A null operand defeats both comparison forms
		if lv == nil || rv == nil {
			return false, nil
		}
		equal := stringForm(lv) == stringForm(rv)
		if op == "==" {
			return equal, nil
		}
		return !equal, nil
	}

	if path, ok := Reference(expr); ok {
		return truthy(ResolvePath(doc, path)), nil
	}

	return false, fmt.Errorf("unrecognized condition expression %q", expression)
}

// splitComparison splits on the first == or != operator, whichever comes
// earlier
func splitComparison(expr string) (op, left, right string, ok bool) {
	eq := strings.Index(expr, "==")
	ne := strings.Index(expr, "!=")
	switch {
	case eq < 0 && ne < 0:
		return "", "", "", false
	case ne < 0 || (eq >= 0 && eq < ne):
		return "==", strings.TrimSpace(expr[:eq]), strings.TrimSpace(expr[eq+2:]), true
	default:
		return "!=", strings.TrimSpace(expr[:ne]), strings.TrimSpace(expr[ne+2:]), true
	}
}

// resolveOperand resolves a comparison operand: a ${path} reference reads
// the document, anything else is itself as a string literal
func resolveOperand(doc map[string]interface{}, token string) interface{} {
	if path, ok := Reference(token); ok {
		return ResolvePath(doc, path)
	}
	return token
}

// stringForm renders a value the way it prints inside JSON text, so the
// literal 5 compares equal to the number 5 and true to boolean true.
// Strings are taken raw, without quoting
func stringForm(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// truthy follows the bare-reference convention: present, non-empty when a
// string, and not boolean false
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	default:
		return true
	}
}
