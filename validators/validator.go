// Package validators checks request payloads and query parameters, returning either a typed
// value or the list of field issues that made it invalid.
package validators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// fieldMessage renders a validator failure the way clients expect to read it.
func fieldMessage(fe validator.FieldError) string {
	numeric := isNumericKind(fe.Kind())
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		if numeric {
			return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
		}
		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max":
		if numeric {
			return fmt.Sprintf("Number must be less than or equal to %s", fe.Param())
		}
		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case "email":
		return "Invalid email address"
	case "uuid":
		return "Invalid uuid"
	default:
		return fmt.Sprintf("Invalid value (%s)", fe.Tag())
	}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// structIssues runs the tag rules on v and returns one issue per failing field, keyed by the
// field's json name.
func structIssues(v any) map[string]Issue {
	out := make(map[string]Issue)
	err := getValidator().Struct(v)
	if err == nil {
		return out
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out[""] = Issue{Path: []any{}, Message: err.Error()}
		return out
	}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = Issue{Path: []any{fe.Field()}, Message: fieldMessage(fe)}
	}
	return out
}

// jsonKind names the JSON type of a raw value.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "undefined"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// decodeObject parses raw as a JSON object. A syntax error or a non-object value yields a
// single issue on the empty path.
func decodeObject(raw []byte) (map[string]json.RawMessage, []Issue) {
	if !json.Valid(raw) {
		return nil, []Issue{{Path: []any{}, Message: "Malformed JSON"}}
	}
	if kind := jsonKind(raw); kind != "object" {
		return nil, []Issue{{Path: []any{}, Message: fmt.Sprintf("Expected object, received %s", kind)}}
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, []Issue{{Path: []any{}, Message: "Malformed JSON"}}
	}
	return obj, nil
}

// field describes one member of a payload: its json name, the expected JSON type and where
// to decode it.
type field struct {
	name     string
	expected string
	dest     any
}

// decodeFields decodes each present field into its destination. A value of the wrong JSON
// type (null included) produces a type issue and leaves the destination nil.
func decodeFields(obj map[string]json.RawMessage, fields []field) map[string]Issue {
	typeIssues := make(map[string]Issue)
	for _, f := range fields {
		raw, ok := obj[f.name]
		if !ok {
			continue
		}
		if got := jsonKind(raw); got != f.expected {
			typeIssues[f.name] = Issue{
				Path:    []any{f.name},
				Message: fmt.Sprintf("Expected %s, received %s", f.expected, got),
			}
			continue
		}
		if err := json.Unmarshal(raw, f.dest); err != nil {
			typeIssues[f.name] = Issue{Path: []any{f.name}, Message: err.Error()}
		}
	}
	return typeIssues
}

// collect merges type and rule issues in field declaration order. A field with a type issue
// reports only that.
func collect(fields []field, typeIssues, ruleIssues map[string]Issue) []Issue {
	var issues []Issue
	for _, f := range fields {
		if issue, ok := typeIssues[f.name]; ok {
			issues = append(issues, issue)
			continue
		}
		if issue, ok := ruleIssues[f.name]; ok {
			issues = append(issues, issue)
		}
	}
	return issues
}
