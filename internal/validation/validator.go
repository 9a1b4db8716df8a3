// internal/validation/validator.go
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/saree-sanctuary/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Constraint names reported in Error.Constraint besides validator tags.
const (
	ConstraintRequired = "required"
	ConstraintString   = "type=string"
	ConstraintInteger  = "type=integer"
	ConstraintBoolean  = "type=boolean"
	ConstraintList     = "type=array"
	ConstraintObject   = "type=object"
	ConstraintExists   = "exists"
)

// Error reports the first schema violation of a payload.
type Error struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Constraint)
}

// Message is a human readable form of the violation.
func (e *Error) Message() string {
	name, param, _ := strings.Cut(e.Constraint, "=")
	switch name {
	case "required":
		return e.Field + " is required"
	case "type":
		return e.Field + " must be of type " + param
	case "gte":
		return e.Field + " must be greater than or equal to " + param
	case "lte":
		return e.Field + " must be less than or equal to " + param
	case "oneof":
		return e.Field + " must be one of: " + strings.ReplaceAll(param, " ", ", ")
	case "http_url":
		return e.Field + " must be a valid http(s) URL"
	case "exists":
		return e.Field + " does not reference an existing record"
	default:
		return e.Field + " is invalid"
	}
}

// AsError unwraps err into a validation error.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var ErrUnknownKind = errors.New("validation: unknown entity kind")

// Validate checks payload against the field table of kind and returns the document to
// persist: known fields only, values coerced to their declared types and defaults filled in.
func Validate(kind models.Kind, payload map[string]interface{}) (models.Document, error) {
	fields, ok := models.FieldsOf(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return validateObject(fields, payload, "")
}

func validateObject(fields []models.Field, payload map[string]interface{}, prefix string) (models.Document, error) {
	doc := make(models.Document, len(fields))
	for _, f := range fields {
		path := prefix + f.Name

		raw, present := payload[f.Name]
		if !present || raw == nil {
			if f.Required {
				return nil, &Error{Field: path, Constraint: ConstraintRequired}
			}
			// fields carrying a default are not nullable
			if present && f.Default != nil {
				return nil, &Error{Field: path, Constraint: typeConstraint(f.Type)}
			}
			doc[f.Name] = defaultValue(f)
			continue
		}

		value, err := coerce(f, raw, path)
		if err != nil {
			return nil, err
		}
		if err := checkRules(f, value, path); err != nil {
			return nil, err
		}
		doc[f.Name] = value
	}
	return doc, nil
}

func defaultValue(f models.Field) interface{} {
	if list, ok := f.Default.([]string); ok {
		return append([]string{}, list...)
	}
	return f.Default
}

func typeConstraint(t models.FieldType) string {
	switch t {
	case models.FieldInteger:
		return ConstraintInteger
	case models.FieldBoolean:
		return ConstraintBoolean
	case models.FieldURLList, models.FieldOrderItems:
		return ConstraintList
	default:
		return ConstraintString
	}
}

func coerce(f models.Field, raw interface{}, path string) (interface{}, error) {
	switch f.Type {
	case models.FieldString:
		s, ok := raw.(string)
		if !ok {
			return nil, &Error{Field: path, Constraint: ConstraintString}
		}
		return s, nil
	case models.FieldInteger:
		n, ok := toInt(raw)
		if !ok {
			return nil, &Error{Field: path, Constraint: ConstraintInteger}
		}
		return n, nil
	case models.FieldBoolean:
		b, ok := toBool(raw)
		if !ok {
			return nil, &Error{Field: path, Constraint: ConstraintBoolean}
		}
		return b, nil
	case models.FieldURL:
		return coerceURL(raw, path)
	case models.FieldURLList:
		items, ok := toList(raw)
		if !ok {
			return nil, &Error{Field: path, Constraint: ConstraintList}
		}
		urls := make([]string, 0, len(items))
		for i, item := range items {
			u, err := coerceURL(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			urls = append(urls, u)
		}
		return urls, nil
	case models.FieldOrderItems:
		items, ok := toList(raw)
		if !ok {
			return nil, &Error{Field: path, Constraint: ConstraintList}
		}
		out := make([]models.Document, 0, len(items))
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			obj, ok := toObject(item)
			if !ok {
				return nil, &Error{Field: itemPath, Constraint: ConstraintObject}
			}
			doc, err := validateObject(models.OrderItemFields, obj, itemPath+".")
			if err != nil {
				return nil, err
			}
			out = append(out, doc)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("validation: unsupported field type %q", f.Type)
	}
}

func coerceURL(raw interface{}, path string) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", &Error{Field: path, Constraint: ConstraintString}
	}
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "http_url"); err != nil {
		return "", toError(err, path)
	}
	return s, nil
}

func checkRules(f models.Field, value interface{}, path string) error {
	tag := rulesTag(f)
	if tag == "" {
		return nil
	}
	if err := validate.Var(value, tag); err != nil {
		return toError(err, path)
	}
	return nil
}

func rulesTag(f models.Field) string {
	var rules []string
	if f.Min != nil {
		rules = append(rules, "gte="+strconv.FormatInt(*f.Min, 10))
	}
	if f.Max != nil {
		rules = append(rules, "lte="+strconv.FormatInt(*f.Max, 10))
	}
	if len(f.Enum) > 0 {
		rules = append(rules, "oneof="+strings.Join(f.Enum, " "))
	}
	return strings.Join(rules, ",")
}

func toError(err error, path string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}
		return &Error{Field: path, Constraint: constraint}
	}
	return fmt.Errorf("validate %s: %w", path, err)
}

func toInt(raw interface{}) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return floatToInt(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// maxExactFloat is the largest magnitude below which every integer has an exact float64.
const maxExactFloat = 1 << 53

func floatToInt(v float64) (int64, bool) {
	if v != math.Trunc(v) || math.Abs(v) > maxExactFloat {
		return 0, false
	}
	return int64(v), true
}

func toBool(raw interface{}) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on", "t", "y":
			return true, true
		case "false", "0", "no", "off", "f", "n":
			return false, true
		}
	case float64:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	case int:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	case int64:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	case json.Number:
		switch v.String() {
		case "0":
			return false, true
		case "1":
			return true, true
		}
	}
	return false, false
}

func toList(raw interface{}) ([]interface{}, bool) {
	switch v := raw.(type) {
	case []interface{}:
		return v, true
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []map[string]interface{}:
		out := make([]interface{}, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

func toObject(raw interface{}) (map[string]interface{}, bool) {
	switch v := raw.(type) {
	case map[string]interface{}:
		return v, true
	case models.Document:
		return v, true
	default:
		return nil, false
	}
}
