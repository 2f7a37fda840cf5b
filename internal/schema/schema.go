package schema

import (
	"encoding/json" // json.Number input from decoders using UseNumber
	"errors"        // Unwrapping validator errors
	"fmt"           // Default message formatting
	"math"          // NaN/Inf rejection
	"strconv"       // String <-> number/bool casts
	"strings"       // Trimming and joining

	"github.com/go-playground/validator/v10" // Rule evaluation
	"github.com/google/uuid"                 // Reference identifiers
)

// Kind is the storage type a field is cast to before its rules run.
type Kind int

const (
	String    Kind = iota // Free text
	Number                // float64
	Boolean               // bool
	Reference             // Canonical UUID of another document
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Boolean:
		return "Boolean"
	case Reference:
		return "UUID"
	default:
		return "String"
	}
}

// Message keys that are not validator tags.
const (
	MsgRequired = "required"
	MsgCast     = "cast"
)

// Field declares one attribute of a resource.
type Field struct {
	Name     string            // JSON name of the attribute
	Kind     Kind              // Target type
	Required bool              // Missing or empty input is a violation
	Trim     bool              // Strip surrounding whitespace from strings
	Rules    string            // validator/v10 tag evaluated after casting, e.g. "max=100"
	Default  any               // Applied when the attribute is missing
	Messages map[string]string // Message per validator tag, MsgRequired or MsgCast
}

// Document is validated input: only declared fields, cast to their kind, defaults applied.
type Document map[string]any

// String returns the string value of key or "".
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Float returns the numeric value of key or 0.
func (d Document) Float(key string) float64 {
	f, _ := d[key].(float64)
	return f
}

// Bool returns the boolean value of key or false.
func (d Document) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// ValidationError carries every violation found in one input, in field order.
type ValidationError struct {
	Resource string
	Messages []string
}

func (e *ValidationError) Error() string {
	msg := "validation failed: " + strings.Join(e.Messages, ", ")
	if e.Resource != "" {
		return e.Resource + " " + msg
	}
	return msg
}

// Schema is an ordered table of fields for one resource.
type Schema struct {
	name     string
	fields   []Field
	validate *validator.Validate
}

// New builds a schema. Field order is the order violations are reported in.
func New(name string, fields ...Field) *Schema {
	return &Schema{name: name, fields: fields, validate: validator.New()}
}

// Validate casts input against the schema and checks every rule. Unknown keys are dropped.
// On failure the error is a *ValidationError listing all violations.
func (s *Schema) Validate(input map[string]any) (Document, error) {
	doc := make(Document, len(s.fields))
	var msgs []string
	for _, f := range s.fields {
		v, msg := s.field(f, input[f.Name])
		if msg != "" {
			msgs = append(msgs, msg)
			continue
		}
		if v != nil {
			doc[f.Name] = v
		}
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Resource: s.name, Messages: msgs}
	}
	return doc, nil
}

// field resolves one attribute to its stored value or a violation message.
func (s *Schema) field(f Field, raw any) (any, string) {
	if missing(f, raw) {
		if f.Default != nil {
			return f.Default, ""
		}
		if f.Required {
			return nil, f.message(MsgRequired, raw)
		}
		return nil, ""
	}

	v, ok := cast(f.Kind, raw)
	if !ok {
		return nil, f.message(MsgCast, raw)
	}
	if str, isStr := v.(string); isStr && f.Kind == String {
		if f.Trim {
			str = strings.TrimSpace(str)
			v = str
		}
		if str == "" && f.Required {
			return nil, f.message(MsgRequired, raw)
		}
	}

	if f.Rules != "" {
		if err := s.validate.Var(v, f.Rules); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return nil, f.message(verrs[0].Tag(), v)
			}
			return nil, f.message("", v)
		}
	}
	return v, ""
}

// missing reports whether raw counts as absent. Empty strings are absent for non-string kinds.
func missing(f Field, raw any) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok && f.Kind != String {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func (f Field) message(key string, value any) string {
	if m, ok := f.Messages[key]; ok {
		return m
	}
	switch key {
	case MsgRequired:
		return fmt.Sprintf("Path `%s` is required.", f.Name)
	case MsgCast:
		return fmt.Sprintf("Cast to %s failed for value \"%v\" (type %T) at path \"%s\"", f.Kind, value, value, f.Name)
	case "oneof":
		return fmt.Sprintf("`%v` is not a valid enum value for path `%s`.", value, f.Name)
	case "max":
		return fmt.Sprintf("Path `%s` (`%v`) is longer than the maximum allowed length.", f.Name, value)
	case "min":
		return fmt.Sprintf("Path `%s` (`%v`) is less than the minimum allowed.", f.Name, value)
	default:
		return fmt.Sprintf("Path `%s` is invalid (%v).", f.Name, value)
	}
}

// cast converts decoded JSON into the Go type for kind.
func cast(kind Kind, raw any) (any, bool) {
	switch kind {
	case String:
		switch v := raw.(type) {
		case string:
			return v, true
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		case json.Number:
			return v.String(), true
		case int:
			return strconv.Itoa(v), true
		case bool:
			return strconv.FormatBool(v), true
		}
	case Number:
		var f float64
		switch v := raw.(type) {
		case float64:
			f = v
		case int:
			f = float64(v)
		case json.Number:
			n, err := v.Float64()
			if err != nil {
				return nil, false
			}
			f = n
		case string:
			n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, false
			}
			f = n
		default:
			return nil, false
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return f, true
	case Boolean:
		switch v := raw.(type) {
		case bool:
			return v, true
		case float64:
			if v == 1 || v == 0 {
				return v == 1, true
			}
		case int:
			if v == 1 || v == 0 {
				return v == 1, true
			}
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "1", "yes":
				return true, true
			case "false", "0", "no":
				return false, true
			}
		}
	case Reference:
		s, ok := raw.(string)
		if !ok {
			return nil, false
		}
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, false
		}
		return id.String(), true
	}
	return nil, false
}
