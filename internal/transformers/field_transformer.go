package transformers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"homefeed-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// extractField reads a named field from a raw listing. The vendor payload wins
// when it contains the key, even with a null value; otherwise the matching
// flat relational column is used. The second result reports whether either
// source held the field at all.
func extractField(raw *models.RawListing, name string) (interface{}, bool) {
	if raw.RawData != nil {
		if value, ok := raw.RawData[name]; ok {
			return value, true
		}
	}

	switch name {
	case "PostalCode":
		if raw.PostalCode != nil {
			return *raw.PostalCode, true
		}
	case "UnparsedAddress":
		if raw.UnparsedAddress != nil {
			return *raw.UnparsedAddress, true
		}
	}
	return nil, false
}

// fieldValue collapses the presence flag for callers that only care about the
// value; absent fields come back as nil and fall through to converter defaults.
func fieldValue(raw *models.RawListing, name string) interface{} {
	value, ok := extractField(raw, name)
	if !ok {
		return nil
	}
	return value
}

// convertString coerces value to a string, returning def for nil input.
func convertString(value interface{}, def string) string {
	if value == nil {
		return def
	}
	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// convertFloat coerces value to a float64. Non-numeric strings and anything
// without a numeric interpretation yield def; partial parses never happen.
func convertFloat(value interface{}, def float64) float64 {
	if value == nil {
		return def
	}
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) {
			return def
		}
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return def
		}
		return parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(parsed) {
			return def
		}
		return parsed
	default:
		return def
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// convertTimestamp normalizes a structured or textual timestamp to RFC 3339.
// Unparsable or absent input yields def.
func convertTimestamp(value interface{}, def string) string {
	switch v := value.(type) {
	case nil:
		return def
	case time.Time:
		if v.IsZero() {
			return def
		}
		return v.UTC().Format(time.RFC3339)
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339)
	case string:
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return parsed.UTC().Format(time.RFC3339)
			}
		}
		return def
	case float64:
		return time.UnixMilli(int64(v)).UTC().Format(time.RFC3339)
	case int64:
		return time.UnixMilli(v).UTC().Format(time.RFC3339)
	default:
		return def
	}
}
