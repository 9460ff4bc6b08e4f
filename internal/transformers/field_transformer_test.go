package transformers

import (
	"testing"
	"time"

	"homefeed-listings/internal/models"
)

func strPtr(s string) *string { return &s }

func TestExtractFieldPrefersPayload(t *testing.T) {
	raw := &models.RawListing{
		RawData:    map[string]interface{}{"PostalCode": "10001"},
		PostalCode: strPtr("99999"),
	}

	value, ok := extractField(raw, "PostalCode")
	if !ok {
		t.Fatal("expected PostalCode to be found")
	}
	if value != "10001" {
		t.Errorf("extractField = %v; want payload value 10001", value)
	}
}

func TestExtractFieldFallsBackToColumn(t *testing.T) {
	raw := &models.RawListing{
		RawData:    map[string]interface{}{"CurrentPrice": 100.0},
		PostalCode: strPtr("78701"),
	}

	value, ok := extractField(raw, "PostalCode")
	if !ok {
		t.Fatal("expected column fallback to be found")
	}
	if value != "78701" {
		t.Errorf("extractField = %v; want column value 78701", value)
	}
}

func TestExtractFieldAbsent(t *testing.T) {
	raw := &models.RawListing{RawData: map[string]interface{}{}}

	if _, ok := extractField(raw, "PostalCode"); ok {
		t.Error("expected PostalCode to be absent")
	}
	if _, ok := extractField(raw, "CurrentPrice"); ok {
		t.Error("expected CurrentPrice to be absent")
	}
}

func TestExtractFieldNilPayload(t *testing.T) {
	raw := &models.RawListing{PostalCode: strPtr("02134")}

	value, ok := extractField(raw, "PostalCode")
	if !ok || value != "02134" {
		t.Errorf("extractField = %v, %v; want 02134, true", value, ok)
	}
}

func TestConvertString(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		def   string
		want  string
	}{
		{"string passthrough", "condo", "", "condo"},
		{"nil yields default", nil, "ACTIVE", "ACTIVE"},
		{"number formatted", 42.0, "", "42"},
		{"bool formatted", true, "", "true"},
	}

	for _, tt := range tests {
		if got := convertString(tt.value, tt.def); got != tt.want {
			t.Errorf("%s: convertString(%v) = %q; want %q", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestConvertFloat(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		def   float64
		want  float64
	}{
		{"float64", 425000.0, 0, 425000},
		{"int", 3, 0, 3},
		{"int64", int64(1800), 0, 1800},
		{"numeric string", "2.5", 0, 2.5},
		{"padded numeric string", " 98.6 ", 0, 98.6},
		{"non-numeric string", "three", 0, 0},
		{"partial numeric string", "120k", 0, 0},
		{"nil", nil, 7, 7},
		{"bool unsupported", true, 0, 0},
	}

	for _, tt := range tests {
		if got := convertFloat(tt.value, tt.def); got != tt.want {
			t.Errorf("%s: convertFloat(%v) = %v; want %v", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestConvertTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"time.Time", ts, "2024-03-15T10:30:00Z"},
		{"RFC3339 string", "2024-03-15T10:30:00Z", "2024-03-15T10:30:00Z"},
		{"date-only string", "2024-03-15", "2024-03-15T00:00:00Z"},
		{"epoch millis", float64(ts.UnixMilli()), "2024-03-15T10:30:00Z"},
		{"garbage string", "not a date", ""},
		{"nil", nil, ""},
		{"zero time", time.Time{}, ""},
	}

	for _, tt := range tests {
		if got := convertTimestamp(tt.value, ""); got != tt.want {
			t.Errorf("%s: convertTimestamp(%v) = %q; want %q", tt.name, tt.value, got, tt.want)
		}
	}
}
