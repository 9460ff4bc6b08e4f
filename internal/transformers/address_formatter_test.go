package transformers

import "testing"

func TestFormatFullAddress(t *testing.T) {
	f := NewAddressFormatter()

	parts := f.Format(map[string]interface{}{
		"StreetNumber":    "12",
		"StreetName":      "main street",
		"City":            "austin",
		"StateOrProvince": "tx",
		"PostalCode":      "78701",
	})

	if parts.Address != "12 Main Street, Austin, TX, 78701" {
		t.Errorf("Address = %q; want %q", parts.Address, "12 Main Street, Austin, TX, 78701")
	}
	if parts.City != "Austin" {
		t.Errorf("City = %q; want Austin", parts.City)
	}
	if parts.State != "TX" {
		t.Errorf("State = %q; want TX", parts.State)
	}
}

func TestFormatNilPayload(t *testing.T) {
	f := NewAddressFormatter()

	parts := f.Format(nil)
	if parts.Address != "" || parts.City != "" || parts.State != "" {
		t.Errorf("Format(nil) = %+v; want all empty", parts)
	}
}

func TestFormatKeepsEmptySegments(t *testing.T) {
	f := NewAddressFormatter()

	parts := f.Format(map[string]interface{}{
		"StreetNumber": "400",
		"StreetName":   "oak",
	})

	// city, state and zip are empty but the separators stay
	if parts.Address != "400 Oak, , , " {
		t.Errorf("Address = %q; want %q", parts.Address, "400 Oak, , , ")
	}
}

func TestFormatDirectionalsAndUnit(t *testing.T) {
	f := NewAddressFormatter()

	parts := f.Format(map[string]interface{}{
		"StreetNumber":    "1500",
		"StreetDirPrefix": "N",
		"StreetName":      "lamar",
		"StreetSuffix":    "Blvd",
		"UnitNumber":      "4B",
		"City":            "austin",
		"StateOrProvince": "tx",
		"PostalCode":      "78703",
	})

	want := "1500 N Lamar Blvd 4B, Austin, TX, 78703"
	if parts.Address != want {
		t.Errorf("Address = %q; want %q", parts.Address, want)
	}
}

func TestFormatNonStringValues(t *testing.T) {
	f := NewAddressFormatter()

	parts := f.Format(map[string]interface{}{
		"StreetNumber":    12.0,
		"StreetName":      "main",
		"City":            "austin",
		"StateOrProvince": "tx",
		"PostalCode":      78701.0,
	})

	if parts.Address != "12 Main, Austin, TX, 78701" {
		t.Errorf("Address = %q; want %q", parts.Address, "12 Main, Austin, TX, 78701")
	}
}

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"main street", "Main Street"},
		{"MAIN", "Main"},
		{"  spaced   out  ", "Spaced Out"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := capitalizeWords(tt.in); got != tt.want {
			t.Errorf("capitalizeWords(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
