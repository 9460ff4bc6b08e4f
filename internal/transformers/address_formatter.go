package transformers

import (
	"strings"
	"unicode"
)

// AddressParts is the formatted address triple extracted from a vendor payload.
type AddressParts struct {
	Address string
	City    string
	State   string
}

type addressFormatter struct{}

func NewAddressFormatter() AddressFormatter {
	return &addressFormatter{}
}

// Format assembles the display address from the RESO-style payload sub-fields.
// Every sub-field is optional; an absent payload yields all-empty parts. The
// full address keeps its comma separators even around empty components.
func (f *addressFormatter) Format(payload map[string]interface{}) AddressParts {
	if payload == nil {
		return AddressParts{}
	}

	get := func(key string) string {
		value, ok := payload[key]
		if !ok {
			return ""
		}
		return strings.TrimSpace(convertString(value, ""))
	}

	tokens := []string{
		get("StreetNumber"),
		get("StreetDirPrefix"),
		capitalizeWords(get("StreetName")),
		get("StreetSuffix"),
		get("StreetDirSuffix"),
		get("UnitNumber"),
	}
	street := joinNonEmpty(tokens, " ")

	city := capitalizeWords(get("City"))
	state := strings.ToUpper(get("StateOrProvince"))
	zip := get("PostalCode")

	return AddressParts{
		Address: strings.Join([]string{street, city, state, zip}, ", "),
		City:    city,
		State:   state,
	}
}

// capitalizeWords upper-cases the first letter of each whitespace-separated
// word and lower-cases the remainder, collapsing repeated whitespace.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func joinNonEmpty(tokens []string, sep string) string {
	kept := tokens[:0]
	for _, token := range tokens {
		if token != "" {
			kept = append(kept, token)
		}
	}
	return strings.Join(kept, sep)
}
