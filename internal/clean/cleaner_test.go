package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapse whitespace", "Joe's   Diner\t\n", "Joes Diner"},
		{"strip specials keep allowed", "Cafe #1 - Main St.", "Cafe 1 - Main St."},
		{"empty", "", ""},
		{"only specials", "@#$%", ""},
		{"specials between words leave single space", "a & b", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Text(tt.input))
		})
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{"  Big   Mike's  BBQ!! ", "a & b", "plain text"}
	for _, in := range inputs {
		once := Text(in)
		assert.Equal(t, once, Text(once))
	}
}

func TestAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"expand st", "123 main st, springfield", "123 Main Street, Springfield"},
		{"expand ave", "456 oak ave", "456 Oak Avenue"},
		{"expand blvd", "789 sunset blvd", "789 Sunset Boulevard"},
		{"expand rd and dr", "1 old rd near 2 hill dr", "1 Old Road Near 2 Hill Drive"},
		{"no partial-word expansion", "stable street", "Stable Street"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Address(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ten digits", "5551234567", "(555) 123-4567"},
		{"formatted input", "555-123-4567", "(555) 123-4567"},
		{"eleven with country code", "15551234567", "(555) 123-4567"},
		{"eleven without leading one", "25551234567", "25551234567"},
		{"unparseable returned verbatim", "abc", "abc"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Phone(tt.input))
		})
	}
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://example.com", URL("example.com"))
	assert.Equal(t, "https://example.com", URL("https://example.com"))
	assert.Equal(t, "http://example.com", URL("http://example.com"))
	assert.Equal(t, "", URL("  "))
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// "coffee" must match before the generic title-case fallback.
		{"coffee keyword", "Downtown Coffee House", "Coffee Shop"},
		{"cafe keyword", "Corner Cafe", "Coffee Shop"},
		// "restaurant" precedes "pizza" in the table, so a combined label
		// resolves to Restaurant; a bare pizza name still reaches the pizza rule.
		{"restaurant wins over pizza", "Pizza Restaurant", "Restaurant"},
		{"pizza keyword", "Tony's Pizza", "Pizza Restaurant"},
		{"gym", "24h GYM", "Fitness Center"},
		{"shop fallback to retail", "Gift Shop", "Retail Store"},
		{"unmatched title-cased", "bowling alley", "Bowling Alley"},
		{"empty", "", "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Category(tt.input))
		})
	}
}

func TestHours_Map(t *testing.T) {
	got := Hours(map[string]any{
		"monday":  "9:00 AM - 5:00 PM",
		"Tuesday": "9:00 AM - 5:00 PM",
		"holiday": "closed",
		"friday":  "",
	})
	assert.Equal(t, map[string]string{
		"Monday":  "9:00 AM - 5:00 PM",
		"Tuesday": "9:00 AM - 5:00 PM",
	}, got)
}

func TestHours_String(t *testing.T) {
	got := Hours("Mon-Fri: 9AM-5PM")
	require.Len(t, got, 5)
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		assert.Equal(t, "9AM - 5PM", got[day])
	}
	_, hasSat := got["Saturday"]
	assert.False(t, hasSat)
}

func TestHours_Invalid(t *testing.T) {
	assert.Empty(t, Hours(nil))
	assert.Empty(t, Hours(42))
	assert.Empty(t, Hours("open late"))
}

func TestRecords_DropsUnnamed(t *testing.T) {
	raw := []map[string]any{
		{"name": "Downtown Cafe", "category": "Coffee Shop"},
		{"category": "Gym"},
		nil,
		{"name": "   ", "category": "Bar"},
		{"name": "Pizza Palace", "category": "Pizza Restaurant"},
	}
	got := Records(raw)
	require.Len(t, got, 2)
	// Input order preserved, no placeholders for dropped records.
	assert.Equal(t, "Downtown Cafe", got[0].Name)
	assert.Equal(t, "Pizza Palace", got[1].Name)
}

func TestRecord_FieldDefaults(t *testing.T) {
	b := Record(map[string]any{
		"name":        "Mystery Spot",
		"distance":    "not a number",
		"rating":      9.5,
		"latitude":    200.0,
		"longitude":   -73.99,
		"price_level": 2.0,
		"phone":       "abc",
		"hours":       []string{"bad"},
	})
	assert.Equal(t, 0, b.Distance)
	assert.Equal(t, 5.0, b.Rating) // clamped to the [0,5] ceiling
	assert.Equal(t, 0.0, b.Latitude)
	assert.Equal(t, -73.99, b.Longitude)
	assert.Equal(t, 2, b.PriceLevel)
	assert.Equal(t, "abc", b.Phone)
	assert.Equal(t, "Other", b.Category)
	assert.Empty(t, b.Hours)
}

func TestRecord_NumericStrings(t *testing.T) {
	b := Record(map[string]any{
		"name":     "Corner Market",
		"distance": "250.7",
		"rating":   "4.2",
	})
	assert.Equal(t, 250, b.Distance)
	assert.Equal(t, 4.2, b.Rating)
}

func TestRecord_NegativeValuesClampToZero(t *testing.T) {
	b := Record(map[string]any{
		"name":     "Backwards Inc",
		"distance": -40,
		"rating":   -1.0,
	})
	assert.Equal(t, 0, b.Distance)
	assert.Equal(t, 0.0, b.Rating)
}

func TestRecords_Idempotent(t *testing.T) {
	raw := []map[string]any{{
		"name":     "Joe's   Coffee  ",
		"category": "coffee",
		"address":  "12 main st",
		"phone":    "5551234567",
		"website":  "joes.example",
		"rating":   4.4,
		"distance": 120,
	}}
	first := Records(raw)
	require.Len(t, first, 1)

	// Re-cleaning the cleaned record changes nothing.
	again := Records([]map[string]any{{
		"name":        first[0].Name,
		"category":    first[0].Category,
		"address":     first[0].Address,
		"phone":       first[0].Phone,
		"website":     first[0].Website,
		"rating":      first[0].Rating,
		"distance":    first[0].Distance,
		"price_level": first[0].PriceLevel,
	}})
	require.Len(t, again, 1)
	assert.Equal(t, first[0].Name, again[0].Name)
	assert.Equal(t, first[0].Address, again[0].Address)
	assert.Equal(t, first[0].Phone, again[0].Phone)
	assert.Equal(t, first[0].Website, again[0].Website)
	assert.Equal(t, first[0].Rating, again[0].Rating)
	assert.Equal(t, first[0].Distance, again[0].Distance)
}
