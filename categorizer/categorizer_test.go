package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKnownVendors(t *testing.T) {
	c := New(DefaultRules())

	tests := []struct {
		vendor string
		want   string
	}{
		{"Walmart Supercenter #4021", "Groceries"},
		{"AMAZON.COM", "Online Shopping"},
		{"Tata Power Mumbai", "Electricity"},
		{"Reliance Jio Infocomm", "Internet"},
		{"Unknown Vendor XYZ", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.vendor, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.vendor))
		})
	}
}

func TestClassifyKeywordFallbacks(t *testing.T) {
	c := New(DefaultRules())

	assert.Equal(t, "Electricity", c.Classify("City Distribution Power Board"))
	assert.Equal(t, "Electricity", c.Classify("Rajdhani Bijli Supply"))
	assert.Equal(t, "Internet", c.Classify("Springfield Broadband Services"))
	assert.Equal(t, "Other", c.Classify("Corner Bakery"))
}

func TestClassifyRuleOrderWins(t *testing.T) {
	// the same vendor string matches both rules; insertion order decides
	specific := New([]Rule{
		{Vendor: "ACME Store", Category: "Retail"},
		{Vendor: "ACME", Category: "Groceries"},
	})
	assert.Equal(t, "Retail", specific.Classify("ACME Store #1"))

	reversed := New([]Rule{
		{Vendor: "ACME", Category: "Groceries"},
		{Vendor: "ACME Store", Category: "Retail"},
	})
	assert.Equal(t, "Groceries", reversed.Classify("ACME Store #1"))
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := New(DefaultRules())
	for i := 0; i < 10; i++ {
		assert.Equal(t, "Groceries", c.Classify("Tesco Express"))
	}
}

func TestClassifyEmptyVendor(t *testing.T) {
	c := New(DefaultRules())
	assert.Equal(t, DefaultCategory, c.Classify(""))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	rules := `[{"vendor": "Corner Bakery", "category": "Food"}]`
	assert.NoError(t, os.WriteFile(path, []byte(rules), 0644))

	c := Load(path)
	assert.Equal(t, "Food", c.Classify("Corner Bakery Downtown"))
	assert.Equal(t, DefaultCategory, c.Classify("Walmart"))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, "Groceries", c.Classify("Walmart"))
}
