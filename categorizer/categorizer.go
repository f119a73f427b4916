// Package categorizer maps vendor names to spending categories using an
// ordered rule table plus keyword fallbacks. Rule order is authoritative:
// rules are tested first-to-last and the first word-boundary match wins, so
// an alias contained in another vendor name resolves to the earlier entry.
package categorizer

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultCategory is returned when no rule and no keyword fallback matches.
const DefaultCategory = "Other"

// Rule maps a known vendor name to its spending category.
type Rule struct {
	Vendor   string `json:"vendor"`
	Category string `json:"category"`
}

type compiledRule struct {
	pattern  *regexp.Regexp
	category string
}

// Categorizer classifies vendors against a fixed rule table. Classification
// is a pure function of the input once the table is loaded, so the same
// instance can re-classify stored records at any time.
type Categorizer struct {
	rules []compiledRule
}

// New builds a Categorizer from the given rules, preserving their order.
func New(rules []Rule) *Categorizer {
	c := &Categorizer{rules: make([]compiledRule, 0, len(rules))}
	for _, rule := range rules {
		c.rules = append(c.rules, compiledRule{
			pattern:  regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(rule.Vendor) + `\b`),
			category: rule.Category,
		})
	}
	return c
}

// Load reads an ordered rule table from a JSON file. A missing or malformed
// file falls back to the built-in default table.
func Load(path string) *Categorizer {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.WithField("path", path).Info("category rule file not found, using built-in table")
		return New(DefaultRules())
	}

	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("invalid category rule file, using built-in table")
		return New(DefaultRules())
	}

	logrus.WithFields(logrus.Fields{"path": path, "rules": len(rules)}).Info("loaded category rules")
	return New(rules)
}

// Classify returns the spending category for a vendor string. Unmatched
// vendors fall through keyword heuristics and finally to DefaultCategory.
func (c *Categorizer) Classify(vendor string) string {
	if vendor == "" {
		return DefaultCategory
	}

	for _, rule := range c.rules {
		if rule.pattern.MatchString(vendor) {
			return rule.category
		}
	}

	lower := strings.ToLower(vendor)
	for _, keyword := range []string{"electricity", "power", "bijli", "discom"} {
		if strings.Contains(lower, keyword) {
			return "Electricity"
		}
	}
	for _, keyword := range []string{"internet", "broadband", "fibernet"} {
		if strings.Contains(lower, keyword) {
			return "Internet"
		}
	}
	return DefaultCategory
}

// DefaultRules is the built-in vendor table. Keep specific aliases before
// shorter ones they contain (e.g. "Reliance Jio" before "Jio").
func DefaultRules() []Rule {
	return []Rule{
		{"Walmart", "Groceries"},
		{"Target", "Retail"},
		{"Amazon", "Online Shopping"},
		{"Comcast", "Internet"},
		{"Costco", "Wholesale"},
		{"Tesco", "Groceries"},
		{"Aldi", "Groceries"},
		{"Lidl", "Groceries"},
		{"Sainsbury", "Groceries"},
		{"Carrefour", "Groceries"},
		{"Auchan", "Groceries"},
		{"Edeka", "Groceries"},
		{"Rewe", "Groceries"},
		{"Reliance Jio", "Internet"},
		{"Jio", "Internet"},
		{"Airtel", "Internet"},
		{"BSNL", "Internet"},
		{"Vodafone Idea", "Internet"},
		{"VI", "Internet"},
		{"ACT Fibernet", "Internet"},
		{"Hathway", "Internet"},
		{"Spectra", "Internet"},
		{"Tata Power", "Electricity"},
		{"MSEB", "Electricity"},
		{"BESCOM", "Electricity"},
		{"UPPCL", "Electricity"},
		{"KSEB", "Electricity"},
		{"Adani Electricity", "Electricity"},
		{"MSEDCL", "Electricity"},
		{"Maharashtra State Electricity", "Electricity"},
		{"CESC", "Electricity"},
		{"TPDDL", "Electricity"},
		{"TNEB", "Electricity"},
		{"UPCL", "Electricity"},
		{"JVVNL", "Electricity"},
		{"DHBVN", "Electricity"},
		{"Dakshin Haryana Bijli Vitran Nigam", "Electricity"},
		{"UHBVN", "Electricity"},
		{"APSPDCL", "Electricity"},
		{"BSES", "Electricity"},
		{"PGVCL", "Electricity"},
		{"PSPCL", "Electricity"},
		{"CSPDCL", "Electricity"},
		{"KPTCL", "Electricity"},
		{"BESL", "Electricity"},
	}
}
