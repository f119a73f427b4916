package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/billscan/receipt-analyzer/dto"
)

// Pattern cascades are evaluated first-to-last and the first match wins, so
// slice order is observable behavior. More specific patterns come first.

// vendorPatterns recover the merchant/utility name from receipt text.
var vendorPatterns = []*regexp.Regexp{
	// Full line of upper-case characters (shop headers as printed by POS systems)
	regexp.MustCompile(`(?m)^[A-Z0-9 &.,'-]{5,}$`),
	// Malaysian incorporation suffix
	regexp.MustCompile(`\bSDN BHD\b`),
	// Known brands, utilities and telecom providers
	regexp.MustCompile(`\b(?:Reliance Jio|Jio|Airtel|BSNL|Vodafone Idea|VI|ACT Fibernet|Hathway|Spectra|Tata Power|MSEB|BESCOM|UPPCL|Walmart|Target|Amazon|Costco|Best Buy|Aldi|Lidl|Tesco|Sainsbury|Carrefour|Auchan|Edeka|Rewe|Inc\.|LLC|Ltd\.|Corporation|Corp\.|Supermarket|Market|Store)\b`),
	// "<name> Inc." / "<name> LLC"
	regexp.MustCompile(`[A-Za-z ]+Inc\.|[A-Za-z ]+LLC`),
	// Legal entity suffixes
	regexp.MustCompile(`\b(?:Pvt\.\s?Ltd\.|Pvt Ltd|Private Limited|Ltd\.|LLP|PLC|Limited|Co\.\s?Ltd\.|Company)\b`),
	// Generic "<name> <suffix>" company patterns
	regexp.MustCompile(`[A-Za-z ]+(?:Pvt\.\s?Ltd|LLP|Ltd\.|Private Limited|PLC)`),
}

// datePatterns match the raw date substring without interpreting it; parsing
// against calendar layouts happens in ParseReceiptText.
var datePatterns = []*regexp.Regexp{
	// 01/02/2024 or 01-02-2024
	regexp.MustCompile(`\b\d{2}[/-]\d{2}[/-]\d{4}\b`),
	// 2024-02-01 or 2024/02/01
	regexp.MustCompile(`\b\d{4}[/-]\d{2}[/-]\d{2}\b`),
	// Apr 20, 2024 or April 20, 2024
	regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2}, \d{4}\b`),
	// 20 Apr 2024 or 20 April 2024
	regexp.MustCompile(`\b\d{1,2}[ -](?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*[ -]\d{4}\b`),
	// Apr 20 2024 or April 20 2024
	regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*[ -]\d{1,2}[ ,-]\d{4}\b`),
}

// amountPatterns capture the payable amount; group 1 holds the numeral.
var amountPatterns = []*regexp.Regexp{
	// Label followed by amount (Total, Amount Due, Balance, Grand Total, Sum)
	regexp.MustCompile(`(?i)(?:total(?: amount)?|amount(?: due| payable| paid)?|balance|grand total|sum)[^\d]{0,15}(\d[\d,]*(?:[.,]\d{2})?)`),
	// Currency symbol before amount
	regexp.MustCompile(`(?i)(?:[$€£₹]\s*|rs\.?\s*)(\d[\d,]*(?:[.,]\d{2})?)`),
	// Currency symbol after amount
	regexp.MustCompile(`(?i)(\d[\d,]*(?:[.,]\d{2})?)\s*(?:[$€£₹]|rs\.?)`),
}

var currencyPattern = regexp.MustCompile(`(?i)(\$|USD|EUR|€|£|RM|₹|INR|Rs\.?)`)

// lineItemPattern matches "descriptive text  12.50" within a single line.
var lineItemPattern = regexp.MustCompile(`([A-Za-z0-9 \-]+)\s+(\d+[.,]\d{2})`)

// dateLayouts is the format-priority list for turning a matched date string
// into a calendar date. Day-first numeric layouts come before month-first, so
// an ambiguous "01/02/2024" resolves to 2024-02-01. Changing this order
// changes how historical documents parse.
var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"01/02/2006",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2-January-2006",
	"Jan 2 2006",
	"January 2 2006",
}

// ExtractVendor returns the merchant name from receipt text, or "Unknown"
// when no pattern and no fallback line matches.
func ExtractVendor(text string) string {
	for _, pattern := range vendorPatterns {
		if match := pattern.FindString(text); match != "" {
			return strings.TrimSpace(match)
		}
	}

	// Fallback: first entirely upper-case line longer than 5 characters
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 5 && isUpper(trimmed) {
			return trimmed
		}
	}
	return "Unknown"
}

// isUpper reports whether s contains at least one letter and no lower-case
// letters.
func isUpper(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}

// ExtractDate returns the first raw date-shaped substring, unparsed.
func ExtractDate(text string) (string, bool) {
	for _, pattern := range datePatterns {
		if match := pattern.FindString(text); match != "" {
			return match, true
		}
	}
	return "", false
}

// ExtractAmount returns the payable amount. A numeral that fails float
// conversion is treated as no match and the cascade continues.
func ExtractAmount(text string) (float64, bool) {
	for _, pattern := range amountPatterns {
		if matches := pattern.FindStringSubmatch(text); len(matches) > 1 {
			raw := strings.ReplaceAll(matches[1], ",", "")
			raw = strings.ReplaceAll(raw, " ", "")
			if amount, err := strconv.ParseFloat(raw, 64); err == nil {
				return amount, true
			}
		}
	}
	return 0, false
}

// ExtractCurrency returns the first currency symbol or code, uppercased.
func ExtractCurrency(text string) (string, bool) {
	if matches := currencyPattern.FindStringSubmatch(text); len(matches) > 1 {
		return strings.ToUpper(strings.TrimSpace(matches[1])), true
	}
	return "", false
}

// ExtractLineItems scans each line independently for an item/price pair.
// Emitted items follow line order in the source text.
func ExtractLineItems(text string) []dto.LineItem {
	var items []dto.LineItem
	for _, line := range strings.Split(text, "\n") {
		matches := lineItemPattern.FindStringSubmatch(line)
		if len(matches) > 2 {
			price, err := strconv.ParseFloat(strings.ReplaceAll(matches[2], ",", "."), 64)
			if err != nil {
				continue
			}
			item := strings.TrimSpace(matches[1])
			if item == "" {
				continue
			}
			items = append(items, dto.LineItem{Item: item, Price: price})
		}
	}
	return items
}

// ParseDate parses a raw extracted date string against the layout cascade.
func ParseDate(dateStr string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseReceiptText extracts all structured fields from raw receipt text.
// It never fails: each field independently degrades to its default or
// absent value on a non-match. Category is left empty here; classification
// from the vendor string is the caller's step.
func ParseReceiptText(text string) dto.TransactionRecord {
	record := dto.TransactionRecord{
		Vendor:    ExtractVendor(text),
		LineItems: ExtractLineItems(text),
	}

	if dateStr, ok := ExtractDate(text); ok {
		if date, ok := ParseDate(dateStr); ok {
			record.Date = &date
		}
	}
	if amount, ok := ExtractAmount(text); ok {
		record.Amount = &amount
	}
	if currency, ok := ExtractCurrency(text); ok {
		record.Currency = &currency
	}
	return record
}
