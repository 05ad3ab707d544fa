// Package names canonicalizes free-text person names as recorded by the
// company registry. The registry stores officer names as "SURNAME, Forename
// Middle", often with honorific prefixes, while the officer-search index
// returns them in natural order; both shapes must collapse to the same
// identity key.
package names

import (
	"sort"
	"strings"
)

// honorificPrefixes are stripped as whole tokens before any comparison.
var honorificPrefixes = map[string]bool{
	"MR":   true,
	"MRS":  true,
	"MS":   true,
	"MISS": true,
	"DR":   true,
	"SIR":  true,
	"LADY": true,
	"LORD": true,
}

// tokenize uppercases, treats commas as spaces, splits on whitespace and
// drops honorific prefixes.
func tokenize(name string) []string {
	parts := strings.Fields(strings.ReplaceAll(strings.ToUpper(name), ",", " "))
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		if !honorificPrefixes[p] {
			cleaned = append(cleaned, p)
		}
	}
	return cleaned
}

// stripPrefixes removes honorific tokens while preserving the comma
// structure of the original string.
func stripPrefixes(name string) string {
	upper := strings.ToUpper(name)
	segments := strings.Split(upper, ",")
	for i, seg := range segments {
		parts := strings.Fields(seg)
		kept := make([]string, 0, len(parts))
		for _, p := range parts {
			if !honorificPrefixes[p] {
				kept = append(kept, p)
			}
		}
		segments[i] = strings.Join(kept, " ")
	}
	return strings.Join(segments, ",")
}

// FormatProperOrder converts "SURNAME, Forename Middle" to
// "Forename Middle SURNAME" after stripping honorific prefixes. Names
// without exactly one comma are returned prefix-stripped and uppercased.
// The result is used for display and similarity comparison only.
func FormatProperOrder(name string) string {
	stripped := stripPrefixes(name)

	if strings.Count(stripped, ",") == 1 {
		parts := strings.SplitN(stripped, ",", 2)
		surname := strings.TrimSpace(parts[0])
		forenames := strings.TrimSpace(parts[1])
		return strings.TrimSpace(forenames + " " + surname)
	}

	return strings.TrimSpace(stripped)
}

// NormalizeKey produces an order-insensitive identity key: uppercased,
// prefix-stripped tokens sorted alphabetically and joined with single
// spaces. "SMITH, John" and "John Smith" normalize identically.
func NormalizeKey(name string) string {
	tokens := tokenize(name)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// ExtractFirstLast returns the first and last tokens of the cleaned,
// un-sorted token sequence. A single remaining token is returned for both
// positions; an empty name yields two empty strings.
func ExtractFirstLast(name string) (first, last string) {
	tokens := tokenize(name)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], tokens[0]
	default:
		return tokens[0], tokens[len(tokens)-1]
	}
}
