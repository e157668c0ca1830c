// Package signals converts raw research records into classified,
// provenance-tagged signals.
package signals

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/medley/agentic-sales-framework-sub000/internal/research"
	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// minClaimLength is the minimum usable claim length in characters. Anything
// shorter is noise, not a fact.
const minClaimLength = 12

// placeholderValues are vendor-field values that mean "no data"
var placeholderValues = map[string]bool{
	"n/a":     true,
	"na":      true,
	"-":       true,
	"--":      true,
	"unknown": true,
	"none":    true,
	"null":    true,
	"tbd":     true,
	"":        true,
}

// Extract normalizes every usable fact in raw into a Signal. Malformed facts
// are dropped, never reported: the extractor always returns a (possibly
// empty) list and never fails outward.
func Extract(raw *research.RawSources) []types.Signal {
	if raw == nil {
		return nil
	}

	var out []types.Signal
	next := 0
	add := func(claim, sourceURL string, provenance types.Provenance, scope types.SignalScope, recencyDays int) {
		claim = strings.TrimSpace(claim)
		if !usableClaim(claim) {
			return
		}
		if recencyDays < 0 {
			recencyDays = 0
		}
		next++
		sig, err := types.NewSignal(
			fmt.Sprintf("sig-%d", next),
			claim,
			sourceURL,
			provenance,
			scope,
			recencyDays,
			ExtractKeyTerms(claim),
		)
		if err != nil {
			// Contract violation in a raw record: drop the fact.
			next--
			return
		}
		out = append(out, *sig)
	}

	for _, c := range raw.Citations {
		provenance := types.ProvenanceInferred
		sourceURL := ""
		if citableURL(c.URL) {
			provenance = types.ProvenancePublicURL
			sourceURL = c.URL
		}
		add(c.Text, sourceURL, provenance, citationScope(c), c.AgeDays)
	}

	for _, f := range raw.VendorProfile {
		if placeholderValues[strings.ToLower(strings.TrimSpace(f.Value))] {
			continue
		}
		claim := f.Value
		if f.Name != "" {
			claim = f.Name + ": " + f.Value
		}
		add(claim, "", types.ProvenanceVendorData, types.ScopeCompanySpecific, 0)
	}

	for _, n := range raw.UserNotes {
		sourceURL := ""
		if citableURL(n.URL) {
			sourceURL = n.URL
		}
		add(n.Text, sourceURL, types.ProvenanceUserProvided, types.ScopeCompanySpecific, n.AgeDays)
	}

	for _, inf := range raw.Inferred {
		scope := types.ScopeCompanySpecific
		if inf.Industry {
			scope = types.ScopeIndustryWide
		}
		add(inf.Text, "", types.ProvenanceInferred, scope, 0)
	}

	return out
}

func citationScope(c research.CitationRecord) types.SignalScope {
	switch {
	case c.Regulatory:
		return types.ScopeRegulatory
	case c.IndustryNew:
		return types.ScopeIndustryWide
	default:
		return types.ScopeCompanySpecific
	}
}

// usableClaim rejects claims that are too short, placeholder values, or bare
// section headers.
func usableClaim(claim string) bool {
	if len(claim) < minClaimLength {
		return false
	}
	if placeholderValues[strings.ToLower(claim)] {
		return false
	}
	if isSectionHeader(claim) {
		return false
	}
	return true
}

// isSectionHeader detects text that is only a section heading: a short
// phrase ending in a colon, or a short all-caps line.
func isSectionHeader(claim string) bool {
	words := strings.Fields(claim)
	if len(words) > 4 {
		return false
	}
	if strings.HasSuffix(claim, ":") {
		return true
	}
	upper := strings.ToUpper(claim)
	return upper == claim && strings.IndexFunc(claim, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	}) >= 0
}

// citableURL reports whether a raw URL string can back public_url provenance
func citableURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return false
	}
	return !types.IsSearchQueryURL(parsed)
}
