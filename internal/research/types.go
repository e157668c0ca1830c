// Package research defines the research-provider boundary: the raw record
// shapes third-party enrichment, search and filing providers hand us. The
// signal extractor is the sole adapter from these records into the core data
// model; nothing downstream of it sees a raw record.
package research

// CitationRecord is a raw fact that claims a supporting URL, typically a news
// snippet or a filing excerpt returned by a search provider.
type CitationRecord struct {
	Text        string `json:"text"`
	URL         string `json:"url,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	AgeDays     int    `json:"age_days,omitempty"`
	Regulatory  bool   `json:"regulatory,omitempty"`
	IndustryNew bool   `json:"industry_wide,omitempty"`
}

// VendorField is a single enrichment-vendor profile field. Vendor fields
// never carry citable provenance regardless of content.
type VendorField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UserNote is a fact supplied directly by the operator, optionally with a
// URL the operator vouches for.
type UserNote struct {
	Text    string `json:"text"`
	URL     string `json:"url,omitempty"`
	AgeDays int    `json:"age_days,omitempty"`
}

// InferredFact is a fact heuristically derived from structured context (for
// example, industry implies a likely regulatory regime). Inferred facts are
// never citable.
type InferredFact struct {
	Text     string `json:"text"`
	Basis    string `json:"basis,omitempty"`
	Industry bool   `json:"industry_wide,omitempty"`
}

// RawSources is the complete set of named raw record collections for one
// prospect. Every collection is optional.
type RawSources struct {
	Citations     []CitationRecord `json:"citations,omitempty"`
	VendorProfile []VendorField    `json:"vendor_profile,omitempty"`
	UserNotes     []UserNote       `json:"user_notes,omitempty"`
	Inferred      []InferredFact   `json:"inferred,omitempty"`

	// CitationQualityProblem flags an upstream provider that returned
	// content but no extractable citations; the confidence calculator
	// forces the generic tier when set.
	CitationQualityProblem bool `json:"citation_quality_problem,omitempty"`
}

// Empty reports whether no collection holds any record
func (r *RawSources) Empty() bool {
	return len(r.Citations) == 0 && len(r.VendorProfile) == 0 &&
		len(r.UserNotes) == 0 && len(r.Inferred) == 0
}
