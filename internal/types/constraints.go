// Package types provides type definitions for structured data used throughout the outreach agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Channel identifies the delivery channel a message is rendered for
type Channel string

// Supported channels
const (
	ChannelEmail    Channel = "email"
	ChannelLinkedIn Channel = "linkedin"
)

// StructuralConstraints are the channel-specific shape rules a rendered
// message must satisfy.
type StructuralConstraints struct {
	Channel         Channel `json:"channel"`
	MinWords        int     `json:"min_words"`
	MaxWords        int     `json:"max_words"`
	MinSentences    int     `json:"min_sentences"`
	MaxSentences    int     `json:"max_sentences"`
	SubjectRequired bool    `json:"subject_required"`
	MaxSubjectWords int     `json:"max_subject_words"`
	// MustEndWithQuestion requires the body to end in a yes/no question.
	MustEndWithQuestion bool `json:"must_end_with_question"`
	// CountParagraphs switches sentence bounds to paragraph bounds for
	// channels without discrete sentences.
	CountParagraphs bool `json:"count_paragraphs"`
}

// ContentRules are the tier-specific content restrictions applied to a
// candidate body.
type ContentRules struct {
	Tier              ConfidenceTier `json:"tier"`
	MaxSignalRefs     int            `json:"max_signal_refs"`
	ForbidCompanyName bool           `json:"forbid_company_name"`
	ForbidNumerics    bool           `json:"forbid_numerics"`
	ForbidEntities    bool           `json:"forbid_entities"`
	// ForbidExplicitClaims bans first-person-discovery phrasing ("I saw
	// that...", "your recent..."); set for the two lowest tiers.
	ForbidExplicitClaims bool `json:"forbid_explicit_claims"`
	// AllowedProvenances lists the provenance classes a referenced signal may
	// carry under this tier. Empty means no signal may be referenced at all.
	AllowedProvenances []Provenance `json:"allowed_provenances"`
}

// ProvenanceAllowed reports whether a provenance class may back an explicit
// claim under these rules.
func (r *ContentRules) ProvenanceAllowed(p Provenance) bool {
	for _, allowed := range r.AllowedProvenances {
		if allowed == p {
			return true
		}
	}
	return false
}

// BriefConstraints is the resolved constraint set carried by a brief: the
// structural rules for its channel plus the content rules for its tier.
type BriefConstraints struct {
	Structural StructuralConstraints `json:"structural"`
	Content    ContentRules          `json:"content"`
	// Coverage thresholds for the semantic-coverage check.
	MinAbsoluteTerms int     `json:"min_absolute_terms"`
	MinTermCoverage  float64 `json:"min_term_coverage"`
}
