// Package config - defaults.go holds the built-in policy tables. A config
// file overlays these; a missing file runs entirely on them.
package config

import (
	"github.com/medley/agentic-sales-framework-sub000/internal/persona"
	"github.com/medley/agentic-sales-framework-sub000/internal/repair"
	"github.com/medley/agentic-sales-framework-sub000/internal/strategy"
	"github.com/medley/agentic-sales-framework-sub000/internal/types"
	"github.com/medley/agentic-sales-framework-sub000/internal/validation"
)

// DefaultVariantCount is how many candidate variants the generation engine
// is asked for per prospect.
const DefaultVariantCount = 3

// Default returns the built-in configuration: a manufacturing-focused persona
// table, strategy catalog, channel constraints, and tier content rules.
func Default() *Config {
	return &Config{
		Personas:           defaultPersonas(),
		DefaultPersonaID:   "general",
		ResolutionStrategy: persona.StrategyMostRestrictive,

		Angles:         defaultAngles(),
		Offers:         defaultOffers(),
		DefaultAngleID: "data_blindspots",
		DefaultOfferID: "benchmark_report",
		ScoreWeights:   strategy.DefaultScoreWeights(),
		AnglePriority:  []string{"audit_readiness", "downtime_reduction", "cost_visibility", "data_blindspots"},
		ScoreEpsilon:   strategy.DefaultEpsilon,
		MaxCandidates:  strategy.DefaultMaxCandidates,
		ScorerEnabled:  true,

		Channels:  defaultChannels(),
		TierRules: defaultTierRules(),

		MinAbsoluteTerms: 2,
		MinTermCoverage:  0.4,

		ProductLexicon:  defaultLexicon(),
		EntityAllowList: validation.DefaultEntityAllowList,

		MaxRepairs:   repair.DefaultMaxRepairs,
		VariantCount: DefaultVariantCount,
	}
}

func defaultPersonas() []types.PersonaProfile {
	return []types.PersonaProfile{
		{
			ID:                "quality",
			DisplayName:       "Quality & Regulatory",
			TitlePatterns:     []string{"quality", "qa ", "regulatory affairs", "compliance officer"},
			EligibleProducts:  []string{"qms", "compliance_docs"},
			SecondaryProducts: []string{"analytics"},
			ForbiddenProducts: []string{"finops"},
			SafeAngleID:       "audit_readiness",
			AutomationAllowed: true,
			ConfidenceCap:     types.TierHigh,
		},
		{
			ID:                "operations",
			DisplayName:       "Operations",
			TitlePatterns:     []string{"operations", "plant manager", "supply chain", "manufacturing"},
			EligibleProducts:  []string{"mes", "analytics"},
			SecondaryProducts: []string{"qms"},
			ForbiddenProducts: []string{"finops"},
			SafeAngleID:       "downtime_reduction",
			AutomationAllowed: true,
			ConfidenceCap:     types.TierHigh,
		},
		{
			ID:                "finance",
			DisplayName:       "Finance",
			TitlePatterns:     []string{"finance", "cfo", "controller", "treasurer"},
			EligibleProducts:  []string{"finops", "analytics"},
			SecondaryProducts: []string{},
			ForbiddenProducts: []string{"qms", "mes"},
			SafeAngleID:       "cost_visibility",
			AutomationAllowed: false,
			ConfidenceCap:     types.TierMedium,
		},
		{
			ID:                "general",
			DisplayName:       "General Business",
			TitlePatterns:     []string{"business leader"},
			EligibleProducts:  []string{"analytics"},
			SecondaryProducts: []string{},
			ForbiddenProducts: []string{"finops"},
			SafeAngleID:       "data_blindspots",
			AutomationAllowed: false,
			ConfidenceCap:     types.TierLow,
		},
	}
}

func defaultAngles() []types.Angle {
	return []types.Angle{
		{
			ID:             "audit_readiness",
			Name:           "Audit readiness",
			Description:    "Reduce audit preparation effort and close compliance gaps before inspectors find them",
			TargetPersonas: []string{"quality"},
			Products:       []string{"qms", "compliance_docs"},
			PainAreas:      []string{"audit_prep", "compliance_risk"},
			Keywords:       []string{"pharma", "medical", "biotech", "manufacturing"},
			SignalScopes:   []types.SignalScope{types.ScopeRegulatory, types.ScopeCompanySpecific},
		},
		{
			ID:             "downtime_reduction",
			Name:           "Downtime reduction",
			Description:    "Cut unplanned line stoppages by surfacing failure patterns earlier",
			TargetPersonas: []string{"operations"},
			Products:       []string{"mes", "analytics"},
			PainAreas:      []string{"downtime", "throughput"},
			Keywords:       []string{"manufacturing", "industrial", "automotive"},
			SignalScopes:   []types.SignalScope{types.ScopeCompanySpecific, types.ScopeIndustryWide},
		},
		{
			ID:             "cost_visibility",
			Name:           "Cost visibility",
			Description:    "Give finance a live view of production cost drivers instead of month-end surprises",
			TargetPersonas: []string{"finance"},
			Products:       []string{"finops", "analytics"},
			PainAreas:      []string{"cost_overrun", "budget_visibility"},
			Keywords:       []string{"manufacturing", "logistics"},
			SignalScopes:   []types.SignalScope{types.ScopeCompanySpecific},
		},
		{
			ID:             "data_blindspots",
			Name:           "Data blind spots",
			Description:    "Most teams discover reporting gaps only when a decision already went wrong",
			TargetPersonas: []string{"quality", "operations", "finance", "general"},
			Products:       []string{"analytics"},
			PainAreas:      []string{"reporting"},
			Keywords:       []string{},
			SignalScopes:   []types.SignalScope{types.ScopeIndustryWide, types.ScopeCompanySpecific},
		},
	}
}

func defaultOffers() []types.Offer {
	return []types.Offer{
		{
			ID:             "audit_gap_checklist",
			Name:           "Audit gap checklist",
			Description:    "A 20-point self-assessment against common inspection findings",
			TargetPersonas: []string{"quality"},
			Products:       []string{"qms", "compliance_docs"},
			PainAreas:      []string{"audit_prep", "compliance_risk"},
		},
		{
			ID:             "line_walkthrough",
			Name:           "Line walkthrough",
			Description:    "A 30-minute working session mapping one production line's stoppage causes",
			TargetPersonas: []string{"operations"},
			Products:       []string{"mes", "analytics"},
			PainAreas:      []string{"downtime", "throughput"},
		},
		{
			ID:             "spend_baseline_review",
			Name:           "Spend baseline review",
			Description:    "A read-only baseline of production cost drivers from existing exports",
			TargetPersonas: []string{"finance"},
			Products:       []string{"finops"},
			PainAreas:      []string{"cost_overrun", "budget_visibility"},
		},
		{
			ID:             "benchmark_report",
			Name:           "Benchmark report",
			Description:    "An anonymized industry benchmark for the prospect's segment",
			TargetPersonas: []string{"quality", "operations", "finance", "general"},
			Products:       []string{"analytics"},
			PainAreas:      []string{"reporting"},
		},
	}
}

func defaultChannels() map[types.Channel]types.StructuralConstraints {
	return map[types.Channel]types.StructuralConstraints{
		types.ChannelEmail: {
			Channel:             types.ChannelEmail,
			MinWords:            50,
			MaxWords:            100,
			MinSentences:        3,
			MaxSentences:        6,
			SubjectRequired:     true,
			MaxSubjectWords:     8,
			MustEndWithQuestion: true,
		},
		types.ChannelLinkedIn: {
			Channel:         types.ChannelLinkedIn,
			MinWords:        30,
			MaxWords:        70,
			MinSentences:    1,
			MaxSentences:    3,
			SubjectRequired: false,
			MaxSubjectWords: 0,
			CountParagraphs: true,
		},
	}
}

func defaultTierRules() map[string]types.ContentRules {
	return map[string]types.ContentRules{
		"high": {
			MaxSignalRefs: 3,
			AllowedProvenances: []types.Provenance{
				types.ProvenancePublicURL, types.ProvenanceUserProvided,
			},
		},
		"medium": {
			MaxSignalRefs: 2,
			AllowedProvenances: []types.Provenance{
				types.ProvenancePublicURL, types.ProvenanceUserProvided,
			},
		},
		"low": {
			MaxSignalRefs:        0,
			ForbidNumerics:       true,
			ForbidEntities:       true,
			ForbidExplicitClaims: true,
			AllowedProvenances:   []types.Provenance{},
		},
		"generic": {
			MaxSignalRefs:        0,
			ForbidCompanyName:    true,
			ForbidNumerics:       true,
			ForbidEntities:       true,
			ForbidExplicitClaims: true,
			AllowedProvenances:   []types.Provenance{},
		},
	}
}

func defaultLexicon() validation.ProductLexicon {
	return validation.ProductLexicon{
		"qms": {
			Phrases:     []string{"quality management suite", "document control module", "batch record review"},
			Identifiers: []string{"QualitySuite"},
		},
		"mes": {
			Phrases:     []string{"manufacturing execution system", "shop floor tracking"},
			Identifiers: []string{"LineTrack"},
		},
		"analytics": {
			Phrases:     []string{"analytics workbench", "reporting dashboards"},
			Identifiers: []string{"InsightHub"},
		},
		"compliance_docs": {
			Phrases:     []string{"controlled document vault", "submission package builder"},
			Identifiers: []string{"DocVault"},
		},
		"finops": {
			Phrases:     []string{"cost intelligence module", "spend analytics suite"},
			Identifiers: []string{"CostLens"},
		},
	}
}
