// Package config provides configuration loading and validation for the
// outreach agent. Configuration is an explicit immutable value constructed
// once at process start and passed by reference into every component; nothing
// here mutates after Load returns.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/medley/agentic-sales-framework-sub000/internal/persona"
	"github.com/medley/agentic-sales-framework-sub000/internal/strategy"
	"github.com/medley/agentic-sales-framework-sub000/internal/types"
	"github.com/medley/agentic-sales-framework-sub000/internal/validation"
)

// Config is the full policy configuration: persona table, strategy catalog,
// constraint tables, detection lexicons, and runtime settings.
type Config struct {
	// Persona resolution
	Personas           []types.PersonaProfile     `json:"personas" validate:"required,min=1,dive"`
	DefaultPersonaID   string                     `json:"default_persona_id" validate:"required"`
	ResolutionStrategy persona.ResolutionStrategy `json:"resolution_strategy,omitempty"`

	// Strategy catalog
	Angles         []types.Angle         `json:"angles" validate:"required,min=1,dive"`
	Offers         []types.Offer         `json:"offers" validate:"required,min=1,dive"`
	DefaultAngleID string                `json:"default_angle_id" validate:"required"`
	DefaultOfferID string                `json:"default_offer_id" validate:"required"`
	ScoreWeights   strategy.ScoreWeights `json:"score_weights"`
	AnglePriority  []string              `json:"angle_priority,omitempty"`
	ScoreEpsilon   float64               `json:"score_epsilon,omitempty"`
	MaxCandidates  int                   `json:"max_candidates,omitempty"`
	ScorerEnabled  bool                  `json:"scorer_enabled"`

	// Constraint tables
	Channels  map[types.Channel]types.StructuralConstraints `json:"channels" validate:"required,min=1"`
	TierRules map[string]types.ContentRules                 `json:"tier_rules" validate:"required,min=1"`

	// Semantic coverage thresholds
	MinAbsoluteTerms int     `json:"min_absolute_terms"`
	MinTermCoverage  float64 `json:"min_term_coverage" validate:"gte=0,lte=1"`

	// Forbidden-product detection
	ProductLexicon  validation.ProductLexicon `json:"product_lexicon"`
	EntityAllowList []string                  `json:"entity_allow_list,omitempty"`

	// Repair
	MaxRepairs int `json:"max_repairs,omitempty"`

	// Generation
	VariantCount int `json:"variant_count,omitempty"`

	// Runtime
	APIKey      string `json:"api_key,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`
	Verbose     bool   `json:"verbose,omitempty"`
	// FetchCitations enables resolving citation URLs over HTTP before
	// extraction. Off by default so runs stay fully offline.
	FetchCitations bool `json:"fetch_citations,omitempty"`
}

// Load reads a JSON config file, overlays it on Default(), and validates the
// result.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural validity of the configuration plus the
// cross-references the struct tags cannot express.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if _, err := c.Resolver(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	angleIDs := make(map[string]bool, len(c.Angles))
	for _, a := range c.Angles {
		angleIDs[a.ID] = true
	}

	for id, p := range personaIndex(c.Personas) {
		if !angleIDs[p.SafeAngleID] {
			return fmt.Errorf("config error: persona %q safe angle %q not found in angle catalog", id, p.SafeAngleID)
		}
		for _, product := range p.EligibleProducts {
			if containsString(p.ForbiddenProducts, product) {
				return fmt.Errorf("config error: persona %q lists %q as both eligible and forbidden", id, product)
			}
		}
		for _, product := range p.SecondaryProducts {
			if containsString(p.ForbiddenProducts, product) {
				return fmt.Errorf("config error: persona %q lists %q as both secondary and forbidden", id, product)
			}
			if containsString(p.EligibleProducts, product) {
				return fmt.Errorf("config error: persona %q lists %q as both eligible and secondary", id, product)
			}
		}
	}

	for name := range c.TierRules {
		switch name {
		case "generic", "low", "medium", "high":
		default:
			return fmt.Errorf("config error: unknown tier %q in tier_rules", name)
		}
	}

	return nil
}

// Resolver builds the persona resolver from the configured table
func (c *Config) Resolver() (*persona.Resolver, error) {
	return persona.NewResolver(c.Personas, c.DefaultPersonaID, c.ResolutionStrategy)
}

// Catalog builds the strategy catalog from the configured angles and offers
func (c *Config) Catalog() (*strategy.Catalog, error) {
	catalog, err := strategy.NewCatalog(c.Angles, c.Offers, c.DefaultAngleID, c.DefaultOfferID)
	if err != nil {
		return nil, err
	}
	catalog.Weights = c.ScoreWeights
	catalog.Priority = c.AnglePriority
	if c.ScoreEpsilon > 0 {
		catalog.Epsilon = c.ScoreEpsilon
	}
	if c.MaxCandidates > 0 {
		catalog.MaxCandidates = c.MaxCandidates
	}
	return catalog, nil
}

// Suite builds the validator suite from the configured lexicons
func (c *Config) Suite() *validation.Suite {
	return validation.NewSuite(c.ProductLexicon, c.EntityAllowList)
}

// ConstraintsFor resolves the brief constraints for a channel and tier.
// Unknown channels fall back to email; unknown tiers to the generic rules.
func (c *Config) ConstraintsFor(channel types.Channel, tier types.ConfidenceTier) types.BriefConstraints {
	structural, ok := c.Channels[channel]
	if !ok {
		structural = c.Channels[types.ChannelEmail]
	}
	content, ok := c.TierRules[tier.String()]
	if !ok {
		content = c.TierRules[types.TierGeneric.String()]
	}
	content.Tier = tier

	return types.BriefConstraints{
		Structural:       structural,
		Content:          content,
		MinAbsoluteTerms: c.MinAbsoluteTerms,
		MinTermCoverage:  c.MinTermCoverage,
	}
}

func personaIndex(personas []types.PersonaProfile) map[string]types.PersonaProfile {
	idx := make(map[string]types.PersonaProfile, len(personas))
	for _, p := range personas {
		idx[p.ID] = p
	}
	return idx
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
