package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	resolver, err := cfg.Resolver()
	require.NoError(t, err)
	assert.Equal(t, cfg.DefaultPersonaID, resolver.DefaultPersonaID())

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.NotNil(t, catalog.AngleByID(cfg.DefaultAngleID))
	assert.NotNil(t, catalog.OfferByID(cfg.DefaultOfferID))
}

func TestDefault_TierRulesCoverAllTiers(t *testing.T) {
	cfg := Default()
	for _, name := range []string{"generic", "low", "medium", "high"} {
		_, ok := cfg.TierRules[name]
		assert.True(t, ok, "missing tier rules for %s", name)
	}

	// Evidence budget tightens as the tier drops.
	assert.Greater(t, cfg.TierRules["high"].MaxSignalRefs, cfg.TierRules["medium"].MaxSignalRefs)
	assert.Zero(t, cfg.TierRules["generic"].MaxSignalRefs)
	assert.True(t, cfg.TierRules["generic"].ForbidNumerics)
	assert.True(t, cfg.TierRules["generic"].ForbidCompanyName)
}

func TestLoad_OverlaysOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"max_repairs": 4,
		"variant_count": 5,
		"min_term_coverage": 0.6
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxRepairs)
	assert.Equal(t, 5, cfg.VariantCount)
	assert.Equal(t, 0.6, cfg.MinTermCoverage)

	// Untouched sections keep their defaults.
	assert.NotEmpty(t, cfg.Personas)
	assert.NotEmpty(t, cfg.Angles)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate_RejectsOverlappingProductSets(t *testing.T) {
	cfg := Default()
	cfg.Personas[0].ForbiddenProducts = append(cfg.Personas[0].ForbiddenProducts, cfg.Personas[0].EligibleProducts[0])

	err := cfg.Validate()
	assert.ErrorContains(t, err, "both eligible and forbidden")
}

func TestValidate_RejectsUnknownTierName(t *testing.T) {
	cfg := Default()
	cfg.TierRules["maximum"] = types.ContentRules{}

	err := cfg.Validate()
	assert.ErrorContains(t, err, `unknown tier "maximum"`)
}

func TestValidate_RejectsDanglingSafeAngle(t *testing.T) {
	cfg := Default()
	cfg.Personas[0].SafeAngleID = "no_such_angle"

	err := cfg.Validate()
	assert.ErrorContains(t, err, "safe angle")
}

func TestValidate_RejectsDanglingDefaultAngle(t *testing.T) {
	cfg := Default()
	cfg.DefaultAngleID = "no_such_angle"

	err := cfg.Validate()
	assert.ErrorContains(t, err, "default angle")
}

func TestConstraintsFor(t *testing.T) {
	cfg := Default()

	bc := cfg.ConstraintsFor(types.ChannelEmail, types.TierHigh)
	assert.Equal(t, types.ChannelEmail, bc.Structural.Channel)
	assert.True(t, bc.Structural.SubjectRequired)
	assert.Equal(t, types.TierHigh, bc.Content.Tier)

	bc = cfg.ConstraintsFor(types.ChannelLinkedIn, types.TierLow)
	assert.False(t, bc.Structural.SubjectRequired)
	assert.True(t, bc.Structural.CountParagraphs)

	// Unknown channel falls back to email, unknown tier to generic rules.
	bc = cfg.ConstraintsFor(types.Channel("fax"), types.ConfidenceTier(42))
	assert.Equal(t, types.ChannelEmail, bc.Structural.Channel)
	assert.Zero(t, bc.Content.MaxSignalRefs)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenExpirationHours, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "72")
	cfg, err = NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "zero")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}
