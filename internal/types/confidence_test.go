package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidenceTier_Ordering(t *testing.T) {
	assert.True(t, TierGeneric < TierLow)
	assert.True(t, TierLow < TierMedium)
	assert.True(t, TierMedium < TierHigh)
}

func TestParseConfidenceTier(t *testing.T) {
	assert.Equal(t, TierHigh, ParseConfidenceTier("high"))
	assert.Equal(t, TierMedium, ParseConfidenceTier("medium"))
	assert.Equal(t, TierLow, ParseConfidenceTier("low"))
	assert.Equal(t, TierGeneric, ParseConfidenceTier("generic"))

	// Unknown names degrade to the safest tier.
	assert.Equal(t, TierGeneric, ParseConfidenceTier("maximum"))
	assert.Equal(t, TierGeneric, ParseConfidenceTier(""))
}

func TestConfidenceTier_JSONRoundTrip(t *testing.T) {
	encoded, err := json.Marshal(TierMedium)
	require.NoError(t, err)
	assert.Equal(t, `"medium"`, string(encoded))

	var decoded ConfidenceTier
	require.NoError(t, json.Unmarshal([]byte(`"high"`), &decoded))
	assert.Equal(t, TierHigh, decoded)
}
