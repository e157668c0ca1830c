// Package strategy selects a messaging angle and offer for a prospect,
// filtered by the persona's product policy. Selection never returns "no
// strategy": a configured default backs every path.
package strategy

import (
	"fmt"

	"github.com/medley/agentic-sales-framework-sub000/internal/types"
)

// DefaultMaxCandidates caps the scored candidate list
const DefaultMaxCandidates = 5

// DefaultEpsilon is the weighted-score gap under which the static priority
// ordering breaks the tie.
const DefaultEpsilon = 0.05

// ScoreWeights are the weights applied to the scorer's three sub-scores
type ScoreWeights struct {
	Relevance       float64 `json:"relevance"`
	Urgency         float64 `json:"urgency"`
	ReplyLikelihood float64 `json:"reply_likelihood"`
}

// DefaultScoreWeights returns the standard weighting
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Relevance: 0.5, Urgency: 0.2, ReplyLikelihood: 0.3}
}

// Catalog is the static strategy table: every known angle and offer plus the
// selection configuration. Loaded once from configuration, read-only after.
type Catalog struct {
	Angles         []types.Angle `json:"angles"`
	Offers         []types.Offer `json:"offers"`
	DefaultAngleID string        `json:"default_angle_id"`
	DefaultOfferID string        `json:"default_offer_id"`

	Weights ScoreWeights `json:"weights"`
	// Priority is the static angle ordering used to break near-ties in
	// weighted scores.
	Priority      []string `json:"priority"`
	Epsilon       float64  `json:"epsilon"`
	MaxCandidates int      `json:"max_candidates"`
}

// NewCatalog validates a catalog and fills defaulted fields
func NewCatalog(angles []types.Angle, offers []types.Offer, defaultAngleID, defaultOfferID string) (*Catalog, error) {
	c := &Catalog{
		Angles:         angles,
		Offers:         offers,
		DefaultAngleID: defaultAngleID,
		DefaultOfferID: defaultOfferID,
		Weights:        DefaultScoreWeights(),
		Epsilon:        DefaultEpsilon,
		MaxCandidates:  DefaultMaxCandidates,
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

// Check verifies the catalog's internal references
func (c *Catalog) Check() error {
	if len(c.Angles) == 0 {
		return fmt.Errorf("catalog has no angles")
	}
	if len(c.Offers) == 0 {
		return fmt.Errorf("catalog has no offers")
	}
	if c.AngleByID(c.DefaultAngleID) == nil {
		return fmt.Errorf("default angle %q not in catalog", c.DefaultAngleID)
	}
	if c.OfferByID(c.DefaultOfferID) == nil {
		return fmt.Errorf("default offer %q not in catalog", c.DefaultOfferID)
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = DefaultMaxCandidates
	}
	if c.Epsilon <= 0 {
		c.Epsilon = DefaultEpsilon
	}
	return nil
}

// AngleByID returns the angle with the given id, or nil
func (c *Catalog) AngleByID(id string) *types.Angle {
	for i := range c.Angles {
		if c.Angles[i].ID == id {
			return &c.Angles[i]
		}
	}
	return nil
}

// OfferByID returns the offer with the given id, or nil
func (c *Catalog) OfferByID(id string) *types.Offer {
	for i := range c.Offers {
		if c.Offers[i].ID == id {
			return &c.Offers[i]
		}
	}
	return nil
}

// priorityIndex returns the angle's position in the static priority ordering,
// or a large sentinel when unlisted.
func (c *Catalog) priorityIndex(angleID string) int {
	for i, id := range c.Priority {
		if id == angleID {
			return i
		}
	}
	return len(c.Priority) + 1000
}
