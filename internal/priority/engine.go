// Package priority computes a derived urgency score for tickets. Higher
// scores mean more urgent. The score is recomputed from a fresh snapshot on
// every request and is distinct from the vendor-assigned priority label.
package priority

import (
	"strings"
	"time"

	"github.com/hellausefulsoftware/zendesk-mcp/internal/models"
)

// slaTag marks tickets covered by an enterprise service-level agreement.
const slaTag = "sla_enterprise"

const (
	slaBonus          = 100.0
	ageWeightPerDay   = 5.0
	staleWeightPerDay = 10.0
	hoursPerDay       = 24.0
)

// statusWeights maps a lowercased ticket status to its urgency
// contribution. Statuses not listed contribute nothing. Note that "new"
// carries weight here even though the agent-ticket search elsewhere does
// not include it; the two status sets are intentionally separate.
var statusWeights = map[string]float64{
	"open":                           100,
	"new":                            75,
	"pending":                        25,
	"feature request review pending": 0,
	"eng confirmed bug":              0,
}

// Factor names in score breakdowns.
const (
	FactorSLA      = "sla"
	FactorAge      = "age"
	FactorResponse = "response"
	FactorStatus   = "status"
)

// Score folds a ticket snapshot and its comments into a single urgency
// integer. It is a pure function of its arguments; all time arithmetic is
// done in UTC. A ticket created in the future simply contributes a negative
// age component.
func Score(t models.Ticket, comments []models.Comment, now time.Time) int {
	score, _ := Breakdown(t, comments, now)
	return score
}

// Breakdown is Score plus the per-factor contributions, for callers that
// report why a ticket ranked where it did.
func Breakdown(t models.Ticket, comments []models.Comment, now time.Time) (int, map[string]float64) {
	factors := map[string]float64{
		FactorSLA:      0,
		FactorAge:      0,
		FactorResponse: 0,
		FactorStatus:   0,
	}

	for _, tag := range t.Tags {
		if tag == slaTag {
			factors[FactorSLA] = slaBonus
			break
		}
	}

	ageHours := now.UTC().Sub(t.CreatedAt.UTC()).Hours()
	factors[FactorAge] = ageHours / hoursPerDay * ageWeightPerDay

	if latest, ok := latestComment(comments); ok {
		staleHours := now.UTC().Sub(latest.CreatedAt.UTC()).Hours()
		factors[FactorResponse] = staleHours / hoursPerDay * staleWeightPerDay
	}

	factors[FactorStatus] = statusWeights[strings.ToLower(t.Status)]

	total := 0.0
	for _, v := range factors {
		total += v
	}

	// Truncate, not round.
	return int(total), factors
}

// latestComment returns the comment with the greatest creation time. When
// several comments share the maximum timestamp the first one encountered
// wins; timestamps are distinct in practice so the pick is arbitrary but
// harmless.
func latestComment(comments []models.Comment) (models.Comment, bool) {
	if len(comments) == 0 {
		return models.Comment{}, false
	}

	latest := comments[0]
	for _, c := range comments[1:] {
		if c.CreatedAt.After(latest.CreatedAt) {
			latest = c
		}
	}
	return latest, true
}
