package priority

import (
	"testing"
	"time"

	"github.com/hellausefulsoftware/zendesk-mcp/internal/models"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func ticketAgedHours(hours float64, status string, tags ...string) models.Ticket {
	return models.Ticket{
		ID:        1,
		Status:    status,
		Tags:      tags,
		CreatedAt: now.Add(-time.Duration(hours * float64(time.Hour))),
	}
}

func commentAgedHours(hours float64) models.Comment {
	return models.Comment{
		ID:        1,
		CreatedAt: now.Add(-time.Duration(hours * float64(time.Hour))),
	}
}

func TestScoreWorkedExample(t *testing.T) {
	// 24h old, status open, one comment 24h old, no tags:
	// 0 (tag) + 5 (age) + 10 (response) + 100 (status) = 115
	ticket := ticketAgedHours(24, "open")
	comments := []models.Comment{commentAgedHours(24)}

	if got := Score(ticket, comments, now); got != 115 {
		t.Errorf("Score = %d, want 115", got)
	}
}

func TestScoreSLATagAddsExactly100(t *testing.T) {
	comments := []models.Comment{commentAgedHours(6)}

	plain := Score(ticketAgedHours(48, "pending"), comments, now)
	tagged := Score(ticketAgedHours(48, "pending", "billing", "sla_enterprise"), comments, now)

	if tagged-plain != 100 {
		t.Errorf("sla_enterprise delta = %d, want 100", tagged-plain)
	}
}

func TestScoreStatusWeights(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{"open", 100},
		{"Open", 100},
		{"OPEN", 100},
		{"new", 75},
		{"pending", 25},
		{"Pending", 25},
		{"Feature Request Review Pending", 0},
		{"ENG Confirmed Bug", 0},
		{"solved", 0},
		{"closed", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			// Zero age and no comments isolate the status component.
			ticket := ticketAgedHours(0, tt.status)
			if got := Score(ticket, nil, now); got != tt.want {
				t.Errorf("Score with status %q = %d, want %d", tt.status, got, tt.want)
			}
		})
	}
}

func TestScoreMonotonicInAge(t *testing.T) {
	comments := []models.Comment{commentAgedHours(2)}

	prev := Score(ticketAgedHours(0, "open"), comments, now)
	for _, hours := range []float64{1, 5, 24, 100, 720, 8760} {
		score := Score(ticketAgedHours(hours, "open"), comments, now)
		if score < prev {
			t.Errorf("score decreased from %d to %d at age %.0fh", prev, score, hours)
		}
		prev = score
	}
}

func TestScoreMonotonicInCommentStaleness(t *testing.T) {
	ticket := ticketAgedHours(10000, "open")

	prev := Score(ticket, []models.Comment{commentAgedHours(0)}, now)
	for _, hours := range []float64{1, 5, 24, 100, 720} {
		score := Score(ticket, []models.Comment{commentAgedHours(hours)}, now)
		if score < prev {
			t.Errorf("score decreased from %d to %d at staleness %.0fh", prev, score, hours)
		}
		prev = score
	}
}

func TestScoreNoCommentsNoResponseComponent(t *testing.T) {
	// 48h old pending ticket: 10 (age) + 25 (status), no response term.
	ticket := ticketAgedHours(48, "pending")

	if got := Score(ticket, nil, now); got != 35 {
		t.Errorf("Score = %d, want 35", got)
	}
}

func TestScoreUsesLatestComment(t *testing.T) {
	ticket := ticketAgedHours(0, "")
	comments := []models.Comment{
		commentAgedHours(240),
		commentAgedHours(24), // latest: contributes exactly 10
		commentAgedHours(120),
	}

	if got := Score(ticket, comments, now); got != 10 {
		t.Errorf("Score = %d, want 10", got)
	}
}

func TestScoreTruncatesFraction(t *testing.T) {
	// 30h age: 30/24*5 = 6.25, truncated to 6.
	ticket := ticketAgedHours(30, "unknown-status")

	if got := Score(ticket, nil, now); got != 6 {
		t.Errorf("Score = %d, want 6", got)
	}
}

func TestScoreFutureCreationFlowsThrough(t *testing.T) {
	// A ticket created 48h in the future has a negative age component:
	// -10 (age) + 100 (status) = 90. No special-casing.
	ticket := ticketAgedHours(-48, "open")

	if got := Score(ticket, nil, now); got != 90 {
		t.Errorf("Score = %d, want 90", got)
	}
}

func TestBreakdownFactorsSumToScore(t *testing.T) {
	ticket := ticketAgedHours(100, "new", "sla_enterprise")
	comments := []models.Comment{commentAgedHours(36)}

	score, factors := Breakdown(ticket, comments, now)

	var sum float64
	for _, v := range factors {
		sum += v
	}
	if int(sum) != score {
		t.Errorf("factor sum %.2f truncates to %d, score is %d", sum, int(sum), score)
	}

	if factors[FactorSLA] != 100 {
		t.Errorf("sla factor = %.2f, want 100", factors[FactorSLA])
	}
	if factors[FactorStatus] != 75 {
		t.Errorf("status factor = %.2f, want 75", factors[FactorStatus])
	}
}
