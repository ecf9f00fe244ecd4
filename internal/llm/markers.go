package llm

import "strings"

const (
	// MarkerAttackSucceeded is emitted when the simulated target was fooled.
	MarkerAttackSucceeded = "[SUCCESS_ATTACK]"
	// MarkerAttackBlocked is emitted when the target permanently refused.
	MarkerAttackBlocked = "[ATTACK_FAILED]"
)

// Outcome is the state of a roleplay from the participant's point of view.
type Outcome string

const (
	OutcomeOngoing   Outcome = "ongoing"
	OutcomeFailed    Outcome = "failed"
	OutcomeCompleted Outcome = "completed"
)

// ExtractOutcome maps the first matching control marker to an outcome and
// removes that marker from the reply. The success marker is checked first.
func ExtractOutcome(reply string) (string, Outcome) {
	switch {
	case strings.Contains(reply, MarkerAttackSucceeded):
		return strings.ReplaceAll(reply, MarkerAttackSucceeded, ""), OutcomeFailed
	case strings.Contains(reply, MarkerAttackBlocked):
		return strings.ReplaceAll(reply, MarkerAttackBlocked, ""), OutcomeCompleted
	}
	return reply, OutcomeOngoing
}
