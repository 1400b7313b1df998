package models

type EmergencySeverity string

const (
	EmergencySeverityCritical EmergencySeverity = "critical"
	EmergencySeveritySevere   EmergencySeverity = "severe"
)

// EmergencyProtocol is the safety payload surfaced to the caller the moment
// an emergency indicator is detected. Delivery is safety-critical and must
// never be silently dropped.
type EmergencyProtocol struct {
	Severity         EmergencySeverity `json:"severity" bson:"severity"`
	Reason           string            `json:"reason" bson:"reason"`
	TriggerQuestion  string            `json:"trigger_question" bson:"triggerQuestion"`
	ContactNumbers   []string          `json:"contact_numbers" bson:"contactNumbers"`
	ImmediateActions []string          `json:"immediate_actions" bson:"immediateActions"`
	SafetyPlan       []string          `json:"safety_plan" bson:"safetyPlan"`
}
