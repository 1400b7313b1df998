package clinical

// Crisis resources surfaced with every emergency protocol. CVV is the
// national suicide-prevention line, SAMU the medical emergency service.
var (
	crisisContactNumbers = []string{"188 (CVV)", "192 (SAMU)", "190 (Police)"}

	suicideImmediateActions = []string{
		"Display crisis resources before any further content",
		"Offer immediate connection to the crisis line",
		"Notify the on-call clinical team",
	}

	physicalImmediateActions = []string{
		"Advise the user to call emergency services now",
		"Display nearest emergency department information",
		"Notify the on-call clinical team",
	}

	safetyPlanChecklist = []string{
		"Identify personal warning signs",
		"List internal coping strategies",
		"List people and places that provide distraction",
		"List contacts to ask for help",
		"Restrict access to lethal means",
	}
)

// depressionActions maps PHQ-9 severity bands to their fixed care actions.
var depressionActions = map[Severity][]RecommendedAction{
	SeverityCritical: {
		{Action: "Immediate safety assessment and crisis intervention", Evidence: GradeA, Priority: 10, TimeToInterventionH: 0},
		{Action: "Same-day psychiatric evaluation", Evidence: GradeA, Priority: 10, TimeToInterventionH: 4},
	},
	SeveritySevere: {
		{Action: "Psychiatric referral for medication evaluation", Evidence: GradeA, Priority: 9, TimeToInterventionH: 48},
		{Action: "Begin structured psychotherapy", Evidence: GradeA, Priority: 8, TimeToInterventionH: 168},
	},
	SeverityModerate: {
		{Action: "Refer to psychotherapy", Evidence: GradeA, Priority: 6, TimeToInterventionH: 336},
		{Action: "Consider pharmacotherapy per patient preference", Evidence: GradeB, Priority: 5, TimeToInterventionH: 336},
	},
	SeverityMild: {
		{Action: "Guided self-help and behavioral activation", Evidence: GradeB, Priority: 4, TimeToInterventionH: 720},
		{Action: "Re-screen in four weeks", Evidence: GradeC, Priority: 3, TimeToInterventionH: 720},
	},
	SeverityMinimal: {
		{Action: "Provide psychoeducation material", Evidence: GradeC, Priority: 2, TimeToInterventionH: 0},
		{Action: "Re-screen at next routine contact", Evidence: GradeExpert, Priority: 1, TimeToInterventionH: 0},
	},
}

// anxietyActions maps GAD-7 severity bands to their fixed care actions.
var anxietyActions = map[Severity][]RecommendedAction{
	SeveritySevere: {
		{Action: "Psychiatric referral for anxiety disorder evaluation", Evidence: GradeA, Priority: 9, TimeToInterventionH: 72},
		{Action: "Begin cognitive behavioral therapy", Evidence: GradeA, Priority: 8, TimeToInterventionH: 168},
	},
	SeverityModerate: {
		{Action: "Refer to cognitive behavioral therapy", Evidence: GradeA, Priority: 6, TimeToInterventionH: 336},
	},
	SeverityMild: {
		{Action: "Guided relaxation and self-help resources", Evidence: GradeB, Priority: 3, TimeToInterventionH: 720},
	},
	SeverityMinimal: {
		{Action: "No intervention indicated; routine monitoring", Evidence: GradeExpert, Priority: 1, TimeToInterventionH: 0},
	},
}

// wellbeingActions maps WHO-5 outcomes to follow-up actions.
var wellbeingActions = map[Severity][]RecommendedAction{
	SeverityModerate: {
		{Action: "Administer full depression screen", Evidence: GradeA, Priority: 5, TimeToInterventionH: 168},
	},
	SeverityMild: {
		{Action: "Lifestyle counseling and well-being follow-up", Evidence: GradeB, Priority: 3, TimeToInterventionH: 720},
	},
	SeverityMinimal: {
		{Action: "No intervention indicated", Evidence: GradeExpert, Priority: 1, TimeToInterventionH: 0},
	},
}

// ICD-10-style codes per instrument and severity.
var depressionICD10 = map[Severity][]string{
	SeverityCritical: {"F32.3", "R45.851"},
	SeveritySevere:   {"F32.2"},
	SeverityModerate: {"F32.1"},
	SeverityMild:     {"F32.0"},
	SeverityMinimal:  {},
}

// depressionScreeningCode is attached for totals of 5-9, which warrant a
// screening code but no depression diagnosis.
const depressionScreeningCode = "Z13.31"

var anxietyICD10 = map[Severity][]string{
	SeveritySevere:   {"F41.1"},
	SeverityModerate: {"F41.1"},
	SeverityMild:     {"F41.9"},
	SeverityMinimal:  {},
}

var wellbeingICD10 = map[Severity][]string{
	SeverityModerate: {"Z13.31"},
	SeverityMild:     {"Z73.0"},
	SeverityMinimal:  {},
}
