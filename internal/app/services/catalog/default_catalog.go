package catalog

// Default builds the built-in onboarding questionnaire: a universal triage
// domain plus the conditional clinical domains it can trigger.
func Default() (*Catalog, error) {
	return New(DomainTriage, defaultDomains())
}

const (
	DomainTriage              = "universal_triage"
	DomainMentalHealth        = "mental_health"
	DomainWellbeing           = "wellbeing"
	DomainPainManagement      = "pain_management"
	DomainChronicDisease      = "chronic_disease"
	DomainLifestyle           = "lifestyle"
	DomainSubstanceMonitoring = "substance_monitoring"
	DomainRiskBehaviors       = "risk_behaviors"
)

// likert builds the standard 0-3 frequency options used by PHQ-9 and GAD-7.
func likert() []Option {
	return []Option{
		{Value: NumberValue(0), Label: "Not at all", RiskScore: 0},
		{Value: NumberValue(1), Label: "Several days", RiskScore: 1},
		{Value: NumberValue(2), Label: "More than half the days", RiskScore: 2},
		{Value: NumberValue(3), Label: "Nearly every day", RiskScore: 3},
	}
}

// whoLikert builds the 0-5 WHO-5 options. Scoring is inverted: low values
// indicate poor well-being, so risk scores run opposite the option values.
func whoLikert() []Option {
	labels := []string{
		"At no time", "Some of the time", "Less than half of the time",
		"More than half of the time", "Most of the time", "All of the time",
	}
	opts := make([]Option, len(labels))
	for i, label := range labels {
		opts[i] = Option{Value: NumberValue(float64(i)), Label: label, RiskScore: 5 - i}
	}
	return opts
}

func numericScale(max int) []Option {
	opts := make([]Option, max+1)
	for i := 0; i <= max; i++ {
		opts[i] = Option{Value: NumberValue(float64(i)), Label: "", RiskScore: i}
	}
	return opts
}

func phq9Question(id, text string, num int) Question {
	q := Question{
		ID:          id,
		Text:        text,
		Type:        QuestionTypeScale,
		Instrument:  InstrumentPHQ9,
		Options:     likert(),
		RiskWeight:  2,
		Sensitivity: SensitivityHigh,
	}
	if num == 9 {
		q.Emergency = EmergencyRoleSuicidalIdeation
		q.RiskWeight = 5
		q.Sensitivity = SensitivityCritical
	}
	return q
}

func gad7Question(id, text string) Question {
	return Question{
		ID:          id,
		Text:        text,
		Type:        QuestionTypeScale,
		Instrument:  InstrumentGAD7,
		Options:     likert(),
		RiskWeight:  2,
		Sensitivity: SensitivityHigh,
	}
}

func who5Question(id, text string) Question {
	return Question{
		ID:          id,
		Text:        text,
		Type:        QuestionTypeScale,
		Instrument:  InstrumentWHO5,
		Options:     whoLikert(),
		RiskWeight:  1,
		Sensitivity: SensitivityMedium,
	}
}

func defaultDomains() []Domain {
	return []Domain{
		{
			Name:  DomainTriage,
			Class: ClassTriage,
			Questions: []Question{
				{
					ID: "age", Text: "How old are you?",
					Type: QuestionTypeNumber, RiskWeight: 1, Sensitivity: SensitivityLow,
				},
				{
					ID: "biological_sex", Text: "What is your biological sex?",
					Type: QuestionTypeSelect, RiskWeight: 0, Sensitivity: SensitivityLow,
					Options: []Option{
						{Value: TextValue("male"), Label: "Male"},
						{Value: TextValue("female"), Label: "Female"},
						{Value: TextValue("intersex"), Label: "Intersex"},
					},
				},
				{
					ID: "emergency_check", Text: "Are you currently experiencing any of these symptoms?",
					Type: QuestionTypeMultiselect, Emergency: EmergencyRoleEmergencySymptoms,
					RiskWeight: 5, Sensitivity: SensitivityCritical,
					Options: []Option{
						{Value: TextValue(EmergencySymptomNone), Label: "None of the above"},
						{Value: TextValue("chest_pain"), Label: "Chest pain or pressure", RiskScore: 10},
						{Value: TextValue("breathing_difficulty"), Label: "Severe difficulty breathing", RiskScore: 10},
						{Value: TextValue("severe_bleeding"), Label: "Severe bleeding", RiskScore: 10},
						{Value: TextValue("fainting"), Label: "Fainting or loss of consciousness", RiskScore: 8},
					},
				},
				{
					ID: "pain_severity", Text: "On a scale of 0 to 10, how severe is your pain right now?",
					Type: QuestionTypeScale, Options: numericScale(10),
					RiskWeight: 2, Sensitivity: SensitivityMedium,
				},
				{
					ID: "mood_interest", Text: "Over the last two weeks, how often have you felt down or had little interest in doing things?",
					Type: QuestionTypeScale, Options: likert(),
					RiskWeight: 3, Sensitivity: SensitivityHigh,
				},
				{
					ID: "chronic_conditions_flag", Text: "Have you ever been diagnosed with a chronic condition?",
					Type: QuestionTypeBoolean, RiskWeight: 2, Sensitivity: SensitivityMedium,
				},
			},
		},
		{
			Name:  DomainMentalHealth,
			Class: ClassMentalHealth,
			Triggers: []TriggerCondition{
				{QuestionID: "mood_interest", Operator: OperatorGreaterOrEqual, Operand: NumberValue(1)},
			},
			Questions: []Question{
				phq9Question("phq9_1", "Little interest or pleasure in doing things", 1),
				phq9Question("phq9_2", "Feeling down, depressed, or hopeless", 2),
				phq9Question("phq9_3", "Trouble falling or staying asleep, or sleeping too much", 3),
				phq9Question("phq9_4", "Feeling tired or having little energy", 4),
				phq9Question("phq9_5", "Poor appetite or overeating", 5),
				phq9Question("phq9_6", "Feeling bad about yourself or that you are a failure", 6),
				phq9Question("phq9_7", "Trouble concentrating on things", 7),
				phq9Question("phq9_8", "Moving or speaking slowly, or being fidgety or restless", 8),
				phq9Question("phq9_9", "Thoughts that you would be better off dead or of hurting yourself", 9),
				{
					ID: "harmful_thoughts", Text: "Are you currently having thoughts of harming yourself or others?",
					Type: QuestionTypeBoolean, Emergency: EmergencyRoleHarmfulThoughts,
					RiskWeight: 5, Sensitivity: SensitivityCritical,
				},
				gad7Question("gad7_1", "Feeling nervous, anxious, or on edge"),
				gad7Question("gad7_2", "Not being able to stop or control worrying"),
				gad7Question("gad7_3", "Worrying too much about different things"),
				gad7Question("gad7_4", "Trouble relaxing"),
				gad7Question("gad7_5", "Being so restless that it is hard to sit still"),
				gad7Question("gad7_6", "Becoming easily annoyed or irritable"),
				gad7Question("gad7_7", "Feeling afraid as if something awful might happen"),
			},
		},
		{
			Name:  DomainWellbeing,
			Class: ClassLifestyle,
			Triggers: []TriggerCondition{
				{QuestionID: "mood_interest", Operator: OperatorGreaterOrEqual, Operand: NumberValue(1)},
			},
			Questions: []Question{
				who5Question("who5_1", "I have felt cheerful and in good spirits"),
				who5Question("who5_2", "I have felt calm and relaxed"),
				who5Question("who5_3", "I have felt active and vigorous"),
				who5Question("who5_4", "I woke up feeling fresh and rested"),
				who5Question("who5_5", "My daily life has been filled with things that interest me"),
			},
		},
		{
			Name:  DomainPainManagement,
			Class: ClassPainManagement,
			Triggers: []TriggerCondition{
				{QuestionID: "pain_severity", Operator: OperatorGreaterOrEqual, Operand: NumberValue(4)},
			},
			Questions: []Question{
				{
					ID: "pain_location", Text: "Where is your pain located?",
					Type: QuestionTypeMultiselect, RiskWeight: 1, Sensitivity: SensitivityMedium,
					Options: []Option{
						{Value: TextValue("head"), Label: "Head", RiskScore: 2},
						{Value: TextValue("chest"), Label: "Chest", RiskScore: 4},
						{Value: TextValue("abdomen"), Label: "Abdomen", RiskScore: 3},
						{Value: TextValue("back"), Label: "Back", RiskScore: 1},
						{Value: TextValue("joints"), Label: "Joints", RiskScore: 1},
					},
				},
				{
					ID: "pain_duration", Text: "How long have you had this pain?",
					Type: QuestionTypeSelect, RiskWeight: 2, Sensitivity: SensitivityMedium,
					Options: []Option{
						{Value: TextValue("days"), Label: "A few days", RiskScore: 1},
						{Value: TextValue("weeks"), Label: "A few weeks", RiskScore: 2},
						{Value: TextValue("months"), Label: "Months", RiskScore: 3},
						{Value: TextValue("years"), Label: "Years", RiskScore: 4},
					},
				},
				{
					ID: "pain_interference", Text: "How much does pain interfere with your daily activities?",
					Type: QuestionTypeScale, Options: numericScale(10),
					RiskWeight: 2, Sensitivity: SensitivityMedium,
				},
			},
		},
		{
			Name:  DomainChronicDisease,
			Class: ClassChronicDisease,
			Triggers: []TriggerCondition{
				{QuestionID: "chronic_conditions_flag", Operator: OperatorEqual, Operand: BoolValue(true)},
			},
			Questions: []Question{
				{
					ID: "chronic_conditions", Text: "Which conditions have you been diagnosed with?",
					Type: QuestionTypeMultiselect, RiskWeight: 3, Sensitivity: SensitivityHigh,
					Options: []Option{
						{Value: TextValue("diabetes"), Label: "Diabetes", RiskScore: 3},
						{Value: TextValue("hypertension"), Label: "Hypertension", RiskScore: 3},
						{Value: TextValue("heart_disease"), Label: "Heart disease", RiskScore: 5},
						{Value: TextValue("asthma"), Label: "Asthma", RiskScore: 2},
						{Value: TextValue("cancer"), Label: "Cancer", RiskScore: 5},
						{Value: TextValue("other"), Label: "Other", RiskScore: 1},
					},
				},
				{
					ID: "medication_adherence", Text: "How often do you take your prescribed medication as directed?",
					Type: QuestionTypeScale, RiskWeight: 2, Sensitivity: SensitivityMedium,
					Options: []Option{
						{Value: NumberValue(0), Label: "Always", RiskScore: 0},
						{Value: NumberValue(1), Label: "Most of the time", RiskScore: 1},
						{Value: NumberValue(2), Label: "Sometimes", RiskScore: 2},
						{Value: NumberValue(3), Label: "Rarely or never", RiskScore: 4},
					},
				},
				{
					ID: "last_checkup", Text: "When was your last medical check-up?",
					Type: QuestionTypeSelect, RiskWeight: 1, Sensitivity: SensitivityLow,
					Options: []Option{
						{Value: TextValue("within_year"), Label: "Within the last year"},
						{Value: TextValue("one_to_two_years"), Label: "One to two years ago", RiskScore: 1},
						{Value: TextValue("over_two_years"), Label: "More than two years ago", RiskScore: 2},
						{Value: TextValue("never"), Label: "Never", RiskScore: 3},
					},
				},
			},
		},
		{
			Name:  DomainLifestyle,
			Class: ClassLifestyle,
			Triggers: []TriggerCondition{
				{QuestionID: "age", Operator: OperatorGreaterOrEqual, Operand: NumberValue(40)},
			},
			Questions: []Question{
				{
					ID: "exercise_frequency", Text: "How many days per week do you exercise for at least 30 minutes?",
					Type: QuestionTypeScale, Options: numericScale(7),
					RiskWeight: 1, Sensitivity: SensitivityLow,
				},
				{
					ID: "sleep_hours", Text: "How many hours do you usually sleep per night?",
					Type: QuestionTypeNumber, RiskWeight: 1, Sensitivity: SensitivityLow,
				},
				{
					ID: "smoking_status", Text: "Do you smoke?",
					Type: QuestionTypeSelect, RiskWeight: 3, Sensitivity: SensitivityMedium,
					Options: []Option{
						{Value: TextValue("never"), Label: "Never smoked"},
						{Value: TextValue("former"), Label: "Former smoker", RiskScore: 1},
						{Value: TextValue("current"), Label: "Current smoker", RiskScore: 4},
					},
				},
			},
		},
		{
			Name:  DomainSubstanceMonitoring,
			Class: ClassSubstanceMonitoring,
			Triggers: []TriggerCondition{
				{QuestionID: "smoking_status", Operator: OperatorEqual, Operand: TextValue("current")},
			},
			Questions: []Question{
				{
					ID: "alcohol_frequency", Text: "How often do you have a drink containing alcohol?",
					Type: QuestionTypeScale, RiskWeight: 2, Sensitivity: SensitivityHigh,
					Options: []Option{
						{Value: NumberValue(0), Label: "Never"},
						{Value: NumberValue(1), Label: "Monthly or less", RiskScore: 1},
						{Value: NumberValue(2), Label: "2-4 times a month", RiskScore: 2},
						{Value: NumberValue(3), Label: "2-3 times a week", RiskScore: 3},
						{Value: NumberValue(4), Label: "4 or more times a week", RiskScore: 4},
					},
				},
				{
					ID: "substance_use", Text: "In the last year, have you used any of the following?",
					Type: QuestionTypeMultiselect, RiskWeight: 3, Sensitivity: SensitivityHigh,
					Options: []Option{
						{Value: TextValue("none"), Label: "None"},
						{Value: TextValue("cannabis"), Label: "Cannabis", RiskScore: 2},
						{Value: TextValue("stimulants"), Label: "Stimulants", RiskScore: 4},
						{Value: TextValue("opioids"), Label: "Opioids", RiskScore: 5},
						{Value: TextValue("sedatives"), Label: "Sedatives without prescription", RiskScore: 4},
					},
				},
			},
		},
		{
			Name:  DomainRiskBehaviors,
			Class: ClassRiskBehaviors,
			Triggers: []TriggerCondition{
				{QuestionID: "alcohol_frequency", Operator: OperatorGreaterOrEqual, Operand: NumberValue(3)},
				{QuestionID: "substance_use", Operator: OperatorExcludes, Operand: TextValue("none")},
			},
			Questions: []Question{
				{
					ID: "driving_under_influence", Text: "In the last year, have you driven after drinking or using substances?",
					Type: QuestionTypeBoolean, RiskWeight: 4, Sensitivity: SensitivityHigh,
				},
				{
					ID: "wants_support", Text: "Would you like information about support programs?",
					Type: QuestionTypeBoolean, RiskWeight: 0, Sensitivity: SensitivityLow,
				},
			},
		},
	}
}
