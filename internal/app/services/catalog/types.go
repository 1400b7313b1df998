package catalog

// QuestionType discriminates the answer payload a question accepts.
type QuestionType string

const (
	QuestionTypeBoolean     QuestionType = "boolean"
	QuestionTypeScale       QuestionType = "scale"
	QuestionTypeSelect      QuestionType = "select"
	QuestionTypeMultiselect QuestionType = "multiselect"
	QuestionTypeText        QuestionType = "text"
	QuestionTypeNumber      QuestionType = "number"
)

type SensitivityLevel string

const (
	SensitivityLow      SensitivityLevel = "low"
	SensitivityMedium   SensitivityLevel = "medium"
	SensitivityHigh     SensitivityLevel = "high"
	SensitivityCritical SensitivityLevel = "critical"
)

// Instrument tags a question as belonging to a validated clinical screen.
type Instrument string

const (
	InstrumentNone Instrument = ""
	InstrumentPHQ9 Instrument = "phq9"
	InstrumentGAD7 Instrument = "gad7"
	InstrumentWHO5 Instrument = "who5"
)

// EmergencyRole marks questions whose answers can short-circuit the flow
// into the emergency protocol.
type EmergencyRole string

const (
	EmergencyRoleNone              EmergencyRole = ""
	EmergencyRoleSuicidalIdeation  EmergencyRole = "suicidal_ideation"
	EmergencyRoleHarmfulThoughts   EmergencyRole = "harmful_thoughts"
	EmergencyRoleEmergencySymptoms EmergencyRole = "emergency_symptoms"
)

// EmergencySymptomNone is the sentinel option meaning "none of the above"
// on an emergency-symptoms multiselect.
const EmergencySymptomNone = "none"

type ValueKind string

const (
	ValueKindNone   ValueKind = ""
	ValueKindBool   ValueKind = "bool"
	ValueKindNumber ValueKind = "number"
	ValueKindText   ValueKind = "text"
	ValueKindList   ValueKind = "list"
)

// Value is the tagged union carried by answers, option values and trigger
// condition operands. Exactly one payload field is meaningful, selected by Kind.
type Value struct {
	Kind   ValueKind `json:"kind"`
	Bool   bool      `json:"bool,omitempty"`
	Number float64   `json:"number,omitempty"`
	Text   string    `json:"text,omitempty"`
	List   []string  `json:"list,omitempty"`
}

func BoolValue(b bool) Value       { return Value{Kind: ValueKindBool, Bool: b} }
func NumberValue(n float64) Value  { return Value{Kind: ValueKindNumber, Number: n} }
func TextValue(s string) Value     { return Value{Kind: ValueKindText, Text: s} }
func ListValue(l []string) Value   { return Value{Kind: ValueKindList, List: l} }

func (v Value) IsZero() bool { return v.Kind == ValueKindNone }

// Contains reports membership of item in a list value, or equality for a
// text value. Other kinds never contain anything.
func (v Value) Contains(item string) bool {
	switch v.Kind {
	case ValueKindList:
		for _, e := range v.List {
			if e == item {
				return true
			}
		}
		return false
	case ValueKindText:
		return v.Text == item
	default:
		return false
	}
}

func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValueKindBool:
		return v.Bool == other.Bool
	case ValueKindNumber:
		return v.Number == other.Number
	case ValueKindText:
		return v.Text == other.Text
	case ValueKindList:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if v.List[i] != other.List[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Option is one selectable answer for scale/select/multiselect questions.
type Option struct {
	Value     Value  `json:"value"`
	Label     string `json:"label"`
	RiskScore int    `json:"risk_score"`
}

type Question struct {
	ID          string           `json:"id"`
	Text        string           `json:"text"`
	Type        QuestionType     `json:"type"`
	Domain      string           `json:"domain"`
	Instrument  Instrument       `json:"instrument,omitempty"`
	Emergency   EmergencyRole    `json:"emergency_role,omitempty"`
	Options     []Option         `json:"options,omitempty"`
	RiskWeight  int              `json:"risk_weight"`
	Sensitivity SensitivityLevel `json:"sensitivity_level"`
}

// DomainClass ranks questionnaire domains for queue ordering.
type DomainClass string

const (
	ClassTriage              DomainClass = "universal_triage"
	ClassMentalHealth        DomainClass = "mental_health"
	ClassPainManagement      DomainClass = "pain_management"
	ClassChronicDisease      DomainClass = "chronic_disease"
	ClassLifestyle           DomainClass = "lifestyle"
	ClassSubstanceMonitoring DomainClass = "substance_monitoring"
	ClassRiskBehaviors       DomainClass = "risk_behaviors"
)

// DefaultClassRanking orders classes from highest to lowest queue priority.
var DefaultClassRanking = []DomainClass{
	ClassTriage,
	ClassMentalHealth,
	ClassPainManagement,
	ClassChronicDisease,
	ClassLifestyle,
	ClassSubstanceMonitoring,
	ClassRiskBehaviors,
}

type Domain struct {
	Name      string             `json:"name"`
	Class     DomainClass        `json:"class"`
	Questions []Question         `json:"questions"`
	Triggers  []TriggerCondition `json:"triggers,omitempty"`
}
