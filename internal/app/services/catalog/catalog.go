package catalog

import "fmt"

// Catalog is the immutable questionnaire definition: ordered domains, their
// questions and trigger conditions. It is validated once at startup and
// safe for concurrent reads.
type Catalog struct {
	TriageDomain string
	domains      []Domain
	byName       map[string]*Domain
	byQuestion   map[string]*Question
}

// New validates the given domains and builds the lookup indexes.
// The triage domain is the fixed entry point and must exist, carry no
// triggers, and contain at least one question.
func New(triageDomain string, domains []Domain) (*Catalog, error) {
	c := &Catalog{
		TriageDomain: triageDomain,
		domains:      domains,
		byName:       make(map[string]*Domain, len(domains)),
		byQuestion:   make(map[string]*Question),
	}
	for i := range domains {
		d := &c.domains[i]
		if d.Name == "" {
			return nil, fmt.Errorf("domain %d: name is required", i)
		}
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate domain %q", d.Name)
		}
		c.byName[d.Name] = d
		if len(d.Questions) == 0 {
			return nil, fmt.Errorf("domain %q has no questions", d.Name)
		}
		for j := range d.Questions {
			q := &d.Questions[j]
			if err := validateQuestion(q, d.Name); err != nil {
				return nil, err
			}
			if _, dup := c.byQuestion[q.ID]; dup {
				return nil, fmt.Errorf("duplicate question %q", q.ID)
			}
			c.byQuestion[q.ID] = q
		}
	}
	triage, ok := c.byName[triageDomain]
	if !ok {
		return nil, fmt.Errorf("triage domain %q not found", triageDomain)
	}
	if len(triage.Triggers) > 0 {
		return nil, fmt.Errorf("triage domain %q must not carry triggers", triageDomain)
	}
	for _, d := range c.domains {
		for _, t := range d.Triggers {
			if _, ok := c.byQuestion[t.QuestionID]; !ok {
				return nil, fmt.Errorf("domain %q: trigger references unknown question %q", d.Name, t.QuestionID)
			}
		}
	}
	return c, nil
}

func validateQuestion(q *Question, domain string) error {
	if q.ID == "" {
		return fmt.Errorf("domain %q: question id is required", domain)
	}
	if q.Text == "" {
		return fmt.Errorf("question %q: text is required", q.ID)
	}
	if q.RiskWeight < 0 {
		return fmt.Errorf("question %q: risk_weight must be >= 0", q.ID)
	}
	q.Domain = domain
	switch q.Type {
	case QuestionTypeScale, QuestionTypeSelect, QuestionTypeMultiselect:
		if len(q.Options) == 0 {
			return fmt.Errorf("question %q: %s questions require options", q.ID, q.Type)
		}
	case QuestionTypeBoolean, QuestionTypeText, QuestionTypeNumber:
		if len(q.Options) > 0 {
			return fmt.Errorf("question %q: %s questions must not carry options", q.ID, q.Type)
		}
	default:
		return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
	}
	return nil
}

func (c *Catalog) Domain(name string) (*Domain, bool) {
	d, ok := c.byName[name]
	return d, ok
}

func (c *Catalog) Question(id string) (*Question, bool) {
	q, ok := c.byQuestion[id]
	return q, ok
}

// Domains returns the domains in catalog order.
func (c *Catalog) Domains() []Domain {
	return c.domains
}

// NextUnanswered returns the first question of the domain, in catalog
// order, for which answered reports false.
func (c *Catalog) NextUnanswered(domain string, answered func(questionID string) bool) (*Question, bool) {
	d, ok := c.byName[domain]
	if !ok {
		return nil, false
	}
	for i := range d.Questions {
		if !answered(d.Questions[i].ID) {
			return &d.Questions[i], true
		}
	}
	return nil, false
}

// InstrumentQuestions returns the IDs of every question in the catalog
// tagged with the given instrument, in catalog order.
func (c *Catalog) InstrumentQuestions(inst Instrument) []string {
	var ids []string
	for _, d := range c.domains {
		for _, q := range d.Questions {
			if q.Instrument == inst {
				ids = append(ids, q.ID)
			}
		}
	}
	return ids
}

// TotalQuestions reports the number of questions across all domains.
func (c *Catalog) TotalQuestions() int {
	return len(c.byQuestion)
}
