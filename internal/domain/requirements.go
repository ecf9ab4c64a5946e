package domain

// Occasion is the shopping occasion extracted from a message.
type Occasion string

const (
	OccasionNone     Occasion = ""
	OccasionBirthday Occasion = "birthday"
	OccasionBBQ      Occasion = "bbq"
	OccasionParty    Occasion = "party"
)

// RequirementProfile is the structured extraction of a free-text request.
// Zero values mean "not stated"; absence of any field is not an error.
type RequirementProfile struct {
	Budget   int      `json:"budget,omitempty"`
	Age      int      `json:"age,omitempty"`
	Occasion Occasion `json:"occasion,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

func (r RequirementProfile) HasBudget() bool { return r.Budget > 0 }

func (r RequirementProfile) HasAge() bool { return r.Age > 0 }
