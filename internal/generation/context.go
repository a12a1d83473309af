package generation

// Phase status values accepted in a progress report.
var PhaseStatusValues = []string{"On Track", "Delayed", "At Risk", "Completed"}

const defaultPhaseStatus = "On Track"

// Attendee is one meeting participant slot.
type Attendee struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// PhaseStatus is one row of the progress report phase table.
type PhaseStatus struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

// MeetingForm holds the contextual inputs for Meeting Minutes.
type MeetingForm struct {
	Attendees   []Attendee `json:"attendees"`
	MeetingDate string     `json:"meetingDate"`
	Agenda      string     `json:"agenda"`
	Notes       string     `json:"notes"`
}

// ProgressForm holds the contextual inputs for a Progress Report.
type ProgressForm struct {
	Phases      []PhaseStatus `json:"phases"`
	BudgetSpent string        `json:"budgetSpent"`
	KeyIssues   string        `json:"keyIssues"`
}

// ProposalForm holds the contextual inputs for a Proposal.
type ProposalForm struct {
	ClientName         string `json:"clientName"`
	ClientOrganization string `json:"clientOrganization"`
	ValidUntil         string `json:"validUntil"`
	SpecialTerms       string `json:"specialTerms"`
}

// FormState is the per-workspace contextual input state. It is
// transient: never persisted, reset whenever the workspace navigates
// to another project.
type FormState struct {
	Meeting  MeetingForm  `json:"meeting"`
	Progress ProgressForm `json:"progress"`
	Proposal ProposalForm `json:"proposal"`
}

// NewFormState returns the initial form state: one empty attendee slot
// and the four standard phases at zero percent, on track.
func NewFormState() FormState {
	return FormState{
		Meeting: MeetingForm{
			Attendees: []Attendee{{}},
		},
		Progress: ProgressForm{
			Phases: []PhaseStatus{
				{Name: "Design Phase", Status: defaultPhaseStatus},
				{Name: "Approval Phase", Status: defaultPhaseStatus},
				{Name: "Construction Phase", Status: defaultPhaseStatus},
				{Name: "Handover Phase", Status: defaultPhaseStatus},
			},
		},
	}
}

// AddAttendee appends an empty attendee slot.
func (f *FormState) AddAttendee() {
	f.Meeting.Attendees = append(f.Meeting.Attendees, Attendee{})
}

// RemoveAttendee drops the slot at i. At least one slot always
// remains; removing the last one is a no-op.
func (f *FormState) RemoveAttendee(i int) {
	if len(f.Meeting.Attendees) <= 1 || i < 0 || i >= len(f.Meeting.Attendees) {
		return
	}
	f.Meeting.Attendees = append(f.Meeting.Attendees[:i], f.Meeting.Attendees[i+1:]...)
}

// Sanitize clamps percentages into [0,100], restores unknown phase
// statuses to the default, and guarantees the minimum attendee slot.
func (f *FormState) Sanitize() {
	if len(f.Meeting.Attendees) == 0 {
		f.Meeting.Attendees = []Attendee{{}}
	}
	for i := range f.Progress.Phases {
		p := &f.Progress.Phases[i]
		if p.Percentage < 0 {
			p.Percentage = 0
		}
		if p.Percentage > 100 {
			p.Percentage = 100
		}
		if !validPhaseStatus(p.Status) {
			p.Status = defaultPhaseStatus
		}
	}
}

func validPhaseStatus(s string) bool {
	for _, v := range PhaseStatusValues {
		if v == s {
			return true
		}
	}
	return false
}
