package crowdfund

import "encoding/json"

// Project is a funding campaign record with a validity window, owned by
// exactly one account.
type Project struct {
	Title       string   `json:"title"`
	Details     string   `json:"details"`
	TotalTarget Money    `json:"total_target"`
	StartTime   DateTime `json:"start_time"`
	EndTime     DateTime `json:"end_time"`
	OwnerEmail  string   `json:"user_email"` // OwnerEmail references an account by email.
}

// NewProject builds a validated Project owned by owner. Title and details
// must be non-blank, and start must be strictly before end; a violation
// constructs nothing, so a failed creation leaves no trace.
func NewProject(owner, title, details string, target Money, start, end DateTime) (Project, error) {
	if err := CheckRequired("title", title); err != nil {
		return Project{}, err
	}
	if err := CheckRequired("details", details); err != nil {
		return Project{}, err
	}
	if !start.Before(end) {
		return Project{}, ErrInvalidTimeRange
	}
	return Project{
		Title:       title,
		Details:     details,
		TotalTarget: target,
		StartTime:   start,
		EndTime:     end,
		OwnerEmail:  owner,
	}, nil
}

// Equal reports whether two projects hold the same values.
func (p Project) Equal(o Project) bool {
	return p.Title == o.Title &&
		p.Details == o.Details &&
		p.TotalTarget.Equal(o.TotalTarget) &&
		p.StartTime.Equal(o.StartTime) &&
		p.EndTime.Equal(o.EndTime) &&
		p.OwnerEmail == o.OwnerEmail
}

// MarshalJSON implements the json.Marshaler interface for Project,
// keeping the ledger file field order stable.
func (p Project) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("title", p.Title)
	w.Append("details", p.Details)
	w.Append("total_target", p.TotalTarget)
	w.Append("start_time", p.StartTime)
	w.Append("end_time", p.EndTime)
	w.Append("user_email", p.OwnerEmail)
	return w.MarshalJSON()
}

var _ json.Marshaler = (*Project)(nil)

// Patch carries the raw field inputs of an edit. A blank field keeps the
// stored value.
type Patch struct {
	Title       string
	Details     string
	TotalTarget string
	StartTime   string
	EndTime     string
}
