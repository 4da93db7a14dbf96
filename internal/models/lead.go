package models

// Lead is an unauthenticated contact attempt progressing through
// initiate/validate/consume. The three flags move monotonically:
// unvalidated -> validated -> used. A consumed lead never accepts
// another submission with the same token.
type Lead struct {
	BaseModel
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	ConsentGiven   bool   `gorm:"default:false" json:"consent_given"`
	Token          string `gorm:"type:varchar(64);uniqueIndex" json:"-"`
	Validated      bool   `gorm:"default:false" json:"validated"`
	UsedForRequest bool   `gorm:"default:false" json:"used_for_request"`
}

// LeadState is the derived position in the guest workflow.
type LeadState string

const (
	LeadStateInitiated LeadState = "initiated"
	LeadStateValidated LeadState = "validated"
	LeadStateConsumed  LeadState = "consumed"
)

// State derives the workflow state from the stored flags.
func (l *Lead) State() LeadState {
	switch {
	case l.UsedForRequest:
		return LeadStateConsumed
	case l.Validated:
		return LeadStateValidated
	default:
		return LeadStateInitiated
	}
}
