package dto

import "ecomatch_backend/internal/models"

// InitiateLeadRequest starts the guest workflow. Consent is required
// before any confirmation mail goes out.
type InitiateLeadRequest struct {
	Email        string `json:"email" validate:"required,email"`
	ConsentGiven bool   `json:"consent_given"`
}

type InitiateLeadResponse struct {
	Email string           `json:"email"`
	State models.LeadState `json:"state"`
}

// ConfirmLeadResponse echoes the token back so the frontend can carry
// it into the submit step without re-reading the URL.
type ConfirmLeadResponse struct {
	Email string           `json:"email"`
	Token string           `json:"token"`
	State models.LeadState `json:"state"`
}

// GuestSubmitRequest is the one-shot request submission that consumes
// a validated lead token. Field names mirror the public form.
type GuestSubmitRequest struct {
	Token string `json:"token" form:"token" validate:"required"`

	Vorname      string `json:"vorname" form:"vorname" validate:"max=100"`
	Nachname     string `json:"nachname" form:"nachname" validate:"max=100"`
	Telefon      string `json:"telefon" form:"telefon" validate:"max=20"`
	Firmenname   string `json:"firmenname" form:"firmenname" validate:"max=255"`
	Strasse      string `json:"strasse" form:"strasse" validate:"max=255"`
	Hausnummer   string `json:"hausnummer" form:"hausnummer" validate:"max=10"`
	Plz          string `json:"plz" form:"plz" validate:"required,plz"`
	Stadt        string `json:"stadt" form:"stadt" validate:"required,max=100"`
	Land         string `json:"land" form:"land" validate:"max=100"`
	Region       string `json:"region" form:"region" validate:"max=100"`
	Titel        string `json:"titel" form:"titel" validate:"required,max=160"`
	Beschreibung string `json:"beschreibung" form:"beschreibung" validate:"max=4000"`

	// At least one id must resolve to an existing service type.
	ServiceIDs []uint `json:"service_ids" form:"service_ids" validate:"required,min=1,dive,gt=0"`
}
