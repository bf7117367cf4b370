package domain

import "time"

// Member is a finalized registrant, created exactly once when an approved
// application's token is consumed. Name and email are copied from the
// originating application.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      *string   `json:"role,omitempty"`
	Address   *string   `json:"address,omitempty"`
	City      *string   `json:"city,omitempty"`
	Country   *string   `json:"country,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// RegistrationInput carries the fields an applicant supplies when completing
// registration. Company, when set, overrides the application's company.
type RegistrationInput struct {
	Company *string `json:"company,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Role    *string `json:"role,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
}
