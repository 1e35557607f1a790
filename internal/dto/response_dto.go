package dto

// ErrorResponse is the body of every failed request. Kind carries the
// backend failure class when there is one; State is the unchanged view the
// failed action left behind.
type ErrorResponse struct {
	Error          string   `json:"error"`
	Kind           string   `json:"kind,omitempty"`
	SignInRequired bool     `json:"sign_in_required,omitempty"`
	Details        []string `json:"details,omitempty"`
	State          any      `json:"state,omitempty" swaggertype:"object"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
