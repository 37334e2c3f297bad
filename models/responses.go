package models

// Credentials is the request body accepted by the register and login
// endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the success payload returned by the register and login
// endpoints: a human-readable confirmation, the issued bearer token, and
// the account the token was issued for.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// APIError is the client-facing error descriptor. Kind is a stable
// machine-readable name from the error taxonomy; Message is safe to show
// to end users and never contains internal diagnostic detail.
type APIError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON envelope written for every failed request.
type ErrorResponse struct {
	Error APIError `json:"error"`
}
