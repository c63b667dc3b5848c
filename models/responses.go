package models

// ErrorResponse is the body the device returns when it cannot serve a read
// or rejects a control action.
type ErrorResponse struct {
	Error string `json:"error"`
}
