package dto

// ErrorResponse is the JSON error envelope. Code carries the domain error
// code (4xxx client, 5xxx server), not the HTTP status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
