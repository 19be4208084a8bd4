// Package model contains the records exchanged with the site backend.
// Field names follow the backend's JSON contract; no business logic lives here.
package model

// ErrorBody is the error envelope the backend returns with every non-2xx response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// Message is the acknowledgement returned by delete endpoints.
type Message struct {
	Message string `json:"message"`
}
