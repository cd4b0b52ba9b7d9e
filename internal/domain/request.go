package domain

import "time"

// StatusRequest describes the single GET issued per invocation.
type StatusRequest struct {
	URL      string
	Token    string
	Insecure bool
	Timeout  time.Duration
}

// StatusResponse is what came back. Code is 0 when no response was received.
type StatusResponse struct {
	Code      int
	Body      []byte
	RequestID string
}
