package httpdto

import "encoding/json"

// SendMessageRequest is the inbound body for POST /send-message.
// Field presence is checked in the handler so each miss gets an
// explicit error message.
type SendMessageRequest struct {
	UUID         string            `json:"uuid"`
	TemplateType string            `json:"templateType"`
	TemplateData map[string]string `json:"templateData"`
}

// SendMessageResponse wraps the upstream send result.
type SendMessageResponse struct {
	Status  string          `json:"status"`
	Details json.RawMessage `json:"details"`
}
