package httpdto

import "encoding/json"

// ErrorResponse is the uniform error body. Details carries the upstream
// payload when one exists.
type ErrorResponse struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

func NewErrorResponse(err string) ErrorResponse {
	return ErrorResponse{Error: err}
}

// NewUpstreamErrorResponse attaches a raw upstream body as details.
// Non-JSON bodies are re-encoded as a JSON string so the response stays
// well formed.
func NewUpstreamErrorResponse(err string, body []byte) ErrorResponse {
	return ErrorResponse{Error: err, Details: rawDetails(body)}
}

// NewErrorWithDetail attaches a local error message as details.
func NewErrorWithDetail(err, detail string) ErrorResponse {
	quoted, _ := json.Marshal(detail)
	return ErrorResponse{Error: err, Details: quoted}
}

func rawDetails(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
