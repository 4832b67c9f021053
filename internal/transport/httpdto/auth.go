package httpdto

// TokenExchangeRequest is the inbound body for POST /oauth/token.
type TokenExchangeRequest struct {
	Code string `json:"code"`
}
