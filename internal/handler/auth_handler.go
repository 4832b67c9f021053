package handler

import (
	"encoding/json"
	"net/http"

	"kakao-gateway/internal/services"
	"kakao-gateway/internal/transport/httpdto"
	gateway_errors "kakao-gateway/pkg/errors"
	"kakao-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

// AuthHandler fronts the four Kakao auth passthrough endpoints.
type AuthHandler struct {
	service *services.AuthService
	logger  *logger.Logger
}

func NewAuthHandler(service *services.AuthService, l *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: l}
}

// ExchangeToken handles POST /oauth/token. Upstream errors keep their
// upstream status.
func (h *AuthHandler) ExchangeToken(c *gin.Context) {
	var req httpdto.TokenExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Authorization code is required"))
		return
	}

	body, err := h.service.ExchangeToken(c.Request.Context(), req.Code)
	if err != nil {
		if h.logger != nil {
			h.logger.Errorf("token exchange failed: %s", err.Error())
		}
		if upstream, ok := gateway_errors.AsUpstream(err); ok {
			c.JSON(upstream.Status, httpdto.NewUpstreamErrorResponse("Failed to fetch access token", upstream.Body))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorWithDetail("Failed to fetch access token", err.Error()))
		return
	}
	c.Data(http.StatusOK, jsonContentType, body)
}

// VerifyToken handles GET /verify-token.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Access token is required"))
		return
	}

	body, err := h.service.VerifyToken(c.Request.Context(), token)
	if err != nil {
		if h.logger != nil {
			h.logger.Errorf("token verification failed: %s", err.Error())
		}
		if upstream, ok := gateway_errors.AsUpstream(err); ok {
			c.JSON(upstream.Status, httpdto.NewUpstreamErrorResponse("Failed to verify token", upstream.Body))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorWithDetail("Failed to verify token", err.Error()))
		return
	}
	c.Data(http.StatusOK, jsonContentType, body)
}

// Friends handles GET /friends. An upstream 401 is surfaced distinctly
// from other upstream statuses and from transport failures.
func (h *AuthHandler) Friends(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Authorization header is missing. Please include it in the request."))
		return
	}
	token := bearerToken(header)
	if token == "" {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Kakao access token is missing in the Authorization header."))
		return
	}

	body, err := h.service.Friends(c.Request.Context(), token)
	if err != nil {
		if h.logger != nil {
			h.logger.Errorf("friends fetch failed: %s", err.Error())
		}
		if upstream, ok := gateway_errors.AsUpstream(err); ok {
			if upstream.Status == http.StatusUnauthorized {
				c.JSON(http.StatusUnauthorized, httpdto.NewUpstreamErrorResponse("Invalid or expired Kakao access token.", upstream.Body))
				return
			}
			c.JSON(upstream.Status, httpdto.NewUpstreamErrorResponse("Kakao API returned an error.", upstream.Body))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorWithDetail("Internal server error occurred while fetching friends.", err.Error()))
		return
	}
	c.Data(http.StatusOK, jsonContentType, body)
}

// Logout handles POST /logout, merging a success message with whatever
// the upstream returned.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Access token is required"))
		return
	}

	body, err := h.service.Logout(c.Request.Context(), token)
	if err != nil {
		if h.logger != nil {
			h.logger.Errorf("logout failed: %s", err.Error())
		}
		if upstream, ok := gateway_errors.AsUpstream(err); ok {
			c.JSON(http.StatusInternalServerError, httpdto.NewUpstreamErrorResponse("Logout failed", upstream.Body))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorWithDetail("Logout failed", err.Error()))
		return
	}

	merged := map[string]any{}
	if len(body) > 0 {
		// Non-object upstream bodies are dropped; the success message
		// still goes out.
		_ = json.Unmarshal(body, &merged)
	}
	merged["message"] = "Successfully logged out"
	c.JSON(http.StatusOK, merged)
}
