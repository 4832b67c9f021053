package handler

import (
	"errors"
	"net/http"
	"strings"

	"kakao-gateway/internal/services"
	"kakao-gateway/internal/transport/httpdto"
	gateway_errors "kakao-gateway/pkg/errors"
	"kakao-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service *services.MessageService
	logger  *logger.Logger
}

func NewMessageHandler(service *services.MessageService, l *logger.Logger) *MessageHandler {
	return &MessageHandler{service: service, logger: l}
}

func (h *MessageHandler) Send(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Authorization header missing"))
		return
	}
	token := bearerToken(header)
	if token == "" {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Kakao access token missing"))
		return
	}

	var req httpdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Missing uuid, templateType, or templateData"))
		return
	}
	if req.UUID == "" || req.TemplateType == "" || len(req.TemplateData) == 0 {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Missing uuid, templateType, or templateData"))
		return
	}

	details, err := h.service.Send(c.Request.Context(), services.SendInput{
		Token:        token,
		ReceiverUUID: req.UUID,
		TemplateType: req.TemplateType,
		TemplateData: req.TemplateData,
	})
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.SendMessageResponse{
		Status:  "Message sent successfully",
		Details: details,
	})
}

func (h *MessageHandler) sendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingTextFields),
		errors.Is(err, services.ErrMissingImageFields),
		errors.Is(err, services.ErrInvalidTemplateType):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error()))
		return
	}

	if h.logger != nil {
		h.logger.Errorf("message send failed: %s", err.Error())
	}
	if upstream, ok := gateway_errors.AsUpstream(err); ok {
		c.JSON(http.StatusInternalServerError, httpdto.NewUpstreamErrorResponse("Message sending failed", upstream.Body))
		return
	}
	c.JSON(http.StatusInternalServerError, httpdto.NewErrorWithDetail("Message sending failed", err.Error()))
}

// bearerToken returns the credential after the scheme, or "" when the
// header carries no token.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
