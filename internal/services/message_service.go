package services

import (
	"context"
	"encoding/json"
	"errors"

	"kakao-gateway/internal/kakao"
)

// Template validation errors, surfaced to the caller as 400s.
var (
	ErrMissingTextFields   = errors.New("missing required fields for text template")
	ErrMissingImageFields  = errors.New("missing required fields for image template")
	ErrInvalidTemplateType = errors.New("invalid templateType")
)

type MessageService struct {
	kakao *kakao.Client
}

func NewMessageService(client *kakao.Client) *MessageService {
	return &MessageService{kakao: client}
}

// SendInput is one validated send-message request.
type SendInput struct {
	Token        string
	ReceiverUUID string
	TemplateType string
	TemplateData map[string]string
}

// BuildTemplate maps the templateType discriminator onto the closed
// template union. All required fields are checked here, before any
// outbound call.
func BuildTemplate(templateType string, data map[string]string) (kakao.TemplateObject, error) {
	switch templateType {
	case "text":
		title, message, link := data["title"], data["message"], data["url"]
		if title == "" || message == "" || link == "" {
			return nil, ErrMissingTextFields
		}
		return kakao.TextTemplate{Title: title, Message: message, URL: link}, nil
	case "image":
		title, message, imageURL, link := data["title"], data["message"], data["imageUrl"], data["url"]
		if title == "" || message == "" || imageURL == "" || link == "" {
			return nil, ErrMissingImageFields
		}
		return kakao.FeedTemplate{Title: title, Message: message, ImageURL: imageURL, URL: link}, nil
	default:
		return nil, ErrInvalidTemplateType
	}
}

// Send builds the template object and submits it on behalf of the
// token's owner.
func (s *MessageService) Send(ctx context.Context, input SendInput) (json.RawMessage, error) {
	tmpl, err := BuildTemplate(input.TemplateType, input.TemplateData)
	if err != nil {
		return nil, err
	}
	return s.kakao.SendDefaultMessage(ctx, input.Token, input.ReceiverUUID, tmpl)
}
