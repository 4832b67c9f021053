package kakao

import "encoding/json"

// DefaultButtonTitle is the call-to-action label Kakao renders on
// message buttons ("view details").
const DefaultButtonTitle = "자세히 보기"

// TemplateObject is the closed set of template shapes the default-send
// API accepts. Exactly one variant is built per message.
type TemplateObject interface {
	templateObject()
}

// Link pairs the desktop and mobile destinations of a message.
type Link struct {
	WebURL       string `json:"web_url"`
	MobileWebURL string `json:"mobile_web_url"`
}

// TextTemplate is a plain text message with a single link.
type TextTemplate struct {
	Title   string
	Message string
	URL     string
}

func (TextTemplate) templateObject() {}

func (t TextTemplate) MarshalJSON() ([]byte, error) {
	link := Link{WebURL: t.URL, MobileWebURL: t.URL}
	return json.Marshal(textObject{
		ObjectType:  "text",
		Text:        t.Title + "\n\n" + t.Message,
		Link:        link,
		ButtonTitle: DefaultButtonTitle,
	})
}

type textObject struct {
	ObjectType  string `json:"object_type"`
	Text        string `json:"text"`
	Link        Link   `json:"link"`
	ButtonTitle string `json:"button_title"`
}

// FeedTemplate is an image card message. Kakao calls this shape "feed".
type FeedTemplate struct {
	Title    string
	Message  string
	ImageURL string
	URL      string
}

func (FeedTemplate) templateObject() {}

func (t FeedTemplate) MarshalJSON() ([]byte, error) {
	link := Link{WebURL: t.URL, MobileWebURL: t.URL}
	return json.Marshal(feedObject{
		ObjectType: "feed",
		Content: feedContent{
			Title:       t.Title,
			Description: t.Message,
			ImageURL:    t.ImageURL,
			Link:        link,
		},
		Buttons: []feedButton{{Title: DefaultButtonTitle, Link: link}},
	})
}

type feedObject struct {
	ObjectType string       `json:"object_type"`
	Content    feedContent  `json:"content"`
	Buttons    []feedButton `json:"buttons"`
}

type feedContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Link        Link   `json:"link"`
}

type feedButton struct {
	Title string `json:"title"`
	Link  Link   `json:"link"`
}
