package model

import "strings"

// SharedContent is a message shared into the service from a chat app.
type SharedContent struct {
	Text                string `json:"text"`
	AppName             string `json:"app_name,omitempty"`
	ConversationContext string `json:"conversation_context,omitempty"`
	SenderInfo          string `json:"sender_info,omitempty"`
}

// PlainText returns the text the extraction pipeline consumes. Conversation
// context is metadata only and is not scanned for tasks.
func (c SharedContent) PlainText() string {
	return strings.TrimSpace(c.Text)
}
