package whatsapp

import "fmt"

// Payload is one outbound Cloud API message body. Exactly one of the typed
// fields is set, matching the Type discriminator; read receipts use Status
// plus MessageID instead.
type Payload struct {
	MessagingProduct string        `json:"messaging_product"`
	RecipientType    string        `json:"recipient_type,omitempty"`
	To               string        `json:"to,omitempty"`
	Type             string        `json:"type,omitempty"`
	Context          *ReplyContext `json:"context,omitempty"`
	Text             *SendText     `json:"text,omitempty"`
	Interactive      *Interactive  `json:"interactive,omitempty"`
	Document         *SendDocument `json:"document,omitempty"`
	Image            *MediaRef     `json:"image,omitempty"`
	Sticker          *MediaRef     `json:"sticker,omitempty"`
	Reaction         *SendReaction `json:"reaction,omitempty"`

	Status    string `json:"status,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

type ReplyContext struct {
	MessageID string `json:"message_id"`
}

type SendText struct {
	Body string `json:"body"`
}

type SendDocument struct {
	ID       string `json:"id"`
	Caption  string `json:"caption"`
	Filename string `json:"filename"`
}

type MediaRef struct {
	ID string `json:"id"`
}

type SendReaction struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

type Interactive struct {
	Type   string            `json:"type"`
	Body   InteractiveBody   `json:"body"`
	Footer *InteractiveBody  `json:"footer,omitempty"`
	Action InteractiveAction `json:"action"`
}

type InteractiveBody struct {
	Text string `json:"text"`
}

type InteractiveAction struct {
	Buttons  []Button  `json:"buttons,omitempty"`
	Button   string    `json:"button,omitempty"`
	Sections []Section `json:"sections,omitempty"`
}

type Button struct {
	Type  string      `json:"type"`
	Reply ButtonReply `json:"reply"`
}

type ButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Section struct {
	Title string       `json:"title"`
	Rows  []SectionRow `json:"rows"`
}

type SectionRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func individual(to, typ string) Payload {
	return Payload{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             typ,
	}
}

func TextMessage(to, body string) Payload {
	p := individual(to, "text")
	p.Text = &SendText{Body: body}
	return p
}

// ReplyTextMessage quotes the message being answered.
func ReplyTextMessage(to, messageID, body string) Payload {
	p := TextMessage(to, body)
	p.Context = &ReplyContext{MessageID: messageID}
	return p
}

// ButtonMenu builds an interactive reply-button message. The platform caps
// the menu at three buttons.
func ButtonMenu(to string, options []string, body, footer, scenario string) Payload {
	buttons := make([]Button, 0, len(options))
	for i, option := range options {
		buttons = append(buttons, Button{
			Type: "reply",
			Reply: ButtonReply{
				ID:    fmt.Sprintf("%s_btn_%d", scenario, i+1),
				Title: option,
			},
		})
	}
	p := individual(to, "interactive")
	p.Interactive = &Interactive{
		Type:   "button",
		Body:   InteractiveBody{Text: body},
		Footer: &InteractiveBody{Text: footer},
		Action: InteractiveAction{Buttons: buttons},
	}
	return p
}

// ListMenu builds an interactive list message with a single section.
func ListMenu(to string, options []string, body, footer, scenario string) Payload {
	rows := make([]SectionRow, 0, len(options))
	for i, option := range options {
		rows = append(rows, SectionRow{
			ID:    fmt.Sprintf("%s_row_%d", scenario, i+1),
			Title: option,
		})
	}
	p := individual(to, "interactive")
	p.Interactive = &Interactive{
		Type:   "list",
		Body:   InteractiveBody{Text: body},
		Footer: &InteractiveBody{Text: footer},
		Action: InteractiveAction{
			Button:   "See Options",
			Sections: []Section{{Title: "Sections", Rows: rows}},
		},
	}
	return p
}

func DocumentMessage(to, docID, caption, filename string) Payload {
	p := individual(to, "document")
	p.Document = &SendDocument{ID: docID, Caption: caption, Filename: filename}
	return p
}

func ImageMessage(to, imageID string) Payload {
	p := individual(to, "image")
	p.Image = &MediaRef{ID: imageID}
	return p
}

func StickerMessage(to, stickerID string) Payload {
	p := individual(to, "sticker")
	p.Sticker = &MediaRef{ID: stickerID}
	return p
}

func ReactionMessage(to, messageID, emoji string) Payload {
	p := individual(to, "reaction")
	p.Reaction = &SendReaction{MessageID: messageID, Emoji: emoji}
	return p
}

// MarkRead acknowledges an inbound message as read.
func MarkRead(messageID string) Payload {
	return Payload{
		MessagingProduct: "whatsapp",
		Status:           "read",
		MessageID:        messageID,
	}
}
