package whatsapp

// Sentinels returned for envelopes the normalizer cannot extract text from.
const (
	TextNotRecognized = "message not recognized."
	TextNotProcessed  = "message not processed."
)

// MessageText extracts a single plain-text payload from an inbound message:
// the text body, the image media id, the button label, or the selected row or
// button title. Unknown shapes degrade to a sentinel, never an error.
func MessageText(msg Message) string {
	switch msg.Type {
	case "":
		return TextNotRecognized
	case "text":
		if msg.Text != nil {
			return msg.Text.Body
		}
	case "image":
		if msg.Image != nil {
			return msg.Image.ID
		}
	case "button":
		if msg.Button != nil {
			return msg.Button.Text
		}
	case "interactive":
		if msg.Interactive != nil {
			switch msg.Interactive.Type {
			case "list_reply":
				if msg.Interactive.ListReply != nil {
					return msg.Interactive.ListReply.Title
				}
			case "button_reply":
				if msg.Interactive.ButtonReply != nil {
					return msg.Interactive.ButtonReply.Title
				}
			}
		}
	}
	return TextNotProcessed
}
