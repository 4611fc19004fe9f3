package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageText(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{
			name: "text body",
			msg:  Message{Type: "text", Text: &TextContent{Body: "hello"}},
			want: "hello",
		},
		{
			name: "image id",
			msg:  Message{Type: "image", Image: &MediaContent{ID: "123456789"}},
			want: "123456789",
		},
		{
			name: "button label",
			msg:  Message{Type: "button", Button: &ButtonContent{Text: "💄 Product Recs"}},
			want: "💄 Product Recs",
		},
		{
			name: "list reply title",
			msg: Message{Type: "interactive", Interactive: &InteractiveContent{
				Type:      "list_reply",
				ListReply: &ListReplyMsg{ID: "face_row_1", Title: "🎨 Foundation"},
			}},
			want: "🎨 Foundation",
		},
		{
			name: "button reply title",
			msg: Message{Type: "interactive", Interactive: &InteractiveContent{
				Type:        "button_reply",
				ButtonReply: &ButtonReplyMsg{ID: "intro_btn_2", Title: "🪞 Try-On"},
			}},
			want: "🪞 Try-On",
		},
		{
			name: "missing type",
			msg:  Message{},
			want: TextNotRecognized,
		},
		{
			name: "unknown type",
			msg:  Message{Type: "audio"},
			want: TextNotProcessed,
		},
		{
			name: "text type without body",
			msg:  Message{Type: "text"},
			want: TextNotProcessed,
		},
		{
			name: "interactive without reply",
			msg:  Message{Type: "interactive", Interactive: &InteractiveContent{Type: "list_reply"}},
			want: TextNotProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageText(tt.msg))
		})
	}
}
