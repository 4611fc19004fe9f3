package whatsapp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonMenuIDs(t *testing.T) {
	p := ButtonMenu("15551234567", []string{"💄 Product Recs", "🪞 Try-On"}, "pick one", "signature", "intro")

	require.NotNil(t, p.Interactive)
	assert.Equal(t, "button", p.Interactive.Type)
	assert.Equal(t, "pick one", p.Interactive.Body.Text)
	assert.Equal(t, "signature", p.Interactive.Footer.Text)

	buttons := p.Interactive.Action.Buttons
	require.Len(t, buttons, 2)
	assert.Equal(t, "intro_btn_1", buttons[0].Reply.ID)
	assert.Equal(t, "💄 Product Recs", buttons[0].Reply.Title)
	assert.Equal(t, "intro_btn_2", buttons[1].Reply.ID)
}

func TestListMenuSingleSection(t *testing.T) {
	p := ListMenu("15551234567", []string{"Foundation", "Concealer"}, "pick one", "signature", "face")

	require.NotNil(t, p.Interactive)
	assert.Equal(t, "list", p.Interactive.Type)
	assert.Equal(t, "See Options", p.Interactive.Action.Button)

	sections := p.Interactive.Action.Sections
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Rows, 2)
	assert.Equal(t, "face_row_1", sections[0].Rows[0].ID)
	assert.Equal(t, "Foundation", sections[0].Rows[0].Title)
	assert.Equal(t, "face_row_2", sections[0].Rows[1].ID)
}

func TestMarkReadEncoding(t *testing.T) {
	raw, err := json.Marshal(MarkRead("wamid.42"))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, map[string]any{
		"messaging_product": "whatsapp",
		"status":            "read",
		"message_id":        "wamid.42",
	}, got)
}

func TestTextMessageOmitsUnsetFields(t *testing.T) {
	raw, err := json.Marshal(TextMessage("15551234567", "hello"))
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "interactive")
	assert.NotContains(t, string(raw), "reaction")
	assert.NotContains(t, string(raw), "status")
}

func TestReplyTextMessageQuotesOriginal(t *testing.T) {
	p := ReplyTextMessage("15551234567", "wamid.7", "answering you")
	require.NotNil(t, p.Context)
	assert.Equal(t, "wamid.7", p.Context.MessageID)
}

func TestReactionMessage(t *testing.T) {
	p := ReactionMessage("15551234567", "wamid.7", "❤️")
	assert.Equal(t, "reaction", p.Type)
	require.NotNil(t, p.Reaction)
	assert.Equal(t, "wamid.7", p.Reaction.MessageID)
	assert.Equal(t, "❤️", p.Reaction.Emoji)
}
