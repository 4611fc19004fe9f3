package bot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"robomua/aiysha-bot/internal/beauty"
	"robomua/aiysha-bot/internal/catalog"
	"robomua/aiysha-bot/internal/session"
	"robomua/aiysha-bot/internal/whatsapp"
)

const testCatalog = `{
  "color try-on": {
    "shade house": {"jet black": "#000000", "ruby red": "#9b111e"},
    "glow co": {"honey": "#c68e3f"}
  },
  "lip stick try-on": {
    "shade house": {"ruby red": "#9b111e"}
  },
  "style try-on": {
    "box braids": "style_box_braids",
    "pixie cut": "style_pixie_cut"
  }
}`

type fakeMedia struct {
	downloaded  []string
	uploaded    []string
	downloadErr error
}

func (m *fakeMedia) DownloadMedia(_ context.Context, mediaID, _ string) (string, error) {
	if m.downloadErr != nil {
		return "", m.downloadErr
	}
	m.downloaded = append(m.downloaded, mediaID)
	f, err := os.CreateTemp("", "selfie-*.jpeg")
	if err != nil {
		return "", err
	}
	f.Close()
	return f.Name(), nil
}

func (m *fakeMedia) UploadMedia(_ context.Context, path, _ string) (string, error) {
	m.uploaded = append(m.uploaded, path)
	return fmt.Sprintf("media-%d", len(m.uploaded)), nil
}

type tryOnCall struct {
	url, field, value string
}

type fakeBeauty struct {
	recs       *beauty.Recommendations
	recsCalls  []string
	tryOnCalls []tryOnCall
}

func (b *fakeBeauty) RecsURL(recType string) (string, error) {
	return "http://edge/recs/" + recType, nil
}

func (b *fakeBeauty) TryOnURL(vtoType string) (string, error) {
	return "http://edge/vto/" + vtoType, nil
}

func (b *fakeBeauty) HairStyleURL() string { return "http://edge/vto/hairstyle" }

func (b *fakeBeauty) FetchTryOnImage(_ context.Context, url, field, value, _ string) (string, error) {
	b.tryOnCalls = append(b.tryOnCalls, tryOnCall{url, field, value})
	f, err := os.CreateTemp("", "rendered-*.jpeg")
	if err != nil {
		return "", err
	}
	f.Close()
	return f.Name(), nil
}

func (b *fakeBeauty) FetchRecommendations(_ context.Context, url, _ string) (*beauty.Recommendations, error) {
	b.recsCalls = append(b.recsCalls, url)
	return b.recs, nil
}

type fixture struct {
	dispatcher *Dispatcher
	sessions   session.Store
	media      *fakeMedia
	beauty     *fakeBeauty
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	cat, err := catalog.Load(path)
	require.NoError(t, err)

	sessions := session.NewCacheStore(time.Hour)
	media := &fakeMedia{}
	beautySvc := &fakeBeauty{}
	d := NewDispatcher(sessions, cat, media, beautySvc, StaticFallback{}, zap.NewNop())
	return &fixture{dispatcher: d, sessions: sessions, media: media, beauty: beautySvc}
}

func event(text string) Event {
	return Event{
		From:      "15551234567",
		MessageID: "wamid.1",
		Name:      "Ama",
		NumberID:  "100200300",
		Text:      text,
	}
}

func titles(p whatsapp.Payload) []string {
	var out []string
	if p.Interactive == nil {
		return out
	}
	for _, b := range p.Interactive.Action.Buttons {
		out = append(out, b.Reply.Title)
	}
	for _, s := range p.Interactive.Action.Sections {
		for _, r := range s.Rows {
			out = append(out, r.Title)
		}
	}
	return out
}

func TestDispatchGreeting(t *testing.T) {
	fx := newFixture(t)

	for _, hello := range []string{"hello", "Hola", "NAMASTE"} {
		out, err := fx.dispatcher.Dispatch(context.Background(), event(hello))
		require.NoError(t, err, hello)
		require.Len(t, out, 3, hello)

		assert.Equal(t, "read", out[0].Status)
		assert.Equal(t, "wamid.1", out[0].MessageID)

		require.NotNil(t, out[1].Reaction)
		assert.Equal(t, "❤️", out[1].Reaction.Emoji)

		require.NotNil(t, out[2].Interactive)
		assert.Equal(t, "button", out[2].Interactive.Type)
		assert.Equal(t, []string{"💄 Product Recs", "🪞 Try-On"}, titles(out[2]))
		assert.Equal(t, "AIySha by roboMUA", out[2].Interactive.Footer.Text)
	}
}

func TestDispatchGreetingIsExactMatch(t *testing.T) {
	fx := newFixture(t)

	out, err := fx.dispatcher.Dispatch(context.Background(), event("hello there"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NotNil(t, out[1].Text)
	assert.Equal(t, staticFallbackBody, out[1].Text.Body)
}

func TestDispatchKeywordWithEmojiPrefix(t *testing.T) {
	fx := newFixture(t)

	// Menu replies echo the label emoji; dispatch strips it before matching.
	out, err := fx.dispatcher.Dispatch(context.Background(), event("💄 Product Recs"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NotNil(t, out[1].Interactive)
	assert.Equal(t, "list", out[1].Interactive.Type)
	assert.Equal(t, []string{"😀 Face", "☺️ Cheeks", "👤 Body"}, titles(out[1]))
}

func TestDispatchBareKeyword(t *testing.T) {
	fx := newFixture(t)

	out, err := fx.dispatcher.Dispatch(context.Background(), event("face"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"🎨 Foundation", "🙈 Concealer", "💎 Setting Powder"}, titles(out[1]))
}

func TestDispatchCategoryAsksForSelfie(t *testing.T) {
	fx := newFixture(t)

	out, err := fx.dispatcher.Dispatch(context.Background(), event("🎨 Foundation"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NotNil(t, out[1].Text)
	assert.Equal(t, selfieBody, out[1].Text.Body)

	pending, ok := fx.sessions.PendingRecType(event("").From)
	require.True(t, ok)
	assert.Equal(t, "foundation", pending)
}

func TestDispatchImageFinishesRecommendations(t *testing.T) {
	fx := newFixture(t)
	fx.beauty.recs = &beauty.Recommendations{
		CompanyNames: []string{"glow co", "shade house"},
		CompanyProducts: map[string][]beauty.Product{
			"glow co":     {{Company: "Glow Co"}},
			"shade house": {{Company: "Shade House"}},
		},
	}
	ev := event("2468013579")
	fx.sessions.SetPendingRecType(ev.From, "foundation")

	out, err := fx.dispatcher.Dispatch(context.Background(), ev)
	require.NoError(t, err)

	assert.Equal(t, []string{"2468013579"}, fx.media.downloaded)
	assert.Equal(t, []string{"http://edge/recs/foundation"}, fx.beauty.recsCalls)

	require.Len(t, out, 3)
	require.NotNil(t, out[1].Text)
	assert.Equal(t, pauseBody, out[1].Text.Body)
	assert.Equal(t, []string{"Glow Co", "Shade House"}, titles(out[2]))

	_, ok := fx.sessions.PendingRecType(ev.From)
	assert.False(t, ok, "pending category should be consumed")
	_, ok = fx.sessions.Recommendations(ev.From)
	assert.True(t, ok, "recommendations should be cached for the brand pick")
}

func TestDispatchImageAtWrongTime(t *testing.T) {
	fx := newFixture(t)
	ev := event("2468013579")

	// A stale appended style with no opened flow doesn't qualify any branch,
	// but the image arrival still wipes it along with the rest.
	fx.sessions.AppendHairStyle(ev.From, "box braids")

	out, err := fx.dispatcher.Dispatch(context.Background(), ev)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NotNil(t, out[1].Text)
	assert.Equal(t, wrongTimeBody, out[1].Text.Body)

	assert.Empty(t, fx.beauty.recsCalls)
	assert.Empty(t, fx.beauty.tryOnCalls)
	assert.Empty(t, fx.sessions.HairStylePath(ev.From))
}

func TestDispatchImageDownloadFailure(t *testing.T) {
	fx := newFixture(t)
	fx.media.downloadErr = fmt.Errorf("media gone")
	ev := event("2468013579")
	fx.sessions.SetPendingRecType(ev.From, "foundation")

	_, err := fx.dispatcher.Dispatch(context.Background(), ev)
	require.Error(t, err)
	assert.Empty(t, fx.beauty.recsCalls)
}

func TestDispatchColorTryOnFlow(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	user := event("").From

	// Step 1: the try-on option opens the flow and lists brands.
	out, err := fx.dispatcher.Dispatch(ctx, event("💈 Color Try-On"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"Glow Co", "Shade House"}, titles(out[1]))
	assert.Equal(t, []string{"color try-on"}, fx.sessions.TryOnPath(user))

	// Step 2: the brand narrows to its shades.
	out, err = fx.dispatcher.Dispatch(ctx, event("Shade House"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"Jet Black", "Ruby Red"}, titles(out[1]))
	assert.Equal(t, []string{"color try-on", "shade house"}, fx.sessions.TryOnPath(user))

	// Step 3: the shade completes the selection and asks for a selfie.
	out, err = fx.dispatcher.Dispatch(ctx, event("Jet Black"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NotNil(t, out[1].Text)
	assert.Equal(t, selfieBody, out[1].Text.Body)
	assert.Equal(t, []string{"color try-on", "shade house", "jet black"}, fx.sessions.TryOnPath(user))

	// Step 4: the selfie triggers the transform with the resolved hex code.
	out, err = fx.dispatcher.Dispatch(ctx, event("1357924680"))
	require.NoError(t, err)

	require.Len(t, fx.beauty.tryOnCalls, 1)
	call := fx.beauty.tryOnCalls[0]
	assert.Equal(t, "http://edge/vto/color try-on", call.url)
	assert.Equal(t, "color", call.field)
	assert.Equal(t, "#000000", call.value)
	require.Len(t, fx.media.uploaded, 1)

	require.Len(t, out, 4)
	assert.Equal(t, pauseBody, out[1].Text.Body)
	require.NotNil(t, out[2].Image)
	assert.Equal(t, "media-1", out[2].Image.ID)
	assert.Equal(t, []string{"✅ Yes, please.", "❌ No, thanks."}, titles(out[3]))

	assert.Empty(t, fx.sessions.TryOnPath(user), "flow should be consumed")
}

func TestDispatchHairStyleFlow(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	user := event("").From

	out, err := fx.dispatcher.Dispatch(ctx, event("🎀 Style Try-On"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"Box Braids", "Pixie Cut"}, titles(out[1]))

	out, err = fx.dispatcher.Dispatch(ctx, event("Box Braids"))
	require.NoError(t, err)
	require.NotNil(t, out[1].Text)
	assert.Equal(t, selfieBody, out[1].Text.Body)
	assert.Equal(t, []string{"style try-on", "box braids"}, fx.sessions.HairStylePath(user))

	out, err = fx.dispatcher.Dispatch(ctx, event("1357924680"))
	require.NoError(t, err)

	require.Len(t, fx.beauty.tryOnCalls, 1)
	call := fx.beauty.tryOnCalls[0]
	assert.Equal(t, "http://edge/vto/hairstyle", call.url)
	assert.Equal(t, "hair", call.field)
	assert.Equal(t, "style_box_braids", call.value)

	require.Len(t, out, 4)
	require.NotNil(t, out[2].Image)
	assert.Empty(t, fx.sessions.HairStylePath(user))
}

func TestDispatchBrandSelectionShortList(t *testing.T) {
	fx := newFixture(t)
	ev := event("Glow Co")
	fx.sessions.SetRecommendations(ev.From, &beauty.Recommendations{
		CompanyNames: []string{"glow co"},
		CompanyProducts: map[string][]beauty.Product{
			"glow co": {
				{
					Company:       "Glow Co",
					Price:         "$32",
					ProductURL:    "https://glow.example/foundation",
					VideoTutorial: "https://video.example/1",
					Raw:           map[string]string{"Foundation": "True Match", "Shade": "W5"},
				},
				{Company: "Glow Co", Price: "$18", Raw: map[string]string{}},
			},
		},
	})

	out, err := fx.dispatcher.Dispatch(context.Background(), ev)
	require.NoError(t, err)

	// Read receipt, two product cards, follow-up menu.
	require.Len(t, out, 4)
	require.NotNil(t, out[1].Text)
	assert.Contains(t, out[1].Text.Body, "🤎 *Foundation*: ```True Match```")
	assert.Contains(t, out[1].Text.Body, "💰 *Price*: `$32`")
	assert.Contains(t, out[1].Text.Body, "🛍️ *Buy*: ```https://glow.example/foundation```")
	assert.Equal(t, []string{"✅ Yes, please.", "❌ No, thanks."}, titles(out[3]))

	_, ok := fx.sessions.Recommendations(ev.From)
	assert.False(t, ok, "cache should be consumed")
}

func TestProductCardPrependsCategoryFields(t *testing.T) {
	card := productCard(beauty.Product{
		Price:         "$32",
		ProductURL:    "https://glow.example/foundation",
		VideoTutorial: "https://video.example/1",
		Raw:           map[string]string{"Foundation": "True Match", "Shade": "W5"},
	})

	shadeAt := strings.Index(card, "🤎 *Shade*")
	foundationAt := strings.Index(card, "🤎 *Foundation*")
	priceAt := strings.Index(card, "💰 *Price*")
	require.GreaterOrEqual(t, shadeAt, 0)
	require.GreaterOrEqual(t, foundationAt, 0)
	assert.Less(t, shadeAt, foundationAt, "later-matched fields come first")
	assert.Less(t, foundationAt, priceAt)
}

func TestDispatchBrandSelectionLongListShipsPDF(t *testing.T) {
	fx := newFixture(t)
	ev := event("Shade House")

	products := make([]beauty.Product, 6)
	for i := range products {
		products[i] = beauty.Product{
			Company: "Shade House",
			Price:   fmt.Sprintf("$%d", 10+i),
			Raw:     map[string]string{"Shade": fmt.Sprintf("S%d", i)},
		}
	}
	fx.sessions.SetRecommendations(ev.From, &beauty.Recommendations{
		CompanyNames:    []string{"shade house"},
		CompanyProducts: map[string][]beauty.Product{"shade house": products},
	})

	out, err := fx.dispatcher.Dispatch(context.Background(), ev)
	require.NoError(t, err)

	require.Len(t, fx.media.uploaded, 1)
	require.Len(t, out, 3)
	require.NotNil(t, out[1].Document)
	assert.Equal(t, "media-1", out[1].Document.ID)
	assert.Equal(t, "Ama's Recommendations.pdf", out[1].Document.Filename)
}

func TestDispatchNoThanksResetsSession(t *testing.T) {
	fx := newFixture(t)
	ev := event("❌ No, thanks.")
	fx.sessions.SetRecommendations(ev.From, &beauty.Recommendations{CompanyNames: []string{"glow co"}})
	fx.sessions.SetPendingRecType(ev.From, "foundation")

	out, err := fx.dispatcher.Dispatch(context.Background(), ev)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NotNil(t, out[1].Text)
	assert.Equal(t, noThanksBody, out[1].Text.Body)

	_, ok := fx.sessions.PendingRecType(ev.From)
	assert.False(t, ok)
	_, ok = fx.sessions.Recommendations(ev.From)
	assert.False(t, ok)
}

func TestDispatchYesPleaseReopensMenu(t *testing.T) {
	fx := newFixture(t)

	out, err := fx.dispatcher.Dispatch(context.Background(), event("✅ Yes, please."))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"💄 Product Recs", "🪞 Try-On"}, titles(out[1]))
}

func TestDispatchFallback(t *testing.T) {
	fx := newFixture(t)

	out, err := fx.dispatcher.Dispatch(context.Background(), event("what's the weather like?"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NotNil(t, out[1].Text)
	assert.Equal(t, staticFallbackBody, out[1].Text.Body)
}

func TestDispatchIsDeterministic(t *testing.T) {
	fx := newFixture(t)

	first, err := fx.dispatcher.Dispatch(context.Background(), event("hair"))
	require.NoError(t, err)
	second, err := fx.dispatcher.Dispatch(context.Background(), event("hair"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStripEmoji(t *testing.T) {
	cases := map[string]string{
		"💄 product recs": "product recs",
		"☺️ cheeks":       "cheeks", // emoji plus variation selector
		"🎨 foundation":    "foundation",
		"hi":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, stripEmoji(in), in)
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Jet Black", titleCase("jet black"))
	assert.Equal(t, []string{"Box Braids", "Pixie Cut"}, titleCaseAll([]string{"box braids", "pixie cut"}))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("1234567890"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("12a4"))
	assert.False(t, isDigits("hello"))
}
