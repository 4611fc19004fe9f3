package bot

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"robomua/aiysha-bot/internal/beauty"
	"robomua/aiysha-bot/internal/catalog"
	"robomua/aiysha-bot/internal/metrics"
	"robomua/aiysha-bot/internal/session"
	"robomua/aiysha-bot/internal/whatsapp"
)

// Media moves files between the platform and the local disk.
type Media interface {
	DownloadMedia(ctx context.Context, mediaID, numberID string) (string, error)
	UploadMedia(ctx context.Context, path, numberID string) (string, error)
}

// BeautyService is the recommendation / try-on edge surface.
type BeautyService interface {
	RecsURL(recType string) (string, error)
	TryOnURL(vtoType string) (string, error)
	HairStyleURL() string
	FetchTryOnImage(ctx context.Context, url, field, value, photoPath string) (string, error)
	FetchRecommendations(ctx context.Context, url, photoPath string) (*beauty.Recommendations, error)
}

// Event is one normalized inbound message.
type Event struct {
	From      string // user phone number
	MessageID string
	Name      string // contact profile name
	NumberID  string // business phone number id
	Text      string // normalizer output
}

// handlerFunc consumes the matched text and appends payloads to out.
type handlerFunc func(ctx context.Context, ev Event, text string, out []whatsapp.Payload) ([]whatsapp.Payload, error)

// keywordRule pairs one menu keyword with its handler. Declaration order is
// the dispatch priority: rules are tried top to bottom and the first match
// wins, so a keyword that shadows a later one does so on purpose.
type keywordRule struct {
	keyword string
	intent  string
	handle  handlerFunc
}

// Dispatcher routes each inbound message to exactly one intent handler.
type Dispatcher struct {
	sessions session.Store
	catalog  *catalog.Catalog
	media    Media
	beauty   BeautyService
	fallback Fallback
	log      *zap.Logger

	rules []keywordRule
}

func NewDispatcher(sessions session.Store, cat *catalog.Catalog, media Media, beautySvc BeautyService, fallback Fallback, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sessions: sessions,
		catalog:  cat,
		media:    media,
		beauty:   beautySvc,
		fallback: fallback,
		log:      log,
	}
	d.rules = []keywordRule{
		{"product recs", "product_recs", d.handleProductRecs},
		{"face", "face", d.handleFace},
		{"cheeks", "cheeks", d.handleCheeks},
		{"body", "body", d.handleBody},
		{"try-on", "try_on", d.handleTryOn},
		{"hair", "hair", d.handleHair},
		{"lips", "lips", d.handleLips},
		{"style try-on", "style_try_on", d.handleStyleTryOn},
		{"yes, please.", "yes_please", d.handleYesPlease},
		{"no, thanks.", "no_thanks", d.handleNoThanks},
	}
	for _, category := range allImageOptions {
		d.rules = append(d.rules, keywordRule{category, "recs_selfie", d.handleRecsSelfie})
	}
	for _, option := range plusColorOptions {
		d.rules = append(d.rules, keywordRule{option, "color_options", d.handleColorOptions})
	}
	for _, style := range []string{
		"box braids", "kinky twist", "lemonade braids", "bantu knots",
		"wavy bob", "high top fade", "buzz cut", "twist out",
		"wash n go", "pixie cut",
	} {
		d.rules = append(d.rules, keywordRule{style, "style_selfie", d.handleStyleSelfie})
	}
	return d
}

// Dispatch selects and runs one handler for the event, first match wins. The
// returned payload sequence always opens with a read receipt. Handler errors
// are not caught here; the worker owns the per-event boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) ([]whatsapp.Payload, error) {
	start := time.Now()
	defer func() {
		metrics.DispatchLatency.Observe(float64(time.Since(start).Milliseconds()))
	}()

	text := strings.ToLower(ev.Text)
	stripped := stripEmoji(text)

	out := []whatsapp.Payload{whatsapp.MarkRead(ev.MessageID)}

	// 1. Greeting: the whole text is a greeting word.
	if isGreeting(text) {
		return d.selected("greeting", d.handleGreeting)(ctx, ev, text, out)
	}

	// 2./3. Keyword table: emoji-stripped equality first, then raw equality,
	// in declaration order.
	for _, rule := range d.rules {
		if stripped == rule.keyword {
			return d.selected(rule.intent, rule.handle)(ctx, ev, stripped, out)
		}
		if text == rule.keyword {
			return d.selected(rule.intent, rule.handle)(ctx, ev, text, out)
		}
	}

	// 4. A digits-only text is a media id: the selfie arrived.
	if isDigits(text) {
		return d.selected("image_arrival", d.handleImageArrival)(ctx, ev, text, out)
	}

	// 5. One of the cached company names: the user picked a brand.
	if recs, ok := d.sessions.Recommendations(ev.From); ok && containsOption(text, recs.CompanyNames) {
		return d.selected("brand_selection", d.handleBrandSelection)(ctx, ev, text, out)
	}

	// 6./7. Options nested under the pending try-on path.
	if path := d.sessions.TryOnPath(ev.From); len(path) > 0 {
		brands, err := d.catalog.Options(path[0])
		if err != nil {
			return out, err
		}
		if containsOption(text, brands) {
			return d.selected("try_on_option", d.handleTryOnOption)(ctx, ev, text, out)
		}
		if len(path) > 1 {
			shades, err := d.catalog.Options(path[0], path[len(path)-1])
			if err != nil {
				return out, err
			}
			if containsOption(text, shades) {
				return d.selected("try_on_selfie", d.handleTryOnSelfie)(ctx, ev, text, out)
			}
		}
	}

	// 8. Nothing matched.
	return d.selected("fallback", d.handleFallback)(ctx, ev, text, out)
}

func (d *Dispatcher) selected(intent string, h handlerFunc) handlerFunc {
	metrics.HandlerSelected.WithLabelValues(intent).Inc()
	d.log.Debug("intent selected", zap.String("intent", intent))
	return h
}
