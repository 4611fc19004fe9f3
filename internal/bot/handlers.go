package bot

import (
	"context"
	"fmt"
	"os"
	"strings"

	"robomua/aiysha-bot/internal/beauty"
	"robomua/aiysha-bot/internal/pdfgen"
	"robomua/aiysha-bot/internal/whatsapp"
)

func (d *Dispatcher) handleGreeting(_ context.Context, ev Event, _ string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.ReactionMessage(ev.From, ev.MessageID, "❤️"))
	out = append(out, whatsapp.ButtonMenu(ev.From, []string{"💄 Product Recs", "🪞 Try-On"}, greetingBody, footer, "intro"))
	return out, nil
}

func (d *Dispatcher) handleProductRecs(_ context.Context, ev Event, _ string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.ListMenu(ev.From, []string{"😀 Face", "☺️ Cheeks", "👤 Body"}, productRecsBody, footer, "product_recs"))
	return out, nil
}

func (d *Dispatcher) handleFace(_ context.Context, ev Event, _ string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.ListMenu(ev.From, []string{"🎨 Foundation", "🙈 Concealer", "💎 Setting Powder"}, faceBody, footer, "face"))
	return out, nil
}

func (d *Dispatcher) handleCheeks(_ context.Context, ev Event, _ string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.ButtonMenu(ev.From, []string{"😊 Contour", "🥉 Bronzer"}, cheeksBody, footer, "cheeks"))
	return out, nil
}

func (d *Dispatcher) handleBody(_ context.Context, ev Event, _ string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.ButtonMenu(ev.From, []string{"🩱 Shapewear", "🥿 Nude Shoes"}, bodyBody, footer, "body"))
	return out, nil
}

func (d *Dispatcher) handleTryOn(_ context.Context, ev Event, _ string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.ButtonMenu(ev.From, []string{"🪮 Hair", "👄 Lips"}, tryOnBody, footer, "vto"))
	return out, nil
}

func (d *Dispatcher) handleHair(_ context.Context, ev Event, _ string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.ButtonMenu(ev.From, []string{"💈 Color Try-On", "🎀 Style Try-On"}, hairBody, footer, "hair"))
	return out, nil
}

func (d *Dispatcher) handleLips(_ context.Context, ev Event, _ string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.ButtonMenu(ev.From, []string{"💋 Lip Stick Try-On", "🫦 Lip Liner Try-On"}, lipsBody, footer, "lips"))
	return out, nil
}

// handleStyleTryOn opens the hairstyle flow and lists the styles the catalog
// knows for it.
func (d *Dispatcher) handleStyleTryOn(_ context.Context, ev Event, text string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	d.sessions.PushHairStyle(ev.From, text)
	styles, err := d.catalog.Options(text)
	if err != nil {
		return out, err
	}
	out = append(out, whatsapp.ListMenu(ev.From, titleCaseAll(styles), styleTryOnBody, footer, "vto_opt_3"))
	return out, nil
}

func (d *Dispatcher) handleYesPlease(_ context.Context, ev Event, _ string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.ButtonMenu(ev.From, []string{"💄 Product Recs", "🪞 Try-On"}, yesPleaseBody, footer, "intro"))
	return out, nil
}

// handleNoThanks plugs the app and returns the user to idle.
func (d *Dispatcher) handleNoThanks(_ context.Context, ev Event, _ string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	d.sessions.ClearPending(ev.From)
	d.sessions.ClearRecommendations(ev.From)
	out = append(out, whatsapp.TextMessage(ev.From, noThanksBody))
	return out, nil
}

// handleRecsSelfie records the chosen product category and asks for a selfie.
func (d *Dispatcher) handleRecsSelfie(_ context.Context, ev Event, text string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	d.sessions.SetPendingRecType(ev.From, text)
	out = append(out, whatsapp.TextMessage(ev.From, selfieBody))
	return out, nil
}

// handleColorOptions opens a color try-on flow and lists its brands.
func (d *Dispatcher) handleColorOptions(_ context.Context, ev Event, text string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	d.sessions.PushTryOn(ev.From, text)
	brands, err := d.catalog.Options(text)
	if err != nil {
		return out, err
	}
	out = append(out, whatsapp.ListMenu(ev.From, titleCaseAll(brands), vtoBrandBody, footer, "vto_opt_1"))
	return out, nil
}

// handleStyleSelfie records the chosen hairstyle and asks for a selfie.
func (d *Dispatcher) handleStyleSelfie(_ context.Context, ev Event, text string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	d.sessions.AppendHairStyle(ev.From, text)
	out = append(out, whatsapp.TextMessage(ev.From, selfieBody))
	return out, nil
}

// handleTryOnOption records the chosen brand and lists its shades.
func (d *Dispatcher) handleTryOnOption(_ context.Context, ev Event, text string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	path := d.sessions.TryOnPath(ev.From)
	if len(path) == 0 {
		return out, fmt.Errorf("try-on option %q with no pending flow", text)
	}
	brands, err := d.catalog.Options(path[0])
	if err != nil {
		return out, err
	}
	brand, ok := matchOption(text, brands)
	if !ok {
		return out, fmt.Errorf("no brand matching %q under %q", text, path[0])
	}
	d.sessions.AppendTryOn(ev.From, brand)
	shades, err := d.catalog.Options(path[0], brand)
	if err != nil {
		return out, err
	}
	out = append(out, whatsapp.ListMenu(ev.From, titleCaseAll(shades), vtoShadeBody, footer, "vto_opt_2"))
	return out, nil
}

// handleTryOnSelfie records the chosen shade and asks for a selfie.
func (d *Dispatcher) handleTryOnSelfie(_ context.Context, ev Event, text string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	path := d.sessions.TryOnPath(ev.From)
	if len(path) < 2 {
		return out, fmt.Errorf("try-on selfie %q with incomplete flow %v", text, path)
	}
	shades, err := d.catalog.Options(path[0], path[len(path)-1])
	if err != nil {
		return out, err
	}
	shade, ok := matchOption(text, shades)
	if !ok {
		return out, fmt.Errorf("no shade matching %q under %v", text, path)
	}
	d.sessions.AppendTryOn(ev.From, shade)
	out = append(out, whatsapp.TextMessage(ev.From, selfieBody))
	return out, nil
}

// handleImageArrival downloads the photo the media id points at and finishes
// whichever flow was pending: recommendation fetch, color try-on, or hairstyle
// try-on. A photo with no pending flow earns the "wrong time" reply. All three
// pending fields are cleared in every branch.
func (d *Dispatcher) handleImageArrival(ctx context.Context, ev Event, mediaID string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	photo, err := d.media.DownloadMedia(ctx, mediaID, ev.NumberID)
	if err != nil {
		return out, fmt.Errorf("error downloading selfie: %w", err)
	}
	defer os.Remove(photo)
	defer d.sessions.ClearPending(ev.From)

	recType, hasRec := d.sessions.PendingRecType(ev.From)
	tryOnPath := d.sessions.TryOnPath(ev.From)
	hairPath := d.sessions.HairStylePath(ev.From)

	switch {
	case hasRec && containsOption(recType, allImageOptions):
		return d.finishRecommendations(ctx, ev, recType, photo, out)

	case pathContains(tryOnPath, plusColorOptions):
		return d.finishColorTryOn(ctx, ev, tryOnPath, photo, out)

	case pathContains(hairPath, []string{"style try-on"}):
		return d.finishHairStyle(ctx, ev, hairPath, photo, out)

	default:
		out = append(out, whatsapp.TextMessage(ev.From, wrongTimeBody))
		return out, nil
	}
}

// pathContains reports whether any of options is an element of path.
func pathContains(path, options []string) bool {
	for _, elem := range path {
		for _, opt := range options {
			if elem == opt {
				return true
			}
		}
	}
	return false
}

func (d *Dispatcher) finishRecommendations(ctx context.Context, ev Event, recType, photo string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.TextMessage(ev.From, pauseBody))

	url, err := d.beauty.RecsURL(recType)
	if err != nil {
		return out, err
	}
	recs, err := d.beauty.FetchRecommendations(ctx, url, photo)
	if err != nil {
		return out, fmt.Errorf("error fetching recommendations: %w", err)
	}
	d.sessions.SetRecommendations(ev.From, recs)

	out = append(out, whatsapp.ListMenu(ev.From, titleCaseAll(recs.CompanyNames), brandPickBody, footer, "brands_product_recs"))
	return out, nil
}

func (d *Dispatcher) finishColorTryOn(ctx context.Context, ev Event, path []string, photo string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.TextMessage(ev.From, pauseBody))

	if len(path) < 3 {
		return out, fmt.Errorf("incomplete try-on selection %v", path)
	}
	topLevel := path[len(path)-3]
	brand := path[len(path)-2]
	shade := path[len(path)-1]

	hexCode, err := d.catalog.Resolve(topLevel, brand, shade)
	if err != nil {
		return out, err
	}
	url, err := d.beauty.TryOnURL(topLevel)
	if err != nil {
		return out, err
	}

	rendered, err := d.beauty.FetchTryOnImage(ctx, url, "color", hexCode, photo)
	if err != nil {
		return out, fmt.Errorf("error fetching try-on image: %w", err)
	}
	defer os.Remove(rendered)

	imageID, err := d.media.UploadMedia(ctx, rendered, ev.NumberID)
	if err != nil {
		return out, fmt.Errorf("error uploading try-on image: %w", err)
	}

	out = append(out, whatsapp.ImageMessage(ev.From, imageID))
	out = append(out, d.followUp(ev))
	return out, nil
}

func (d *Dispatcher) finishHairStyle(ctx context.Context, ev Event, path []string, photo string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	out = append(out, whatsapp.TextMessage(ev.From, pauseBody))

	if len(path) < 2 {
		return out, fmt.Errorf("incomplete hairstyle selection %v", path)
	}
	topLevel := path[len(path)-2]
	style := path[len(path)-1]

	styleCode, err := d.catalog.Resolve(topLevel, style)
	if err != nil {
		return out, err
	}

	rendered, err := d.beauty.FetchTryOnImage(ctx, d.beauty.HairStyleURL(), "hair", styleCode, photo)
	if err != nil {
		return out, fmt.Errorf("error fetching hairstyle image: %w", err)
	}
	defer os.Remove(rendered)

	imageID, err := d.media.UploadMedia(ctx, rendered, ev.NumberID)
	if err != nil {
		return out, fmt.Errorf("error uploading hairstyle image: %w", err)
	}

	out = append(out, whatsapp.ImageMessage(ev.From, imageID))
	out = append(out, d.followUp(ev))
	return out, nil
}

// handleBrandSelection replies with the cached products of the brand the user
// picked: a short list fits in text messages, a long one ships as a PDF. The
// cache is cleared once consumed.
func (d *Dispatcher) handleBrandSelection(ctx context.Context, ev Event, text string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	recs, ok := d.sessions.Recommendations(ev.From)
	if !ok {
		return out, fmt.Errorf("brand selection %q with no cached recommendations", text)
	}
	company, ok := matchOption(text, recs.CompanyNames)
	if !ok {
		return out, fmt.Errorf("no cached company matching %q", text)
	}
	products := recs.CompanyProducts[company]

	if len(products) > 5 {
		pdfPath, err := pdfgen.CreateRecommendations(products)
		if err != nil {
			return out, err
		}
		defer os.Remove(pdfPath)

		docID, err := d.media.UploadMedia(ctx, pdfPath, ev.NumberID)
		if err != nil {
			return out, fmt.Errorf("error uploading recommendations PDF: %w", err)
		}
		out = append(out, whatsapp.DocumentMessage(
			ev.From, docID, "Your Recommendations",
			fmt.Sprintf("%s's Recommendations.pdf", ev.Name)))
	} else {
		for _, product := range products {
			out = append(out, whatsapp.TextMessage(ev.From, productCard(product)))
		}
	}

	d.sessions.ClearRecommendations(ev.From)
	out = append(out, d.followUp(ev))
	return out, nil
}

// productCard formats one product record: category fields first (each matched
// field is prepended, so a record carrying several shows them in reverse match
// order), then price, buy link, and tutorial.
func productCard(product beauty.Product) string {
	var categories string
	for _, key := range []string{"Foundation", "Shade", "Concealer", "Shoe"} {
		if v, ok := product.Raw[key]; ok {
			categories = fmt.Sprintf("🤎 *%s*: ```%s```\n", key, v) + categories
		}
	}

	var b strings.Builder
	b.WriteString(categories)
	fmt.Fprintf(&b, "💰 *Price*: `%s`\n", product.Price)
	fmt.Fprintf(&b, "🛍️ *Buy*: ```%s```\n", product.ProductURL)
	fmt.Fprintf(&b, "🎬 *Tutorial*: ```%s```\n", product.VideoTutorial)
	return b.String()
}

func (d *Dispatcher) handleFallback(ctx context.Context, ev Event, text string, out []whatsapp.Payload) ([]whatsapp.Payload, error) {
	reply, err := d.fallback.Reply(ctx, ev.From, text)
	if err != nil {
		return out, fmt.Errorf("fallback responder: %w", err)
	}
	out = append(out, whatsapp.TextMessage(ev.From, reply))
	return out, nil
}

func (d *Dispatcher) followUp(ev Event) whatsapp.Payload {
	return whatsapp.ButtonMenu(ev.From, []string{"✅ Yes, please.", "❌ No, thanks."}, followUpBody, footer, "scenario4")
}
