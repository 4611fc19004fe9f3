package bot

import (
	"strings"
	"unicode"
)

// greetings is the fixed greeting vocabulary, matched against the whole text.
var greetings = map[string]struct{}{}

func init() {
	for _, g := range []string{
		"hello", "hi", "hey", "howdy", // English
		"hola",              // Spanish
		"bonjour",           // French
		"hallo",             // German
		"ciao",              // Italian
		"ola",               // Portuguese
		"namaste",           // Hindi
		"salaam",            // Arabic
		"nihao",             // Mandarin Chinese
		"kon'nichiwa",       // Japanese
		"annyeonghaseyo",    // Korean
		"zdravstvuyte",      // Russian
		"merhaba",           // Turkish
		"szia",              // Hungarian
		"jambo",             // Swahili
		"hej",               // Swedish
		"sawubona",          // Zulu
		"shalom",            // Hebrew
		"salam",             // Persian
		"xin chào",          // Vietnamese
		"sveiki",            // Latvian
		"labas",             // Lithuanian
		"hei",               // Norwegian
		"privet",            // Russian (informal)
		"ahoj",              // Czech
		"hujambo",           // Swahili
		"kamusta",           // Filipino
		"yassou",            // Greek
		"selam",             // Amharic
		"sannu",             // Hausa
		"asalaam alaikum",   // Arabic (formal)
		"marhaba",           // Arabic (informal)
		"namaskar",          // Bengali
		"sat sri akal",      // Punjabi
		"vanakkam",          // Tamil
		"salaam aleikum",    // Wolof
		"mbote",             // Lingala
	} {
		greetings[g] = struct{}{}
	}
}

var (
	faceOptions   = []string{"foundation", "skin tint", "concealer", "setting powder"}
	cheeksOptions = []string{"contour", "bronzer"}
	bodyOptions   = []string{"shapewear", "nude shoes"}

	// allImageOptions are the categories whose flow ends with a selfie and a
	// recommendation fetch.
	allImageOptions = append(append(append([]string{}, faceOptions...), cheeksOptions...), bodyOptions...)

	hairColorOptions = []string{"color try-on"}
	lipsOptions      = []string{"lip stick try-on", "lip liner try-on"}

	// plusColorOptions are the try-on flows that resolve a hex color code.
	plusColorOptions = append(append([]string{}, hairColorOptions...), lipsOptions...)
)

// isGreeting reports whether text is exactly one of the greeting words.
func isGreeting(text string) bool {
	_, ok := greetings[text]
	return ok
}

// stripEmoji removes the conventional leading emoji and following space (the
// first two runes) from a menu label, then trims the rest.
func stripEmoji(text string) string {
	runes := []rune(text)
	if len(runes) <= 2 {
		return ""
	}
	return strings.TrimSpace(string(runes[2:]))
}

// isDigits reports whether text is a non-empty run of ASCII digits, the shape
// of a numeric media id.
func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// containsOption reports whether text contains any of the options.
func containsOption(text string, options []string) bool {
	for _, opt := range options {
		if strings.Contains(text, opt) {
			return true
		}
	}
	return false
}

// matchOption returns the first option contained in text.
func matchOption(text string, options []string) (string, bool) {
	for _, opt := range options {
		if strings.Contains(text, opt) {
			return opt, true
		}
	}
	return "", false
}

// titleCase capitalizes each space-separated word, the way menu rows are shown.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = string(unicode.ToUpper(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

func titleCaseAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = titleCase(item)
	}
	return out
}
