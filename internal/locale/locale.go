// Package locale holds the static bilingual template table. Templates are
// fmt-style format strings.
package locale

import "fmt"

// Default is the language assumed for new users and used as the fallback
// when a stored tag is missing or not in the supported set.
const Default = "en"

// ChoosePrompt is shown before any language is stored, so it carries both
// languages at once.
const ChoosePrompt = "🌐 Choose Language / மொழியைத் தேர்ந்தெடுக்கவும்"

var bundles = map[string]map[string]string{
	"en": {
		"welcome":        "👋 Welcome! Type /buy to purchase premium audio.",
		"paid":           "✅ Payment successful! Access valid until %s",
		"play":           "▶️ Playing track %d of %d",
		"expired":        "⚠️ Your access expired. Use /buy to get access again.",
		"upload_success": "✅ Track added to playlist.",
		"upload_usage":   "❗ Reply to an audio to add to playlist.",
		"queue_empty":    "📭 Playlist is empty.",
		"already_paid":   "✅ You already have access until %s",
	},
	"ta": {
		"welcome":        "👋 வரவேற்கிறோம்! பிரீமியம் ஆடியோக்கள் பெற /buy பயன்படுத்தவும்.",
		"paid":           "✅ கட்டணம் பெற்றது! உங்கள் அணுகல் %s வரை செல்லுபடியாகும்.",
		"play":           "▶️ பாடல் %d / %d",
		"expired":        "⚠️ உங்கள் அணுகல் காலாவதியானது. மீண்டும் /buy பயன்படுத்தவும்.",
		"upload_success": "✅ பாடல் வெற்றிகரமாக சேர்க்கப்பட்டது.",
		"upload_usage":   "❗ பிளேலிஸ்டில் சேர்க்க ஒரு ஆடியோவிற்கு பதிலளிக்கவும்.",
		"queue_empty":    "📭 பிளேலிஸ்ட் காலியாக உள்ளது.",
		"already_paid":   "✅ நீங்கள் ஏற்கனவே %s வரை அணுகலுடன் இருக்கிறீர்கள்.",
	},
}

// Known reports whether code is a supported language tag.
func Known(code string) bool {
	_, ok := bundles[code]
	return ok
}

// T formats the template for the given language and key. Unknown languages
// fall back to the Default bundle rather than erroring.
func T(code, key string, args ...interface{}) string {
	bundle, ok := bundles[code]
	if !ok {
		bundle = bundles[Default]
	}
	tmpl, ok := bundle[key]
	if !ok {
		tmpl = bundles[Default][key]
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
