package bot

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v3"

	"github.com/tamilred/playerbot/internal/locale"
	"github.com/tamilred/playerbot/internal/utils"
)

const (
	// audioPrice is in INR; the minor-unit multiplier is applied when the
	// invoice is built.
	audioPrice     = 49
	accessWindow   = 24 * time.Hour
	invoicePayload = "audio_payment_payload"
	expiryLayout   = "2006-01-02 15:04:05"
)

type Handler struct {
	logger        *logrus.Entry
	telegram      utils.TelegramAPI
	users         utils.UserRepository
	playlist      utils.PlaylistRepository
	adminID       int64
	providerToken string
	now           func() time.Time
}

func NewHandler(logger *logrus.Entry, telegram utils.TelegramAPI, users utils.UserRepository, playlist utils.PlaylistRepository, adminID int64, providerToken string) *Handler {
	return &Handler{
		logger:        logger,
		telegram:      telegram,
		users:         users,
		playlist:      playlist,
		adminID:       adminID,
		providerToken: providerToken,
		now:           time.Now,
	}
}

// langFor resolves the stored language for a user. Missing records, unknown
// tags and store errors all fall back to the default language; the lookup
// never fails the interaction.
func (h *Handler) langFor(ctx context.Context, userID int64) string {
	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		h.logger.WithError(err).WithField("userId", userID).Error("Failed to get user for language lookup")
		return locale.Default
	}
	if user == nil || !locale.Known(user.Lang) {
		return locale.Default
	}
	return user.Lang
}

// HandleStart ensures a user record exists and offers the language choices.
func (h *Handler) HandleStart(ctx context.Context, userID, chatID int64) error {
	h.logger.WithField("userId", userID).Info("Handling /start")

	if err := h.users.EnsureUser(ctx, userID); err != nil {
		return err
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("🇬🇧 English", "lang_en"),
		markup.Data("🇮🇳 தமிழ்", "lang_ta"),
	))
	return h.telegram.SendText(chatID, locale.ChoosePrompt, markup)
}

// HandleLanguageSelect stores the selected language and edits the
// triggering message into the welcome text. Unknown tags are not stored;
// the user gets the default-language welcome instead.
func (h *Handler) HandleLanguageSelect(ctx context.Context, userID int64, code string, msg tele.Editable) error {
	if !locale.Known(code) {
		h.logger.WithFields(logrus.Fields{
			"userId": userID,
			"lang":   code,
		}).Warn("Ignoring unknown language tag")
		return h.telegram.EditText(msg, locale.T(locale.Default, "welcome"))
	}

	if err := h.users.SetLanguage(ctx, userID, code); err != nil {
		return err
	}
	return h.telegram.EditText(msg, locale.T(code, "welcome"))
}

// HandleBuy sends a payment invoice unless the user is still entitled, in
// which case the existing expiry is reported and nothing is charged.
func (h *Handler) HandleBuy(ctx context.Context, userID, chatID int64) error {
	lang := h.langFor(ctx, userID)

	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.Entitled(h.now()) {
		return h.telegram.SendText(chatID, locale.T(lang, "already_paid", user.Expiry.UTC().Format(expiryLayout)), nil)
	}

	return h.telegram.SendInvoice(chatID, utils.Invoice{
		Title:       "Premium Audio Access",
		Description: "Unlock all playlist tracks",
		Payload:     invoicePayload,
		Token:       h.providerToken,
		Currency:    "INR",
		Amount:      audioPrice * 100,
		Start:       "audio_access",
	})
}

// HandlePaymentSuccess sets the entitlement window and delivers the
// playlist. A payment while still entitled resets the window from the
// confirmation time; remaining time does not accumulate.
func (h *Handler) HandlePaymentSuccess(ctx context.Context, userID, chatID int64) error {
	// Expiry is stored and displayed in UTC so the paid and already_paid
	// messages can never disagree about the same entitlement.
	expiry := h.now().UTC().Add(accessWindow)
	if err := h.users.SetExpiry(ctx, userID, expiry); err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"userId": userID,
		"expiry": expiry.Format(time.RFC3339),
	}).Info("Payment confirmed")

	lang := h.langFor(ctx, userID)
	if err := h.telegram.SendText(chatID, locale.T(lang, "paid", expiry.Format(expiryLayout)), nil); err != nil {
		return err
	}
	return h.HandlePlay(ctx, userID, chatID)
}

// HandlePlay re-checks the entitlement and delivers every track with a
// positional caption. Entitlement decay is evaluated here lazily; no event
// marks it.
func (h *Handler) HandlePlay(ctx context.Context, userID, chatID int64) error {
	lang := h.langFor(ctx, userID)

	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Entitled(h.now()) {
		return h.telegram.SendText(chatID, locale.T(lang, "expired"), nil)
	}

	tracks, err := h.playlist.ListTracks(ctx)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		return h.telegram.SendText(chatID, locale.T(lang, "queue_empty"), nil)
	}

	for i, track := range tracks {
		caption := locale.T(lang, "play", i+1, len(tracks))
		if err := h.telegram.SendAudio(chatID, track.FileID, caption); err != nil {
			return err
		}
	}
	return nil
}

// ReplyAudio describes the audio attachment of the message an upload
// command replied to.
type ReplyAudio struct {
	FileID string
	Title  string
}

// HandleUpload appends a track to the playlist. Non-admin senders are
// ignored outright; an admin command that is not a reply to an audio gets a
// usage notice and changes nothing.
func (h *Handler) HandleUpload(ctx context.Context, senderID, chatID int64, audio *ReplyAudio) error {
	if senderID != h.adminID {
		h.logger.WithField("userId", senderID).Warn("Ignoring upload from non-admin")
		return nil
	}

	lang := h.langFor(ctx, senderID)
	if audio == nil || audio.FileID == "" {
		return h.telegram.SendText(chatID, locale.T(lang, "upload_usage"), nil)
	}

	if err := h.playlist.AddTrack(ctx, audio.FileID, audio.Title); err != nil {
		return err
	}
	return h.telegram.SendText(chatID, locale.T(lang, "upload_success"), nil)
}
