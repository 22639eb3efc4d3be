package bot

import (
	"context"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// Register wires every inbound Telegram event onto its handler method.
// Events are independent; the only state between them lives in the two
// collections.
func Register(b *tele.Bot, h *Handler) {
	b.Handle("/start", func(c tele.Context) error {
		return h.HandleStart(context.Background(), c.Sender().ID, c.Chat().ID)
	})

	b.Handle(tele.OnCallback, func(c tele.Context) error {
		data := strings.TrimPrefix(strings.TrimSpace(c.Callback().Data), "\f")
		code, ok := strings.CutPrefix(data, "lang_")
		if !ok {
			// Not a language button; nothing else uses callbacks.
			return c.Respond()
		}
		if err := h.HandleLanguageSelect(context.Background(), c.Sender().ID, code, c.Callback().Message); err != nil {
			return err
		}
		return c.Respond()
	})

	b.Handle("/buy", func(c tele.Context) error {
		return h.HandleBuy(context.Background(), c.Sender().ID, c.Chat().ID)
	})

	// Telegram requires the pre-checkout query to be answered before the
	// payment goes through. There is nothing to validate for a fixed-price
	// invoice, so always accept.
	b.Handle(tele.OnCheckout, func(c tele.Context) error {
		return c.Accept()
	})

	b.Handle(tele.OnPayment, func(c tele.Context) error {
		return h.HandlePaymentSuccess(context.Background(), c.Sender().ID, c.Chat().ID)
	})

	b.Handle("/play", func(c tele.Context) error {
		return h.HandlePlay(context.Background(), c.Sender().ID, c.Chat().ID)
	})

	b.Handle("/uploadaudio", func(c tele.Context) error {
		var audio *ReplyAudio
		if reply := c.Message().ReplyTo; reply != nil && reply.Audio != nil {
			audio = &ReplyAudio{
				FileID: reply.Audio.FileID,
				Title:  reply.Audio.Title,
			}
		}
		return h.HandleUpload(context.Background(), c.Sender().ID, c.Chat().ID, audio)
	})
}
