package utils

import (
	tele "gopkg.in/telebot.v3"
)

// Invoice carries the parameters of a fixed-price payment request. Amount
// is in the currency's minor units.
type Invoice struct {
	Title       string
	Description string
	Payload     string
	Token       string
	Currency    string
	Amount      int
	Start       string
}

// TelegramAPI defines the outbound Telegram operations needed by our
// application.
type TelegramAPI interface {
	SendText(chatID int64, text string, markup *tele.ReplyMarkup) error
	EditText(msg tele.Editable, text string) error
	SendInvoice(chatID int64, invoice Invoice) error
	SendAudio(chatID int64, fileID, caption string) error
}

type TelegramClient struct {
	bot *tele.Bot
}

func NewTelegramClient(bot *tele.Bot) TelegramAPI {
	return &TelegramClient{
		bot: bot,
	}
}

func (c *TelegramClient) SendText(chatID int64, text string, markup *tele.ReplyMarkup) error {
	if markup != nil {
		_, err := c.bot.Send(tele.ChatID(chatID), text, markup)
		return err
	}
	_, err := c.bot.Send(tele.ChatID(chatID), text)
	return err
}

func (c *TelegramClient) EditText(msg tele.Editable, text string) error {
	_, err := c.bot.Edit(msg, text)
	return err
}

func (c *TelegramClient) SendInvoice(chatID int64, invoice Invoice) error {
	_, err := c.bot.Send(tele.ChatID(chatID), &tele.Invoice{
		Title:       invoice.Title,
		Description: invoice.Description,
		Payload:     invoice.Payload,
		Token:       invoice.Token,
		Currency:    invoice.Currency,
		Prices: []tele.Price{
			{Label: "Access", Amount: invoice.Amount},
		},
		Start: invoice.Start,
	})
	return err
}

func (c *TelegramClient) SendAudio(chatID int64, fileID, caption string) error {
	audio := &tele.Audio{
		File:    tele.File{FileID: fileID},
		Caption: caption,
	}
	_, err := c.bot.Send(tele.ChatID(chatID), audio)
	return err
}
