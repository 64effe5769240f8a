package notify

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier posts one-way status messages to an admin chat. A nil
// *Notifier is valid and does nothing, so callers never need to
// check whether notifications are configured.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// New returns (nil, nil) when token is empty.
func New(token string, chatID int64) (*Notifier, error) {
	if token == "" {
		return nil, nil
	}
	b, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	b.Debug = false
	return &Notifier{bot: b, chatID: chatID}, nil
}

func (n *Notifier) Send(text string) error {
	if n == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	_, err := n.bot.Send(msg)
	return err
}
