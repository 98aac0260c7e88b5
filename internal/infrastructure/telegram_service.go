// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"daylight-monitor/internal/application"
)

type telegramTransport struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramTransport(botToken string) (application.Transport, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %v", err)
	}

	return &telegramTransport{bot: bot}, nil
}

func (t *telegramTransport) Send(_ context.Context, to application.Recipient, text string) error {
	message, err := buildMessage(to, text)
	if err != nil {
		return fmt.Errorf("TelegramTransport → %v", err)
	}

	if _, err := t.bot.Send(message); err != nil {
		return fmt.Errorf("TelegramTransport → %v", err)
	}

	return nil
}

// buildMessage addresses numeric recipients as direct chats and named ones
// as channels or groups.
func buildMessage(to application.Recipient, text string) (tgbotapi.MessageConfig, error) {
	switch to.Kind {
	case application.Numeric:
		chat, err := strconv.ParseInt(to.Value, 10, 64)
		if err != nil {
			return tgbotapi.MessageConfig{}, fmt.Errorf("failed to parse recipient %q: %v", to.Value, err)
		}
		return tgbotapi.NewMessage(chat, text), nil
	default:
		name := to.Value
		if !strings.HasPrefix(name, "@") {
			name = "@" + name
		}
		return tgbotapi.NewMessageToChannel(name, text), nil
	}
}
