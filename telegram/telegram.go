package telegram

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func EscapeMessage(message string) string {
	r := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"`", "\\`",
	)
	return r.Replace(message)
}

// Notify pushes an ops message to the admin chat. Misconfiguration is not an
// error: local and test runs simply have no bot token.
func Notify(message string) {
	token := os.Getenv("TG_TOKEN")
	chatIdRaw := os.Getenv("TG_CHAT_ID")
	if token == "" || chatIdRaw == "" {
		log.Printf("[Telegram] not configured, skipping message: %s", message)
		return
	}
	chatId, err := strconv.ParseInt(chatIdRaw, 10, 64)
	if err != nil {
		log.Printf("[Telegram] invalid TG_CHAT_ID %q: %v", chatIdRaw, err)
		return
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("[Telegram] bot init failed: %v", err)
		return
	}

	msg := tgbotapi.NewMessage(chatId, EscapeMessage(message))
	msg.ParseMode = "markdown"
	if _, err := bot.Send(msg); err != nil {
		fmt.Println("Error sending telegram message:", err)
	}
}
