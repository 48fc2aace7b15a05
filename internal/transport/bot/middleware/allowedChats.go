package middleware

import (
	"slices"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AllowedChats пропускает только сообщения из перечисленных чатов.
// Пустой список пропускает всех.
func AllowedChats(chatIDs ...int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if Allowed(update, chatIDs) {
			return ctx.Next(update)
		}

		return nil
	}
}

func Allowed(update telego.Update, chatIDs []int64) bool {
	if len(chatIDs) == 0 {
		return true
	}

	if update.Message == nil {
		return false
	}

	return slices.Contains(chatIDs, update.Message.Chat.ID)
}
