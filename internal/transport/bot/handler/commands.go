package handler

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"unit_price/internal/domain"
	"unit_price/internal/transport/bot/view"
	"unit_price/pkg/errcodes"
	"unit_price/pkg/logx"
)

var ErrPriceUsage = errors.New("usage: /price <cost> <title>")

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

// OnPrice отвечает на "/price 89,90 Молоко 1,4 л".
func (h *Handler) OnPrice(ctx *th.Context, msg telego.Message) error {
	cost, title, err := ParsePriceArgs(msg.Text)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.PriceUsage)
	}

	price, err := h.svc.Calculate(ctx, title, cost)
	if err != nil {
		logger(ctx).Warn("unit price failed",
			slog.Int64(logx.FieldChatID, msg.Chat.ID),
			slog.String(logx.FieldTitle, title),
			logx.Error(err),
		)

		return h.sendHTML(ctx, msg.Chat.ID, errorMessage(err))
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.PriceMessage(price))
}

// ParsePriceArgs делит текст команды на цену (первый аргумент) и название.
func ParsePriceArgs(text string) (cost, title string, err error) {
	parts := strings.Fields(text)
	if len(parts) < 3 { //nolint:mnd // команда, цена, хотя бы одно слово названия
		return "", "", ErrPriceUsage
	}

	return parts[1], strings.Join(parts[2:], " "), nil
}

func errorMessage(err error) string {
	code, ok := domain.GetCode(err)
	if !ok {
		return view.PriceInternalFail
	}

	switch code {
	case errcodes.InvalidCost:
		return view.PriceInvalidCost
	case errcodes.InvalidQuantity:
		return view.PriceBadQuantity
	default:
		return view.PriceInternalFail
	}
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))

	return err //nolint:wrapcheck
}
