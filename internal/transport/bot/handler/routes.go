package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"unit_price/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChats []int64) {
	bh.Use(th.PanicRecovery())

	group := bh.Group(th.AnyMessage())
	group.Use(middleware.AllowedChats(allowedChats...))

	group.HandleMessage(h.OnStart, th.CommandEqual("start"))
	group.HandleMessage(h.OnStart, th.CommandEqual("help"))
	group.HandleMessage(h.OnPrice, th.CommandEqual("price"))
}
