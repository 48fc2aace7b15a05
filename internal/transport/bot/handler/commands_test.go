package handler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"unit_price/internal/transport/bot/handler"
)

func TestParsePriceArgs(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		cost    string
		title   string
		wantErr bool
	}{
		{
			name:  "Cost and title",
			text:  "/price 89,90 Молоко 2.5% 1.4л",
			cost:  "89,90",
			title: "Молоко 2.5% 1.4л",
		},
		{
			name:  "Extra spaces",
			text:  "/price   120   Бумага   4 рулона ",
			cost:  "120",
			title: "Бумага 4 рулона",
		},
		{
			name:    "No title",
			text:    "/price 100",
			wantErr: true,
		},
		{
			name:    "No arguments",
			text:    "/price",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			cost, title, err := handler.ParsePriceArgs(tc.text)
			if tc.wantErr {
				rq.ErrorIs(err, handler.ErrPriceUsage)
				return
			}

			rq.NoError(err)
			rq.Equal(tc.cost, cost)
			rq.Equal(tc.title, title)
		})
	}
}
