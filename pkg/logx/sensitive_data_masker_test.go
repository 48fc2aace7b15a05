package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"unit_price/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Bearer header",
			input:  []byte("GET / HTTP/1.1\r\nAuthorization: Bearer abc.def\r\n"),
			output: []byte("GET / HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n"),
		},
		{
			name:   "Bot API URL",
			input:  []byte("POST https://api.telegram.org/bot123456:AAE-x_yz/sendMessage"),
			output: []byte("POST https://api.telegram.org/bot[MASKED]/sendMessage"),
		},
		{
			name:   "Token field",
			input:  []byte(`{"title":"Молоко 1л","token":"secret"}`),
			output: []byte(`{"title":"Молоко 1л","token":"[MASKED]"}`),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"title":"Багет 2шт*150г","cost":"90"}`),
			output: []byte(`{"title":"Багет 2шт*150г","cost":"90"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
