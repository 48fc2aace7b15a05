package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"unit_price/internal/config"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		check   func(rq *require.Assertions, cfg config.Config)
		wantErr bool
	}{
		{
			name: "Defaults",
			env:  map[string]string{},
			check: func(rq *require.Assertions, cfg config.Config) {
				rq.Equal("production", cfg.App.Env)
				rq.Equal(":8080", cfg.HTTP.ListenAddress)
				rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
				rq.Equal("exact", cfg.Pricing.Rounding)
				rq.Equal(config.MatcherGrammar, cfg.Pricing.Matcher)
				rq.False(cfg.Bot.Enabled())
			},
		},
		{
			name: "Legacy rounding with regexp matcher and bot",
			env: map[string]string{
				"APP_ENV":          "local",
				"PRICING_ROUNDING": "legacy",
				"PRICING_MATCHER":  "regexp",
				"BOT_TOKEN":        "123:abc",
			},
			check: func(rq *require.Assertions, cfg config.Config) {
				rq.Equal("local", cfg.App.Env)
				rq.Equal("legacy", cfg.Pricing.Rounding)
				rq.Equal(config.MatcherRegexp, cfg.Pricing.Matcher)
				rq.True(cfg.Bot.Enabled())
			},
		},
		{
			name:    "Unknown rounding",
			env:     map[string]string{"PRICING_ROUNDING": "banker"},
			wantErr: true,
		},
		{
			name:    "Unknown matcher",
			env:     map[string]string{"PRICING_MATCHER": "pcre"},
			wantErr: true,
		},
		{
			name:    "Bad duration",
			env:     map[string]string{"HTTP_SHUTDOWN_TIMEOUT": "soon"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			for _, key := range []string{
				"APP_ENV", "PRICING_ROUNDING", "PRICING_MATCHER", "BOT_TOKEN", "HTTP_SHUTDOWN_TIMEOUT",
			} {
				t.Setenv(key, "")
				rq.NoError(os.Unsetenv(key))
			}

			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Parse()
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			tc.check(rq, cfg)
		})
	}
}
