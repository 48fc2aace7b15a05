package config

import "time"

// Bot пустой токен отключает бота.
type Bot struct {
	Token          string        `env:"BOT_TOKEN" json:"-"`
	PollingTimeout time.Duration `env:"BOT_POLLING_TIMEOUT" envDefault:"60s"`
	AllowedChatIDs []int64       `env:"BOT_ALLOWED_CHAT_IDS" envSeparator:","`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}
