// Package middlewarex содержит HTTP-middleware сервиса: трассировку, логирование и восстановление после паники.
package middlewarex

import "unit_price/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
