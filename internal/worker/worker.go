// Package worker содержит фоновые обработчики каталога.
package worker

import "unit_price/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
