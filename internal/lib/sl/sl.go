// Package sl содержит вспомогательные функции для работы с логгером slog:
// конструктор обработчика под окружение и формирование атрибута ошибки.
package sl

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Окружения, определяющие формат и уровень логирования.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
//
// Пример:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// SetupLogger создает slog.Logger под заданное окружение:
// local — цветной вывод tint с уровнем Debug, dev — текстовый Debug,
// prod и всё прочее — JSON с уровнем Info.
func SetupLogger(env string) *slog.Logger {
	var handler slog.Handler
	switch env {
	case EnvLocal:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: "15:04:05.000",
		})
	case EnvDev:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(handler)
}
