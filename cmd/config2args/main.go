package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	app "github.com/lwmacct/251218-go-config2args/internal/command/root"
)

func main() {
	if err := app.Command.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, app.ErrUsage) {
			slog.Error("应用程序运行失败", "error", err)
		}
		os.Exit(1)
	}
}
