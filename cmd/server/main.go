package main

import (
	"log/slog"
	"os"

	"github.com/AvinashKumarSP/copy-service/api"
	"github.com/AvinashKumarSP/copy-service/logging"
)

const listenAddr = ":8000"

func main() {
	router := api.NewRouter()
	logging.Default.Info("starting copy service", slog.String("addr", listenAddr))
	if err := router.Run(listenAddr); err != nil {
		logging.Default.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
