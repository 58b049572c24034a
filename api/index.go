package handler

import (
	"net/http"
	"os"

	"alora/config"
	"alora/di"
	"alora/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg, os.Stdout)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
