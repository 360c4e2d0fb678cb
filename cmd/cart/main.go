package main

import (
	"os"

	"github.com/fsdevblog/groph-cart/internal/app"
	"github.com/fsdevblog/groph-cart/internal/config"
	"github.com/fsdevblog/groph-cart/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		l.WithError(err).Fatal("app stopped")
	}
	l.Info("graceful shutdown")
}
