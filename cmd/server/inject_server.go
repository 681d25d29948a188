package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/wire"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"github.com/zigaplabs/super-wallet/handler/api"
	"github.com/zigaplabs/super-wallet/handler/hc"
)

var serverSet = wire.NewSet(
	provideAPIConfig,
	api.New,
	provideServer,
)

func provideAPIConfig(v *viper.Viper) api.Config {
	v.SetDefault("api.default_asset", "XP")
	v.SetDefault("api.page_limit", 50)

	return api.Config{
		DefaultAsset: v.GetString("api.default_asset"),
		PageLimit:    v.GetInt("api.page_limit"),
	}
}

func provideServer(apiHandler *api.Server) *http.Server {
	m := chi.NewMux()
	m.Use(middleware.RealIP)
	m.Use(middleware.Logger)
	m.Use(middleware.Recoverer)
	m.Use(cors.AllowAll().Handler)

	m.Mount("/api", apiHandler.Handler())
	m.Mount("/hc", hc.Handler(version))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", opt.port),
		Handler: m,
	}
}
