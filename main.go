package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/fintrack-app/backend/internal/bridge"
	"github.com/fintrack-app/backend/internal/controllers/healthz"
	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/docstore"
	"github.com/fintrack-app/backend/internal/identity"
	"github.com/fintrack-app/backend/internal/prefs"
	"github.com/fintrack-app/backend/internal/router"
	"github.com/fintrack-app/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the document store
	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dsn = filepath.Join(dataDir, "docstore.db")
	}

	client, err := docstore.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer client.Close()

	s := store.New()
	id := identity.New()

	b := bridge.New(client, s)
	id.OnChange(b.HandleIdentity)
	defer b.Stop()

	// Restore the previous session and UI preferences
	prefsPath := prefs.Path()
	settings, err := prefs.Load(prefsPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	s.SetDarkMode(settings.DarkMode)
	if settings.ActiveView != "" {
		s.SetActiveView(settings.ActiveView)
	}
	if settings.UserID != "" {
		id.SignIn(settings.UserID)
	}

	r, err := router.Router(
		v1.Controller{Store: s, Identity: id, PrefsPath: prefsPath},
		healthz.Controller{Client: client},
	)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
