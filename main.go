package main

import (
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kevmck451/Money-Tracker/internal/budget"
	"github.com/kevmck451/Money-Tracker/internal/config"
	v1 "github.com/kevmck451/Money-Tracker/internal/controllers/v1"
	"github.com/kevmck451/Money-Tracker/internal/models"
	"github.com/kevmck451/Money-Tracker/internal/router"
	"github.com/kevmck451/Money-Tracker/internal/types"
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

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the data directory
	err = os.MkdirAll(filepath.Dir(cfg.DSN), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	err = models.Connect(cfg.DSN)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the configured categories and this month's budget periods
	err = bootstrap(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	apiURL, err := url.Parse(os.Getenv("API_URL"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(apiURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(v1.Controller{Config: cfg}, r.Group("/"))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// bootstrap creates every category listed in the settings file that
// does not exist yet and materializes its budget period for the
// current month, seeded with the configured default base budget.
func bootstrap(cfg config.Config) error {
	store := budget.GormPeriodStore{DB: models.DB}
	month := types.MonthOf(time.Now().UTC())

	for name, base := range cfg.Settings.Categories {
		var category models.Category
		err := models.DB.First(&category, models.Category{Name: name}).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			category = models.Category{Name: name}
			err = models.DB.Create(&category).Error
		}
		if err != nil {
			return err
		}

		if _, err := store.GetOrCreate(category.ID, month, base); err != nil {
			return err
		}
	}

	return nil
}
