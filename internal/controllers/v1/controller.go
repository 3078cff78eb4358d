// Package v1 implements the v1 API of the Money Tracker backend.
package v1

import (
	"github.com/kevmck451/Money-Tracker/internal/budget"
	"github.com/kevmck451/Money-Tracker/internal/config"
	"github.com/kevmck451/Money-Tracker/internal/models"
)

// Controller carries the configuration into the request handlers.
type Controller struct {
	Config config.Config
}

// engine returns a carry-forward engine on the current database.
//
// Built per call so that handlers always see the connection that
// models.Connect last opened.
func (co Controller) engine() *budget.Engine {
	return budget.New(
		budget.GormPeriodStore{DB: models.DB},
		budget.GormLedger{DB: models.DB},
		co.Config.Settings.Categories,
	)
}
