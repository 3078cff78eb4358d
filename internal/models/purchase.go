package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase represents a single logged expense against a category.
// Positive amounts are spend.
type Purchase struct {
	DefaultModel
	CategoryID uuid.UUID
	Category   Category        `json:"-"`
	Name       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date       time.Time
}

// BeforeSave sets the timezone for the Date to UTC.
func (p *Purchase) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)

	if p.Date.IsZero() {
		p.Date = time.Now().In(time.UTC)
	} else {
		p.Date = p.Date.In(time.UTC)
	}

	return nil
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Purchase)
	return p.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the purchase before
// committing an update to the database.
func (p *Purchase) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryID") {
		toSave := tx.Statement.Dest.(Purchase)
		return p.checkIntegrity(tx, toSave)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
//
// We already store it in UTC, but somehow reading it from the
// database returns it as +0000.
func (p *Purchase) AfterFind(_ *gorm.DB) error {
	p.Date = p.Date.In(time.UTC)
	return nil
}

// checkIntegrity verifies references to other resources
func (p *Purchase) checkIntegrity(tx *gorm.DB, toSave Purchase) error {
	return tx.First(&Category{}, toSave.CategoryID).Error
}
