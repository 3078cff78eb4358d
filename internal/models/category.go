package models

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Category represents a spending category that purchases are
// recorded against.
type Category struct {
	DefaultModel
	Name         string `gorm:"uniqueIndex"`
	Archived     bool   // Hidden from the main view when true
	DisplayOrder uint   `gorm:"default:9999"`
}

var ErrCategoryNameNotUnique = errors.New("the category name must be unique")

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	return nil
}

// Purchases returns all purchases for this category.
func (c Category) Purchases(db *gorm.DB) ([]Purchase, error) {
	var purchases []Purchase

	err := db.Where(Purchase{CategoryID: c.ID}).Find(&purchases).Error
	if err != nil {
		return nil, err
	}

	return purchases, nil
}

// SortCategories sorts categories by an explicit preferred-name priority
// list, falling back to case-insensitive alphabetical order. Names not in
// the priority list sort after all names that are.
func SortCategories(categories []Category, preferred []string) {
	priority := make(map[string]int, len(preferred))
	for i, name := range preferred {
		priority[name] = i
	}

	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(categories, func(i, j int) bool {
		pi, ok := priority[categories[i].Name]
		if !ok {
			pi = len(preferred)
		}

		pj, ok := priority[categories[j].Name]
		if !ok {
			pj = len(preferred)
		}

		if pi != pj {
			return pi < pj
		}

		return collator.CompareString(categories[i].Name, categories[j].Name) < 0
	})
}
