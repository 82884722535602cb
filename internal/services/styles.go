package services

import (
	"fmt"

	"guidance-portal/internal/domain/models"
	"guidance-portal/internal/pdfdoc"
)

var statusColors = map[models.Status]pdfdoc.Color{
	models.StatusLegacy:    pdfdoc.ColorMuted,
	models.StatusDraft:     {R: 108, G: 117, B: 125},
	models.StatusOpen:      {R: 25, G: 135, B: 84},
	models.StatusFull:      {R: 255, G: 140, B: 0},
	models.StatusCompleted: {R: 13, G: 110, B: 253},
	models.StatusCancelled: {R: 220, G: 53, B: 69},
}

var categoryColors = map[models.Category]pdfdoc.Color{
	models.CategoryOther:       pdfdoc.ColorText,
	models.CategoryOnsite:      {R: 25, G: 55, B: 109},
	models.CategoryOnline:      {R: 111, G: 66, B: 193},
	models.CategoryCampusVisit: {R: 32, G: 201, B: 151},
	models.CategoryExhibition:  {R: 214, G: 51, B: 132},
}

// Every variant must carry a style; a new variant without one stops the
// process at start-up instead of rendering in a silent default.
func init() {
	for _, s := range models.Statuses() {
		if _, ok := statusColors[s]; !ok {
			panic(fmt.Sprintf("services: no colour for status %d", s))
		}
	}
	for _, c := range models.Categories() {
		if _, ok := categoryColors[c]; !ok {
			panic(fmt.Sprintf("services: no colour for category %d", c))
		}
	}
}

func statusColor(s models.Status) pdfdoc.Color     { return statusColors[s] }
func categoryColor(c models.Category) pdfdoc.Color { return categoryColors[c] }
