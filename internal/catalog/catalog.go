// Package catalog builds the stock ticket types sold at the venue.
package catalog

import (
	"fmt"

	"gp-ticketing/internal/models"
)

func SingleRacePass() models.Ticket {
	return models.NewTicket("Single Race Pass", 300.0, "One Day",
		[]string{"Access to one race", "Grandstand seat"})
}

func WeekendPackage() models.Ticket {
	return models.NewTicket("Weekend Package", 750.0, "Three Days",
		[]string{"Access to all races of the weekend", "Premium seating", "Fan zone access"})
}

func SeasonPass() models.Ticket {
	return models.NewTicket("Season Pass", 4000.0, "All Season",
		[]string{"All races", "VIP lounge", "Priority parking", "Merch pack"})
}

// GroupTicket prices per person at max(250, 300 - 5*size), so larger groups
// pay less per head down to a 250 floor.
func GroupTicket(groupSize int) models.Ticket {
	perPerson := 300.0 - float64(groupSize)*5
	if perPerson < 250.0 {
		perPerson = 250.0
	}
	t := models.NewTicket(
		fmt.Sprintf("Group Ticket (%d people)", groupSize),
		perPerson*float64(groupSize),
		"One Day",
		[]string{"Group access", "Discounted entry", "Adjacent seating"},
	)
	t.GroupSize = groupSize
	return t
}

// Stock returns the ticket types registered at startup.
func Stock() []models.Ticket {
	return []models.Ticket{
		SingleRacePass(),
		WeekendPackage(),
		SeasonPass(),
		GroupTicket(5),
		GroupTicket(10),
	}
}
