package cli

import (
	"fmt"
	"strings"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/models"
)

func (a *App) renderUser(u *models.User) {
	a.printf("Username:   %s\n", u.Username)
	a.printf("Name:       %s %s\n", u.FirstName, u.LastName)
	a.printf("Birthday:   %s\n", u.DisplayBirthday())
	a.printf("Location:   %s\n", u.Location)
	a.printf("Genres:     %s\n", strings.Join(u.Genres, ", "))
}

func (a *App) renderEvents(events []models.Event) {
	if len(events) == 0 {
		a.println("No events found.")
		return
	}
	for _, e := range events {
		a.renderEvent(&e)
	}
}

func (a *App) renderEvent(e *models.Event) {
	a.printf("%s (%s)\n", e.Title, e.Type)
	a.printf("  %s at %s\n", formatStartsAt(e), e.Venue)
	a.printf("  %s\n", e.Address)
	a.printf("  %s | %s\n", e.Location, strings.Join(e.Genres, ", "))
	if e.URL != "" {
		a.printf("  %s\n", e.URL)
	}
	a.printf("  %s\n", e.Description)
	a.printf("  posted by %s\n", e.User)
	a.println()
}

// formatStartsAt renders "Mar 3rd, 7:30pm", falling back to the raw
// server string when the date never parsed.
func formatStartsAt(e *models.Event) string {
	t := e.StartsAt()
	if t.IsZero() {
		return e.DateAndTime
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "am"
	if t.Hour() >= 12 {
		meridiem = "pm"
	}
	return fmt.Sprintf("%s %d%s, %d:%02d%s",
		t.Month().String()[:3], t.Day(), daySuffix(t.Day()), hour, t.Minute(), meridiem)
}

// daySuffix returns the English ordinal suffix; 11th-13th are special.
func daySuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
