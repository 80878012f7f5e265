// Package ics renders a course as a downloadable calendar invite.
// The export is stateless and one-way: one course in, one VCALENDAR out.
package ics

import (
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"

	"github.com/loacademie/academie-server/internal/domain"
)

// Courses have no time-of-day in the data model, so invites use a fixed
// working-day window on the course date.
const (
	startTime = "090000"
	endTime   = "170000"
)

// Invite renders the course as an iCalendar document. The event uses
// floating local times so the invite lands at 09:00 wall clock for the
// attendee regardless of their calendar's timezone.
func Invite(course *domain.Course) (string, error) {
	if course == nil {
		return "", fmt.Errorf("ics: nil course")
	}
	day := strings.ReplaceAll(course.Date, "-", "")
	if len(day) != 8 {
		return "", fmt.Errorf("ics: malformed course date %q", course.Date)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//LO Academie//Scholingskalender//NL")

	event := cal.AddEvent(course.ID + "@loacademie.nl")
	event.SetProperty(ical.ComponentPropertyDtStart, day+"T"+startTime)
	event.SetProperty(ical.ComponentPropertyDtEnd, day+"T"+endTime)
	event.SetSummary(course.Title)
	event.SetLocation(course.Location)
	event.SetDescription(description(course))
	if course.URL != "" && course.URL != domain.NoURL {
		event.SetURL(course.URL)
	}

	return cal.Serialize(), nil
}

// description folds organizer and registration link into the body, the
// way the catalog's detail view presents them.
func description(course *domain.Course) string {
	var b strings.Builder
	b.WriteString(course.Description)
	b.WriteString("\n\nOrganisator: ")
	b.WriteString(string(course.Organizer))
	if course.URL != "" && course.URL != domain.NoURL {
		b.WriteString("\nMeer info: ")
		b.WriteString(course.URL)
	}
	return b.String()
}

// Filename derives a safe download name from the course title.
func Filename(course *domain.Course) string {
	var b strings.Builder
	for _, r := range strings.ToLower(course.Title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + ".ics"
}
