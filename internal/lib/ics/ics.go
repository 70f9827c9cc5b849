package ics

import (
	"fmt"
	"github.com/emersion/go-ical"
	"io"
	"sharedCalendar/internal/models"
	"time"
)

const productID = "-//sharedCalendar//EN"

// Encode writes events as a VCALENDAR feed. Times are emitted in UTC.
func Encode(w io.Writer, events []models.Event, stamp time.Time) error {
	// The encoder refuses calendars without components.
	if len(events) == 0 {
		_, err := io.WriteString(w, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:"+productID+"\r\nEND:VCALENDAR\r\n")
		return err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, event := range events {
		cal.Children = append(cal.Children, toVEvent(event, stamp))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}

	return nil
}

func toVEvent(event models.Event, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, fmt.Sprintf("%d@sharedCalendar", event.ID))
	ve.Props.SetText(ical.PropSummary, event.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, event.Start.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, event.End.UTC())

	if event.CreatedBy != "" {
		p := ical.NewProp(ical.PropOrganizer)
		p.Value = "mailto:" + event.CreatedBy
		ve.Props.Set(p)
	}

	return ve
}
