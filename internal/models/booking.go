package models

import (
	"database/sql"
	"fmt"
	"time"
)

type Booking struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	BookingDatetime time.Time     `json:"booking_datetime"`
	Date            string        `json:"date"` // YYYY-MM-DD
	Slot            string        `json:"time"` // HH:MM
	Guests          int64         `json:"guests"`
	Comment         string        `json:"comment"`
	UserID          sql.NullInt64 `json:"user_id"`
	CreatedAt       time.Time     `json:"created_at"`
}

// SlotUniverse returns every bookable time slot of a day in
// chronological order: 12:00, 12:30, ... 23:30.
func SlotUniverse() []string {
	slots := make([]string, 0, SlotsPerDay)
	for hour := SlotOpenHour; hour <= SlotLastHour; hour++ {
		for minute := 0; minute < 60; minute += SlotIntervalMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// SlotAvailability describes one slot of a day for display.
type SlotAvailability struct {
	Slot      string `json:"slot"`
	Booked    int64  `json:"booked"`
	Available bool   `json:"available"`
}
