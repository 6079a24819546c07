package entity

import "time"

// Trip is a scheduled voyage a request can be attached to.
type Trip struct {
	ID            int64     `json:"id"`
	TripName      string    `json:"trip_name"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"`
}
