package model

import (
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldName        = "name"
	FieldMobile      = "mobile"
	FieldBranch      = "branch"
	FieldService     = "service"
	FieldBookingDate = "booking_date"
	FieldBookingTime = "booking_time"
	FieldCreatedAt   = "created_at"
)

// Booking is one appointment request. Rows are only ever inserted.
type Booking struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Mobile    string    `db:"mobile"`
	Branch    string    `db:"branch"`
	Service   string    `db:"service"`
	Date      time.Time `db:"booking_date"`
	Time      string    `db:"booking_time"`
	CreatedAt time.Time `db:"created_at"`
}
