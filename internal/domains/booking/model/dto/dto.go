package dto

import (
	"time"

	"alora/internal/domains/booking/model"
	"alora/shared/constant"
	"alora/shared/timezone"

	"github.com/google/uuid"
)

// CreateBookingRequest documents the accepted body of POST /api/bookings/.
// The handler decodes into a generic map so missing and empty keys can be told apart.
type CreateBookingRequest struct {
	Name    string `example:"Priya Sharma" json:"name"`
	Mobile  string `example:"9876543210"   json:"mobile"`
	Branch  string `example:"indiranagar"  json:"branch"`
	Service string `example:"dental"       json:"service"`
	Date    string `example:"2099-01-01"   json:"date"`
	Time    string `example:"10:30"        json:"time"`
}

func (v *ValidatedBooking) ToModel() model.Booking {
	return model.Booking{
		ID:        uuid.NewString(),
		Name:      v.Name,
		Mobile:    v.Mobile,
		Branch:    v.Branch,
		Service:   v.Service,
		Date:      v.Date,
		Time:      v.Time,
		CreatedAt: timezone.Now().Truncate(time.Microsecond),
	}
}

type BookingResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	Branch    string `json:"branch"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"created_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Name = model.Name
	r.Mobile = model.Mobile
	r.Branch = model.Branch
	r.Service = model.Service
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Time = model.Time
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Count    int               `json:"count"`
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, count int) {
	r.Count = count

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingCreatedEvent is published after a booking is committed.
type BookingCreatedEvent struct {
	BookingResponse
	EventTime string `json:"event_time"`
}
