package web

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"restaurant/internal/database"
	"restaurant/internal/forms"
	"restaurant/internal/models"
)

func (s *Server) handleBookForm(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	slots, err := s.bookings.AvailableSlots(r.Context(), date)
	if err != nil {
		sess.AddFlash(models.FlashError, "Invalid date")
		date = time.Now().Format(models.DateLayout)
		slots, err = s.bookings.AvailableSlots(r.Context(), date)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to load available slots")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	s.render(w, r, sess, "book.html", map[string]interface{}{
		"Date":  date,
		"Slots": slots,
		"Form":  &forms.BookingForm{Date: date},
	})
}

func (s *Server) handleBookSubmit(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)

	form := &forms.BookingForm{
		Name:    r.FormValue("name"),
		Date:    r.FormValue("date"),
		Time:    r.FormValue("time"),
		Guests:  r.FormValue("guests"),
		Comment: r.FormValue("comment"),
	}

	booking, errs := form.Validate()
	if errs.Any() {
		sess.AddFlash(models.FlashError, errs.Error())
		s.renderBookForm(w, r, sess, form)
		return
	}

	if sess.IsAuthenticated() {
		booking.UserID = sql.NullInt64{Int64: sess.UserID, Valid: true}
	}

	err := s.bookings.SubmitBooking(r.Context(), booking)
	switch {
	case errors.Is(err, database.ErrSlotFull):
		sess.AddFlash(models.FlashError, "That time slot is fully booked, please pick another")
		s.renderBookForm(w, r, sess, form)
		return
	case err != nil:
		s.logger.Error().Err(err).Msg("Failed to create booking")
		sess.AddFlash(models.FlashError, "Could not save the booking, please try again")
		s.renderBookForm(w, r, sess, form)
		return
	}

	sess.AddFlash(models.FlashSuccess, "Table booked for "+booking.Date+" at "+booking.Slot)
	s.redirect(w, r, sess, "/book")
}

func (s *Server) renderBookForm(w http.ResponseWriter, r *http.Request, sess *models.Session, form *forms.BookingForm) {
	date := form.Date
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		date = time.Now().Format(models.DateLayout)
	}

	slots, err := s.bookings.AvailableSlots(r.Context(), date)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load available slots")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, sess, "book.html", map[string]interface{}{
		"Date":  date,
		"Slots": slots,
		"Form":  form,
	})
}
