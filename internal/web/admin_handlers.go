package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"restaurant/internal/export"
	"restaurant/internal/forms"
	"restaurant/internal/models"
)

var errInvalidDate = errors.New("invalid date")

func (s *Server) handleAddMenuItemForm(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)
	s.render(w, r, sess, "add_menu_item.html", map[string]interface{}{
		"Form": &forms.MenuItemForm{},
	})
}

func (s *Server) handleAddMenuItemSubmit(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)

	form := &forms.MenuItemForm{
		Name:     r.FormValue("name"),
		Category: r.FormValue("category"),
		Price:    r.FormValue("price"),
		Image:    r.FormValue("image"),
	}

	item, errs := form.Validate()
	if errs.Any() {
		sess.AddFlash(models.FlashError, errs.Error())
		s.render(w, r, sess, "add_menu_item.html", map[string]interface{}{"Form": form})
		return
	}

	if err := s.menu.AddItem(r.Context(), item); err != nil {
		s.logger.Error().Err(err).Str("name", item.Name).Msg("Failed to add menu item")
		sess.AddFlash(models.FlashError, "Could not save the dish, please try again")
		s.render(w, r, sess, "add_menu_item.html", map[string]interface{}{"Form": form})
		return
	}

	sess.AddFlash(models.FlashSuccess, item.Name+" added to the menu")
	s.redirect(w, r, sess, "/menu")
}

// handleExportBookings streams the bookings for a date range as an XLSX
// workbook. Without query params the range covers the last month through
// two months ahead.
func (s *Server) handleExportBookings(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	start, err := exportDate(r.URL.Query().Get("start"), now.AddDate(0, -1, 0))
	if err != nil {
		http.Error(w, "Invalid start date", http.StatusBadRequest)
		return
	}
	end, err := exportDate(r.URL.Query().Get("end"), now.AddDate(0, 2, 0))
	if err != nil {
		http.Error(w, "Invalid end date", http.StatusBadRequest)
		return
	}

	bookings, err := s.bookings.GetBookingsByDateRange(r.Context(), start, end)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load bookings for export")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	f, err := export.BookingsWorkbook(bookings, start, end)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to build bookings workbook")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("bookings_%s_%s.xlsx", start, end)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(w); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write bookings workbook")
	}
}

func exportDate(raw string, fallback time.Time) (string, error) {
	if raw == "" {
		return fallback.Format(models.DateLayout), nil
	}
	if _, err := time.Parse(models.DateLayout, raw); err != nil {
		return "", errInvalidDate
	}
	return raw, nil
}
