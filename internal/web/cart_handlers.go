package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"restaurant/internal/database"
	"restaurant/internal/models"
	"restaurant/internal/service"

	"github.com/gorilla/mux"
)

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)
	itemID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	item, err := s.cart.AddToCart(r.Context(), sess.Cart, itemID)
	if errors.Is(err, database.ErrNotFound) {
		sess.AddFlash(models.FlashError, "That dish is no longer on the menu")
		s.redirect(w, r, sess, "/menu")
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Int64("item_id", itemID).Msg("Failed to add to cart")
		sess.AddFlash(models.FlashError, "Something went wrong, please try again")
		s.redirect(w, r, sess, "/menu")
		return
	}

	sess.AddFlash(models.FlashSuccess, fmt.Sprintf("%s added to cart", item.Name))
	s.redirect(w, r, sess, "/menu")
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)
	itemID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	s.cart.RemoveFromCart(sess.Cart, itemID)
	s.redirect(w, r, sess, "/cart")
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)

	view, err := s.cart.ViewCart(r.Context(), sess.Cart)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to view cart")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, sess, "cart.html", map[string]interface{}{
		"Cart": view,
	})
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)

	order, err := s.orders.PlaceOrder(r.Context(), sess.UserID, sess.Cart)
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		sess.AddFlash(models.FlashError, "Please log in to place an order")
		s.redirect(w, r, sess, "/login")
		return
	case errors.Is(err, service.ErrEmptyCart):
		sess.AddFlash(models.FlashError, "Your cart is empty")
		s.redirect(w, r, sess, "/cart")
		return
	case err != nil:
		s.logger.Error().Err(err).Int64("user_id", sess.UserID).Msg("Failed to place order")
		sess.AddFlash(models.FlashError, "Could not place the order, please try again")
		s.redirect(w, r, sess, "/cart")
		return
	}

	sess.Cart = models.Cart{}
	sess.AddFlash(models.FlashSuccess, fmt.Sprintf("Order #%d placed, total $%.2f", order.ID, order.TotalAmount))
	s.redirect(w, r, sess, "/menu")
}
