package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"restaurant/internal/database"
	"restaurant/internal/forms"
	"restaurant/internal/models"
	"restaurant/internal/service"
)

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)
	s.render(w, r, sess, "register.html", map[string]interface{}{
		"Form": &forms.RegisterForm{},
	})
}

func (s *Server) handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)

	form := &forms.RegisterForm{
		FirstName:       r.FormValue("first_name"),
		LastName:        r.FormValue("last_name"),
		City:            r.FormValue("city"),
		Phone:           r.FormValue("phone"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	if errs := form.Validate(); errs.Any() {
		sess.AddFlash(models.FlashError, errs.Error())
		s.render(w, r, sess, "register.html", map[string]interface{}{"Form": form})
		return
	}

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		City:      form.City,
		Phone:     form.Phone,
		Email:     form.Email,
	}

	err := s.auth.Register(r.Context(), user, form.Password)
	switch {
	case errors.Is(err, database.ErrDuplicateEmail):
		sess.AddFlash(models.FlashError, "An account with that email already exists")
		s.render(w, r, sess, "register.html", map[string]interface{}{"Form": form})
		return
	case err != nil:
		s.logger.Error().Err(err).Msg("Failed to register user")
		sess.AddFlash(models.FlashError, "Could not create the account, please try again")
		s.render(w, r, sess, "register.html", map[string]interface{}{"Form": form})
		return
	}

	sess.AddFlash(models.FlashSuccess, "Registration complete, please log in")
	s.redirect(w, r, sess, "/login")
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)
	s.render(w, r, sess, "login.html", map[string]interface{}{
		"Form": &forms.LoginForm{},
	})
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)

	form := &forms.LoginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if errs := form.Validate(); errs.Any() {
		sess.AddFlash(models.FlashError, errs.Error())
		s.render(w, r, sess, "login.html", map[string]interface{}{"Form": form})
		return
	}

	// Attempts are counted per account in the session store, so the
	// budget holds across restarts and both sides of a Redis failover.
	limitKey := "login:" + strings.ToLower(strings.TrimSpace(form.Email))
	allowed, err := s.sessions.CheckRateLimit(r.Context(), limitKey, models.RateLimitRequests, models.RateLimitWindow*time.Second)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to check login attempt limit")
	} else if !allowed {
		sess.AddFlash(models.FlashError, "Too many login attempts, please try again later")
		s.render(w, r, sess, "login.html", map[string]interface{}{"Form": form})
		return
	}

	user, err := s.auth.Login(r.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		sess.AddFlash(models.FlashError, "Invalid email or password")
		s.render(w, r, sess, "login.html", map[string]interface{}{"Form": form})
		return
	case err != nil:
		s.logger.Error().Err(err).Msg("Failed to log in user")
		sess.AddFlash(models.FlashError, "Could not log in, please try again")
		s.render(w, r, sess, "login.html", map[string]interface{}{"Form": form})
		return
	}

	sess.UserID = user.ID
	sess.Email = user.Email
	sess.FirstName = user.FirstName

	sess.AddFlash(models.FlashSuccess, "Welcome back, "+user.FirstName)
	s.redirect(w, r, sess, "/")
}

func (s *Server) handleProfileForm(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)

	if !sess.IsAuthenticated() {
		sess.AddFlash(models.FlashError, "Please log in to view your profile")
		s.redirect(w, r, sess, "/login")
		return
	}

	user, err := s.auth.GetUser(r.Context(), sess.UserID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", sess.UserID).Msg("Failed to load profile")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	form := &forms.ProfileForm{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		City:      user.City,
		Phone:     user.Phone,
		Email:     user.Email,
	}
	s.render(w, r, sess, "profile.html", map[string]interface{}{"Form": form})
}

func (s *Server) handleProfileSubmit(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)

	if !sess.IsAuthenticated() {
		sess.AddFlash(models.FlashError, "Please log in to edit your profile")
		s.redirect(w, r, sess, "/login")
		return
	}

	form := &forms.ProfileForm{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		City:      r.FormValue("city"),
		Phone:     r.FormValue("phone"),
		Email:     r.FormValue("email"),
	}

	if errs := form.Validate(); errs.Any() {
		sess.AddFlash(models.FlashError, errs.Error())
		s.render(w, r, sess, "profile.html", map[string]interface{}{"Form": form})
		return
	}

	user := &models.User{
		ID:        sess.UserID,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		City:      form.City,
		Phone:     form.Phone,
		Email:     form.Email,
	}

	err := s.auth.UpdateProfile(r.Context(), user)
	switch {
	case errors.Is(err, database.ErrDuplicateEmail):
		sess.AddFlash(models.FlashError, "That email is already taken by another account")
		s.render(w, r, sess, "profile.html", map[string]interface{}{"Form": form})
		return
	case err != nil:
		s.logger.Error().Err(err).Int64("user_id", sess.UserID).Msg("Failed to update profile")
		sess.AddFlash(models.FlashError, "Could not save the profile, please try again")
		s.render(w, r, sess, "profile.html", map[string]interface{}{"Form": form})
		return
	}

	sess.Email = user.Email
	sess.FirstName = user.FirstName

	sess.AddFlash(models.FlashSuccess, "Profile updated")
	s.redirect(w, r, sess, "/profile")
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Load(r.Context(), r)
	sess.ClearIdentity()
	sess.AddFlash(models.FlashInfo, "You have been logged out")
	s.redirect(w, r, sess, "/")
}
