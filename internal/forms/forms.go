package forms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"restaurant/internal/models"
)

// FieldError is a validation failure bound to one input field.
type FieldError struct {
	Field   string
	Message string
}

type FieldErrors []FieldError

func (e FieldErrors) Any() bool {
	return len(e) > 0
}

func (e FieldErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Message)
	}
	return strings.Join(messages, "; ")
}

func (e *FieldErrors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// BookingForm carries the raw table-booking inputs.
type BookingForm struct {
	Name    string
	Date    string
	Time    string
	Guests  string
	Comment string
}

// Validate checks the form and builds the booking on success. The date
// and time are combined into a single timestamp; a combination that is
// not a valid calendar date/time is a field error.
func (f *BookingForm) Validate() (*models.Booking, FieldErrors) {
	var errs FieldErrors

	if strings.TrimSpace(f.Name) == "" {
		errs.add("name", "Name is required")
	}
	if f.Date == "" {
		errs.add("date", "Date is required")
	}
	if f.Time == "" {
		errs.add("time", "Time is required")
	}

	guests, err := strconv.ParseInt(f.Guests, 10, 64)
	if err != nil || guests <= 0 {
		errs.add("guests", "Guests must be a positive number")
	}

	var datetime time.Time
	if f.Date != "" && f.Time != "" {
		datetime, err = time.Parse(models.DateTimeLayout, f.Date+" "+f.Time)
		if err != nil {
			errs.add("date", "Invalid date or time")
		}
	}

	if errs.Any() {
		return nil, errs
	}

	return &models.Booking{
		Name:            strings.TrimSpace(f.Name),
		BookingDatetime: datetime,
		Date:            f.Date,
		Slot:            f.Time,
		Guests:          guests,
		Comment:         strings.TrimSpace(f.Comment),
	}, nil
}

// RegisterForm carries the raw registration inputs.
type RegisterForm struct {
	FirstName       string
	LastName        string
	City            string
	Phone           string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f *RegisterForm) Validate() FieldErrors {
	errs := validateProfileFields(f.FirstName, f.LastName, f.City, f.Phone, f.Email)

	if len(f.Password) < models.MinPasswordLength {
		errs.add("password", fmt.Sprintf("Password must be at least %d characters", models.MinPasswordLength))
	}
	if f.Password != f.ConfirmPassword {
		errs.add("confirm_password", "Passwords do not match")
	}

	return errs
}

// ProfileForm carries the raw profile-edit inputs. Same constraints as
// registration minus the password pair.
type ProfileForm struct {
	FirstName string
	LastName  string
	City      string
	Phone     string
	Email     string
}

func (f *ProfileForm) Validate() FieldErrors {
	return validateProfileFields(f.FirstName, f.LastName, f.City, f.Phone, f.Email)
}

func validateProfileFields(firstName, lastName, city, phone, email string) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(firstName) == "" {
		errs.add("first_name", "First name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		errs.add("last_name", "Last name is required")
	}
	if strings.TrimSpace(city) == "" {
		errs.add("city", "City is required")
	}
	if strings.TrimSpace(phone) == "" {
		errs.add("phone", "Phone is required")
	}
	if email == "" {
		errs.add("email", "Email is required")
	} else if !emailPattern.MatchString(email) {
		errs.add("email", "Invalid email address")
	}

	return errs
}

// LoginForm carries the raw login inputs.
type LoginForm struct {
	Email    string
	Password string
}

func (f *LoginForm) Validate() FieldErrors {
	var errs FieldErrors
	if f.Email == "" {
		errs.add("email", "Email is required")
	}
	if f.Password == "" {
		errs.add("password", "Password is required")
	}
	return errs
}

// MenuItemForm carries the raw admin add-menu-item inputs.
type MenuItemForm struct {
	Name     string
	Category string
	Price    string
	Image    string
}

func (f *MenuItemForm) Validate() (*models.MenuItem, FieldErrors) {
	var errs FieldErrors

	if strings.TrimSpace(f.Name) == "" {
		errs.add("name", "Name is required")
	}
	if strings.TrimSpace(f.Category) == "" {
		errs.add("category", "Category is required")
	}
	if strings.TrimSpace(f.Image) == "" {
		errs.add("image", "Image URL is required")
	}

	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil || price <= 0 {
		errs.add("price", "Price must be a positive number")
	}

	if errs.Any() {
		return nil, errs
	}

	return &models.MenuItem{
		Name:     strings.TrimSpace(f.Name),
		Category: strings.TrimSpace(f.Category),
		Price:    price,
		Image:    strings.TrimSpace(f.Image),
	}, nil
}
