package domain

import (
	"context"
	"time"

	"restaurant/internal/models"
)

// Repository is the persistence surface backed by SQLite.
type Repository interface {
	// Menu catalog
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error)
	GetMenuSections(ctx context.Context) ([]models.MenuSection, error)

	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error

	// Bookings
	CreateBooking(ctx context.Context, booking *models.Booking) error
	CreateBookingChecked(ctx context.Context, booking *models.Booking, capacity int64) error
	GetSlotCounts(ctx context.Context, date string) (map[string]int64, error)
	GetBookedCount(ctx context.Context, date, slot string) (int64, error)
	GetBookingsByDateRange(ctx context.Context, startDate, endDate string) ([]*models.Booking, error)

	// Orders
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
}

// SessionRepository stores per-visitor sessions keyed by the cookie id.
// GetSession returns (nil, nil) when the session does not exist.
type SessionRepository interface {
	GetSession(ctx context.Context, id string) (*models.Session, error)
	SetSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, id string) error
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

type MenuService interface {
	ListSections(ctx context.Context) ([]models.MenuSection, error)
	GetItem(ctx context.Context, id int64) (*models.MenuItem, error)
	AddItem(ctx context.Context, item *models.MenuItem) error
}

type CartService interface {
	AddToCart(ctx context.Context, cart models.Cart, itemID int64) (*models.MenuItem, error)
	RemoveFromCart(cart models.Cart, itemID int64)
	ViewCart(ctx context.Context, cart models.Cart) (*models.CartView, error)
}

type BookingService interface {
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	SlotAvailability(ctx context.Context, date string) ([]models.SlotAvailability, error)
	SubmitBooking(ctx context.Context, booking *models.Booking) error
	GetBookingsByDateRange(ctx context.Context, startDate, endDate string) ([]*models.Booking, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64, cart models.Cart) (*models.Order, error)
}

type AuthService interface {
	Register(ctx context.Context, user *models.User, password string) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
}
