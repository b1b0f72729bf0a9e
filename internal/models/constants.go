package models

const (
	// Slot universe: every 30-minute mark from 12:00 to 23:30 inclusive.
	SlotOpenHour        = 12
	SlotLastHour        = 23
	SlotIntervalMinutes = 30
	SlotsPerDay         = 24

	// DefaultSlotCapacity максимальное число бронирований на один слот
	DefaultSlotCapacity = 5

	// MinPasswordLength минимальная длина пароля при регистрации
	MinPasswordLength = 6

	// RateLimitRequests число запросов в одном окне
	RateLimitRequests = 20

	// RateLimitWindow окно ограничения попыток входа
	RateLimitWindow = 60 // 1 минута в секундах
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)
