package models

import "time"

type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	OrderDate   time.Time   `json:"order_date"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderItem `json:"items"`
}

type OrderItem struct {
	OrderID  int64 `json:"order_id"`
	ItemID   int64 `json:"item_id"`
	Quantity int64 `json:"quantity"`
}
