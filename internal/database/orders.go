package database

import (
	"context"
	"fmt"

	"restaurant/internal/models"
)

// CreateOrder inserts the order row and all its line rows inside one
// transaction. Either everything is persisted or nothing is.
func (db *DB) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	queryOrder := `INSERT INTO orders (user_id, order_date, total_amount) VALUES (?, ?, ?)`
	result, err := tx.ExecContext(ctx, queryOrder, order.UserID, order.OrderDate, order.TotalAmount)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	queryItem := `INSERT INTO order_items (order_id, item_id, quantity) VALUES (?, ?, ?)`
	for i := range order.Items {
		order.Items[i].OrderID = orderID
		_, err := tx.ExecContext(ctx, queryItem, orderID, order.Items[i].ItemID, order.Items[i].Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert order item %d: %w", order.Items[i].ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	order.ID = orderID
	return nil
}

func (db *DB) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	queryOrder := `SELECT id, user_id, order_date, total_amount FROM orders WHERE id = ?`
	var order models.Order
	err := db.QueryRowContext(ctx, queryOrder, id).Scan(
		&order.ID, &order.UserID, &order.OrderDate, &order.TotalAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	queryItems := `SELECT order_id, item_id, quantity FROM order_items WHERE order_id = ?`
	rows, err := db.QueryContext(ctx, queryItems, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.OrderID, &item.ItemID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order items: %w", err)
	}
	return &order, nil
}
