package models

// Cart maps a menu item id to the requested quantity. It lives inside
// the session payload and is never persisted to the database.
type Cart map[int64]int64

func (c Cart) Add(itemID int64) {
	c[itemID]++
}

func (c Cart) Remove(itemID int64) {
	delete(c, itemID)
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// CartLine is a cart entry resolved against the current menu.
type CartLine struct {
	Item      MenuItem `json:"item"`
	Quantity  int64    `json:"quantity"`
	LineTotal float64  `json:"line_total"`
}

// CartView is the rendered cart: resolved lines plus the grand total.
// Entries whose menu item no longer exists are dropped.
type CartView struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}
