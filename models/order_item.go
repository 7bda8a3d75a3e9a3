package models

// OrderItem is a snapshot of a cart line at order time. Title and price are
// copied from the cart so later product edits do not alter historical orders.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Title     string  `json:"title" gorm:"not null"`
	Price     float64 `json:"price" gorm:"type:decimal(10,2);not null"`
}
