package models

import "time"

const (
	OrderStatusPending = "pending"
	OrderStatusFailed  = "failed"
)

type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uint        `json:"user_id" gorm:"not null;index"`
	Total     float64     `json:"total" gorm:"type:decimal(10,2);not null"`
	Status    string      `json:"status" gorm:"not null"`
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}
