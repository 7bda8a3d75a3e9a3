package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/checkout"
	"storefront/models"
)

// CreateCheckoutSessionHandler turns the submitted cart into a pending order
// and answers with the payment provider redirect URL.
func CreateCheckoutSessionHandler(c *gin.Context, db *gorm.DB, svc *checkout.Service) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "missing user id",
		})
		return
	}

	var checkoutReq struct {
		CartItems []models.CartItem `json:"cartItems"`
	}
	if err := c.ShouldBindJSON(&checkoutReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// The token only carries id and role; the payer name comes from the
	// users table.
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	url, err := svc.CreateSession(c.Request.Context(), user.ID, user.Name, checkoutReq.CartItems)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": url,
	})
}
