package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/cart"
	"storefront/models"
)

// GetCartHandler returns the caller's cart items in insertion order.
func GetCartHandler(c *gin.Context, store *cart.Store) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "missing user id",
		})
		return
	}

	items, err := store.List(c.Request.Context(), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// AddToCartHandler appends an item. Adding a product that is already in the
// cart is rejected with a user-facing notice, not merged.
func AddToCartHandler(c *gin.Context, store *cart.Store) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "missing user id",
		})
		return
	}

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	err := store.Add(c.Request.Context(), userID.(uint), item)
	if err != nil {
		if errors.Is(err, cart.ErrDuplicateItem) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "item is already in the cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "added",
	})
}

// RemoveFromCartHandler removes the line for a product id. Removing an absent
// id succeeds without changing the cart.
func RemoveFromCartHandler(c *gin.Context, store *cart.Store) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "missing user id",
		})
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid product id",
		})
		return
	}

	err = store.Remove(c.Request.Context(), userID.(uint), uint(productID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "removed",
	})
}

// ClearCartHandler drops the caller's cart, typically after a completed
// payment.
func ClearCartHandler(c *gin.Context, store *cart.Store) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "missing user id",
		})
		return
	}

	if err := store.Clear(c.Request.Context(), userID.(uint)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "cleared",
	})
}
