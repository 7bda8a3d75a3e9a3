package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/repository"
)

// ListOrdersHandler returns the caller's orders newest first, each populated
// with its line items. Zero orders yields an empty array.
func ListOrdersHandler(c *gin.Context, repo repository.OrderRepository) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "missing user id",
		})
		return
	}

	orders, err := repo.FindByUser(c.Request.Context(), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}
