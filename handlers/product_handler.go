package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/models"
)

// CategoryAll is the category filter value meaning "no category filter".
const CategoryAll = "Todas"

const placeholderImageURL = "https://via.placeholder.com/150"

func isValidImageExtension(filename string) bool {
	allowExtensions := []string{".jpg", ".jpeg", ".png"}
	fileExt := strings.ToLower(filepath.Ext(filename))
	for _, allowExt := range allowExtensions {
		if fileExt == allowExt {
			return true
		}
	}
	return false
}

func makeUniqueFileName(filename string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}

// saveProductImage stores the upload under uploadsDir and returns the absolute
// URL it will be served from.
func saveProductImage(c *gin.Context, file *multipart.FileHeader, uploadsDir, siteURL string) (string, error) {
	if !isValidImageExtension(file.Filename) {
		return "", fmt.Errorf("unsupported image extension %q", filepath.Ext(file.Filename))
	}

	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return "", err
	}

	imageName := makeUniqueFileName(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadsDir, imageName)); err != nil {
		return "", err
	}

	return siteURL + "/uploads/" + imageName, nil
}

// ProductFilterScope narrows a product query by exact category and a
// case-insensitive substring match on title or description, combined with AND.
func ProductFilterScope(search, category string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if category != "" && category != CategoryAll {
			db = db.Where("category = ?", category)
		}
		if search != "" {
			like := "%" + strings.ToLower(search) + "%"
			db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
		return db
	}
}

// ListProductsHandler returns matching products newest first. Public route.
func ListProductsHandler(c *gin.Context, db *gorm.DB) {
	search := c.Query("search")
	category := c.Query("category")

	products := make([]models.Product, 0)
	err := db.
		Scopes(ProductFilterScope(search, category)).
		Order("id DESC").
		Find(&products).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProductHandler inserts a product from a multipart form. The image is
// optional; without one a placeholder URL is stored.
func CreateProductHandler(c *gin.Context, db *gorm.DB, uploadsDir, siteURL string) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid price",
		})
		return
	}

	imageURL := placeholderImageURL
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = saveProductImage(c, file, uploadsDir, siteURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			return
		}
	}

	product := models.Product{
		Title:       c.PostForm("title"),
		Price:       price,
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		ImageURL:    imageURL,
	}
	if err := db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "created",
		"id":      product.ID,
	})
}

// UpdateProductHandler rewrites the form fields of a product. The stored
// image URL is replaced only when a new file is supplied.
func UpdateProductHandler(c *gin.Context, db *gorm.DB, uploadsDir, siteURL string) {
	productID := c.Param("id")

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid price",
		})
		return
	}

	updates := map[string]any{
		"title":       c.PostForm("title"),
		"price":       price,
		"category":    c.PostForm("category"),
		"description": c.PostForm("description"),
	}

	if file, err := c.FormFile("image"); err == nil {
		imageURL, err := saveProductImage(c, file, uploadsDir, siteURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": err.Error(),
			})
			return
		}
		updates["image_url"] = imageURL
	}

	err = db.
		Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(updates).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "updated",
	})
}

// DeleteProductHandler removes a product. Deleting an absent id is a silent
// no-op for the caller.
func DeleteProductHandler(c *gin.Context, db *gorm.DB) {
	productID := c.Param("id")

	err := db.Delete(&models.Product{}, "id = ?", productID).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "deleted",
	})
}
