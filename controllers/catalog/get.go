package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lcvaldiviag/STREAMIX-sub000/catalog"
)

// GET /api/catalog
func GetCatalog(store catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /api/catalog/:id
func GetCatalogItem(store catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := store.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
