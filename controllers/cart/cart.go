package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lcvaldiviag/STREAMIX-sub000/cart"
	"github.com/lcvaldiviag/STREAMIX-sub000/catalog"
)

type AddItemInput struct {
	ID string `json:"id" binding:"required"`
}

type UpdateQuantityInput struct {
	// Pointer so that zero and negative values survive binding; both mean
	// "remove the line".
	Quantity *int `json:"quantity" binding:"required"`
}

func sessionCart(c *gin.Context, carts *cart.Store) *cart.Manager {
	return carts.Get(c.GetString("session_id"))
}

// GET /api/cart
func GetCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sessionCart(c, carts).View())
	}
}

// POST /api/cart/items
func AddItem(store catalog.Store, carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := store.Get(c.Request.Context(), input.ID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate item"})
			return
		}

		mgr := sessionCart(c, carts)
		mgr.AddItem(*item)
		c.JSON(http.StatusCreated, mgr.View())
	}
}

// PUT /api/cart/items/:id
func UpdateQuantity(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		mgr := sessionCart(c, carts)
		mgr.UpdateQuantity(c.Param("id"), *input.Quantity)
		c.JSON(http.StatusOK, mgr.View())
	}
}

// DELETE /api/cart/items/:id
func RemoveItem(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		mgr := sessionCart(c, carts)
		mgr.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, mgr.View())
	}
}

// DELETE /api/cart
func ClearCart(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart(c, carts).Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
