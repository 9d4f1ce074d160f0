package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"techtrove/internal/domain"
	"techtrove/internal/store/cart"
)

type cartResponse struct {
	Items         []domain.CartLine `json:"items"`
	SubtotalCents int64             `json:"subtotalCents"`
}

func cartBody(store *cart.Store) cartResponse {
	lines := store.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{Items: lines, SubtotalCents: store.SubtotalCents()}
}

func getCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartBody(store))
	}
}

type addCartItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

func addCartItemHandler(store *cart.Store, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		p, err := catalog.GetProduct(c.Request.Context(), req.ProductID)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := store.AddItem(c.Request.Context(), *p, req.Quantity); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartBody(store))
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, err)
			return
		}
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := store.UpdateQuantity(c.Request.Context(), id, req.Quantity); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartBody(store))
	}
}

func removeCartItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, err)
			return
		}
		if err := store.RemoveItem(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartBody(store))
	}
}

func clearCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Clear(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cartBody(store))
	}
}
