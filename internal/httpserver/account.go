package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techtrove/internal/domain"
	"techtrove/internal/store/book"
)

func listAddressesHandler(addresses *book.Book[domain.Address]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"addresses": addresses.Items()})
	}
}

func addAddressHandler(addresses *book.Book[domain.Address]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.Address
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if req.ID == "" {
			req.ID = newRecordID("addr")
		}
		if err := addresses.Add(c.Request.Context(), req); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, req)
	}
}

func updateAddressHandler(addresses *book.Book[domain.Address]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.Address
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.ID = c.Param("id")
		if err := addresses.Update(c.Request.Context(), req); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, req)
	}
}

func removeAddressHandler(addresses *book.Book[domain.Address]) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := addresses.Remove(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": addresses.Items()})
	}
}

func defaultAddressHandler(addresses *book.Book[domain.Address]) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := addresses.SetDefault(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": addresses.Items()})
	}
}

func listPaymentMethodsHandler(wallet *book.Book[domain.PaymentMethod]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"paymentMethods": wallet.Items()})
	}
}

func addPaymentMethodHandler(wallet *book.Book[domain.PaymentMethod]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.PaymentMethod
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if req.ID == "" {
			req.ID = newRecordID("pm")
		}
		if err := wallet.Add(c.Request.Context(), req); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, req)
	}
}

func updatePaymentMethodHandler(wallet *book.Book[domain.PaymentMethod]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.PaymentMethod
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.ID = c.Param("id")
		if err := wallet.Update(c.Request.Context(), req); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, req)
	}
}

func removePaymentMethodHandler(wallet *book.Book[domain.PaymentMethod]) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := wallet.Remove(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"paymentMethods": wallet.Items()})
	}
}

func defaultPaymentMethodHandler(wallet *book.Book[domain.PaymentMethod]) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := wallet.SetDefault(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"paymentMethods": wallet.Items()})
	}
}

func listOrdersHandler(orders OrderHistory) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := orders.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": out})
	}
}

func getOrderHandler(orders OrderHistory) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
