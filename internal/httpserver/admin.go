package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"techtrove/internal/domain"
)

func dashboardHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Dashboard(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func analyticsHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.Analytics(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categorySales": rows})
	}
}

func listInventoryHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListInventory(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func adjustInventoryHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, err)
			return
		}
		var req domain.Inventory
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		p, err := svc.AdjustInventory(c.Request.Context(), id, req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func adminListOrdersHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListOrders(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func adminGetOrderHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func orderStatusHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		order, err := svc.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type orderTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber" binding:"required"`
}

func orderTrackingHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderTrackingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		order, err := svc.UpdateOrderTracking(c.Request.Context(), c.Param("id"), req.TrackingNumber)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func listPaymentsHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payments, err := svc.ListPayments(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": payments})
	}
}

func listCustomersHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := svc.ListCustomers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"customers": customers})
	}
}

func listPromotionsHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		promos, err := svc.ListPromotions(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"promotions": promos})
	}
}

func createPromotionHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.Promotion
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		created, err := svc.CreatePromotion(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updatePromotionHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.Promotion
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		req.ID = c.Param("id")
		updated, err := svc.UpdatePromotion(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deletePromotionHandler(svc BackofficeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeletePromotion(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
