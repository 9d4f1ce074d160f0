package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"techtrove/internal/store/session"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionResponse struct {
	Status string      `json:"status"`
	User   interface{} `json:"user"`
}

// loginHandler serves both the storefront and the admin console; they only
// differ in which session store is bound.
func loginHandler(store *session.Store, latency time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := simulateLatency(c.Request.Context(), latency); err != nil {
			respondError(c, err)
			return
		}
		id, err := store.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sessionResponse{Status: store.Status().String(), User: id})
	}
}

func logoutHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Logout(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sessionResponse{Status: store.Status().String(), User: nil})
	}
}

func sessionHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user interface{}
		if id := store.Current(); id != nil {
			user = id
		}
		c.JSON(http.StatusOK, sessionResponse{Status: store.Status().String(), User: user})
	}
}

type profileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func updateProfileHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		id, err := store.Update(c.Request.Context(), req.Name, req.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": id})
	}
}

type secretRequest struct {
	Password string `json:"password" binding:"required"`
}

func updateSecretHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req secretRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := store.UpdateSecret(c.Request.Context(), req.Password); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
