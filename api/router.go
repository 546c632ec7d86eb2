// Package api exposes the teller operations as a JSON API.
package api

import (
	"banking-management/bank"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine. Cross-origin requests are allowed only
// from allowedOrigins; an empty list disables CORS handling.
func NewRouter(teller *bank.Teller, allowedOrigins []string) *gin.Engine {
	// Logger and Recovery middleware
	r := gin.Default()
	if len(allowedOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = allowedOrigins
		r.Use(cors.New(cfg))
	}
	Register(r, NewHandler(teller))
	return r
}

// Register mounts the routes on r
func Register(r gin.IRouter, h *Handler) {
	api := r.Group("/api")
	api.POST("/customers", h.createCustomer)
	api.GET("/customers/:customerId", h.getCustomer)
	api.POST("/customers/:customerId/accounts", h.openAccount)
	api.POST("/customers/:customerId/accounts/:accountNumber/deposits", h.deposit)
	api.POST("/customers/:customerId/accounts/:accountNumber/withdrawals", h.withdraw)
	api.POST("/customers/:customerId/accounts/:accountNumber/interest", h.addInterest)
	api.POST("/customers/:customerId/loans", h.applyLoan)
}
