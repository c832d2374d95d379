package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"vendor-kyc.backend/internal/interfaces/http/handlers"
	"vendor-kyc.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	vendorHandler  *handlers.VendorHandler
	adminHandler   *handlers.AdminHandler
	authHandler    *handlers.AuthHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Vendor routes (public)
		vendors := v1.Group("/vendors")
		{
			vendors.POST("/register", middleware.IdempotencyMiddleware("register"), d.vendorHandler.Register)
			vendors.POST("/:vendorId/documents", d.vendorHandler.UploadDocuments)
			vendors.GET("/:vendorId/status", d.vendorHandler.CheckStatus)
			vendors.GET("/:vendorId", d.vendorHandler.GetVendor)
		}

		// Admin auth routes (public)
		admin := v1.Group("/admin")
		{
			admin.POST("/login", d.authHandler.Login)
			admin.POST("/refresh", d.authHandler.Refresh)
		}

		// Admin routes (protected)
		adminAuthed := v1.Group("/admin")
		adminAuthed.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			adminAuthed.GET("/me", d.authHandler.Me)
			adminAuthed.POST("/change-password", d.authHandler.ChangePassword)

			adminAuthed.GET("/vendors", d.adminHandler.ListVendors)
			adminAuthed.GET("/vendors/:vendorId", d.adminHandler.GetVendor)
			adminAuthed.PUT("/vendors/:vendorId/status", d.adminHandler.UpdateStatus)
			adminAuthed.GET("/vendors/:vendorId/audit", d.adminHandler.ListAudit)
			adminAuthed.GET("/vendors/:vendorId/documents/:docType", d.adminHandler.DownloadDocument)

			adminAuthed.GET("/stats", d.adminHandler.Stats)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "vendor-kyc-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
