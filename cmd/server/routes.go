package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/interfaces/http/handlers"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/interfaces/http/middleware"
)

type routeDeps struct {
	applicationHandler *handlers.ApplicationHandler
	documentHandler    *handlers.DocumentHandler
	certificateHandler *handlers.CertificateHandler
	adminHandler       *handlers.AdminHandler
	authMiddleware     gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Public certificate verification
		v1.GET("/certificates/verify/:number", d.certificateHandler.Verify)

		// Application routes (protected)
		applications := v1.Group("/applications")
		applications.Use(d.authMiddleware)
		{
			applications.POST("", middleware.IdempotencyMiddleware(), d.applicationHandler.Submit)
			applications.GET("", d.applicationHandler.ListMine)
			applications.GET("/:ref", d.applicationHandler.Get)
			applications.POST("/:ref/payment", middleware.IdempotencyMiddleware(), d.applicationHandler.ConfirmPayment)

			applications.POST("/:ref/documents", d.documentHandler.Attach)
			applications.GET("/:ref/documents", d.documentHandler.ListByApplication)

			applications.GET("/:ref/certificates", d.certificateHandler.ListByApplication)
		}

		// Reviewer routes
		review := v1.Group("/applications")
		review.Use(d.authMiddleware, middleware.RequireReviewer())
		{
			review.POST("/:ref/sections/:section/verify", d.applicationHandler.VerifySection)
			review.POST("/:ref/decision", d.applicationHandler.Decide)
		}

		// Document review routes
		documents := v1.Group("/documents")
		documents.Use(d.authMiddleware)
		{
			documents.POST("/:id/reupload", d.documentHandler.Reupload)
		}
		documentsReview := v1.Group("/documents")
		documentsReview.Use(d.authMiddleware, middleware.RequireReviewer())
		{
			documentsReview.POST("/:id/verify", d.documentHandler.Verify)
			documentsReview.POST("/:id/flag", d.documentHandler.Flag)
			documentsReview.POST("/:id/request-reupload", d.documentHandler.RequestReupload)
		}

		// Certificate routes (protected)
		certificates := v1.Group("/certificates")
		certificates.Use(d.authMiddleware)
		{
			certificates.GET("/:id/download", d.certificateHandler.Download)
		}

		// Certificate management (admin)
		certAdmin := v1.Group("/applications")
		certAdmin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			certAdmin.POST("/:ref/certificates", d.certificateHandler.Generate)
			certAdmin.POST("/:ref/certificates/regenerate", d.certificateHandler.Regenerate)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/applications", d.applicationHandler.List)
			admin.GET("/applications/:ref/audit", d.adminHandler.ListAuditLog)
		}

		// User administration (super admin)
		adminUsers := v1.Group("/admin/users")
		adminUsers.Use(d.authMiddleware, middleware.RequireSuperAdmin())
		{
			adminUsers.POST("", d.adminHandler.CreateUser)
			adminUsers.GET("", d.adminHandler.ListUsers)
			adminUsers.POST("/:id/deactivate", d.adminHandler.DeactivateUser)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Idempotency-Key")
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
			"service": "vendor-hub-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
