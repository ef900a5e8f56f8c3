// Package router registers the HTTP API routes.
package router

import (
	"net/http"

	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/router/handler"
	"crm/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler   *handler.SessionHandler
	DataHandler      *handler.DataHandler
	ComplaintHandler *handler.ComplaintHandler
	CustomerHandler  *handler.CustomerHandler
	TaskHandler      *handler.TaskHandler
	CatalogHandler   *handler.CatalogHandler
	AuthMiddleware   *middleware.AuthMiddleware

	// LiveSync upgrades /ws connections. Nil disables the route.
	LiveSync http.Handler `name:"liveSync" optional:"true"`
}

type router struct {
	session   *handler.SessionHandler
	data      *handler.DataHandler
	complaint *handler.ComplaintHandler
	customer  *handler.CustomerHandler
	task      *handler.TaskHandler
	catalog   *handler.CatalogHandler
	auth      *middleware.AuthMiddleware
	liveSync  http.Handler
}

func NewRouter(params RouterParams) *router {
	return &router{
		session:   params.SessionHandler,
		data:      params.DataHandler,
		complaint: params.ComplaintHandler,
		customer:  params.CustomerHandler,
		task:      params.TaskHandler,
		catalog:   params.CatalogHandler,
		auth:      params.AuthMiddleware,
		liveSync:  params.LiveSync,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.data.HealthCheck)

	// Whole-snapshot endpoints kept for older clients and peer servers
	e.GET("/api/data", r.data.GetData)
	e.POST("/api/data", r.data.PostData)
	if r.liveSync != nil {
		e.GET("/ws", echo.WrapHandler(r.liveSync))
	}

	e.POST("/auth/login", r.session.Login)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.auth.Authenticate)

	apiV1.POST("/auth/logout", r.session.Logout)
	apiV1.GET("/activity", r.session.Activity)
	apiV1.GET("/sync/status", r.data.SyncStatus)

	complaints := apiV1.Group("/complaints")
	{
		complaints.GET("", r.complaint.ListComplaints)
		complaints.POST("", r.complaint.RegisterComplaint)
		complaints.GET("/:id", r.complaint.GetComplaint)
		complaints.POST("/:id/transitions", r.complaint.ApplyTransition)
		complaints.POST("/:id/logs", r.complaint.AddLog)
	}

	customers := apiV1.Group("/customers")
	{
		customers.GET("", r.customer.ListCustomers)
		customers.POST("", r.customer.CreateCustomer)
		customers.POST("/import", r.customer.ImportCustomers)
		customers.GET("/:id", r.customer.GetCustomer)
		customers.POST("/:id/points/grant", r.customer.GrantPoints)
		customers.POST("/:id/points/deduct", r.customer.DeductPoints)
		customers.POST("/:id/legacy-balance", r.customer.AddLegacyBalance)
		customers.POST("/:id/video-reward", r.customer.GrantVideoReward)
		customers.POST("/:id/vouchers", r.customer.RedeemVoucher)
		customers.POST("/:id/impressions", r.customer.RecordImpression)
	}
	apiV1.GET("/vouchers/:code/qr", r.customer.VoucherQR)

	apiV1.GET("/follow-ups", r.task.ListFollowUps)
	apiV1.POST("/follow-ups/:id/resolve", r.task.ResolveFollowUp)
	apiV1.GET("/feedback-tasks", r.task.ListFeedbackTasks)
	apiV1.POST("/feedback-tasks/generate", r.task.GenerateFeedbackTasks)

	apiV1.GET("/branches", r.catalog.ListBranches)
	apiV1.POST("/branches", r.catalog.SaveBranch)
	apiV1.GET("/products", r.catalog.ListProducts)
	apiV1.POST("/products", r.catalog.SaveProduct)
	apiV1.GET("/inquiries", r.catalog.ListInquiries)
	apiV1.POST("/inquiries", r.catalog.AddInquiry)

	users := apiV1.Group("/users")
	users.Use(r.auth.RequireRole(entity.RoleGeneralManager, entity.RoleAccountsManager))
	{
		users.GET("", r.catalog.ListUsers)
		users.POST("", r.catalog.SaveUser)
	}
}
