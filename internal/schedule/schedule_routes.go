package schedule

import (
	"github.com/anzallkiyteb-cell/bey/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	schedules := r.Group("/schedules")
	{
		schedules.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "schedule", "read"),
			handler.GetAll,
		)
		schedules.GET("/:employee_id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "schedule", "read"),
			handler.GetByEmployee,
		)
		schedules.GET("/:employee_id/resolve",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "schedule", "read"),
			handler.Resolve,
		)
		schedules.PUT("/:employee_id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "schedule", "manage"),
			handler.Upsert,
		)
		schedules.PATCH("/:employee_id/days/:day",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "schedule", "manage"),
			handler.UpdateDay,
		)
		schedules.POST("/:employee_id/apply-monday",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "schedule", "manage"),
			handler.ApplyMondayToAll,
		)
	}
}
