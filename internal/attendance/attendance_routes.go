package attendance

import (
	"github.com/anzallkiyteb-cell/bey/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("/status",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.GetPersonnelStatus,
		)
		attendance.GET("/top-performers",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.TopPerformers,
		)
		attendance.GET("/:employee_id/daily",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.GetDailyState,
		)
		attendance.GET("/:employee_id/history",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.History,
		)
		attendance.POST("/sync",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "sync"),
			h.RequestSync,
		)
	}
}
