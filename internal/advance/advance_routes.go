package advance

import (
	"github.com/anzallkiyteb-cell/bey/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	advances := r.Group("/advances")
	{
		advances.GET("", middleware.RBACAuthorize(rbacService, "advance", "read"), handler.GetAll)
		advances.GET("/exposure", middleware.RBACAuthorize(rbacService, "advance", "read"), handler.Exposure)
		advances.GET("/exposure/:employee_id", middleware.RBACAuthorize(rbacService, "advance", "read"), handler.EmployeeExposure)
		if redisClient != nil {
			advances.POST(
				"",
				middleware.RateLimitByUser(2, 10),
				middleware.Idempotency(redisClient, nil),
				middleware.RBACAuthorize(rbacService, "advance", "create"),
				handler.Create,
			)
		} else {
			advances.POST("", middleware.RateLimitByUser(2, 10), middleware.RBACAuthorize(rbacService, "advance", "create"), handler.Create)
		}
		advances.PATCH("/:id", middleware.RBACAuthorize(rbacService, "advance", "create"), handler.Update)
		advances.POST("/:id/validate", middleware.RBACAuthorize(rbacService, "advance", "approve"), handler.Validate)
		advances.POST("/:id/refuse", middleware.RBACAuthorize(rbacService, "advance", "approve"), handler.Refuse)
		advances.POST("/:id/reset", middleware.RBACAuthorize(rbacService, "advance", "approve"), handler.Reset)
		advances.DELETE("/:id", middleware.RBACAuthorize(rbacService, "advance", "approve"), handler.Delete)
	}
}
