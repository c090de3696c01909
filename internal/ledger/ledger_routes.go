package ledger

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
	create := []gin.HandlerFunc{middleware.RateLimitByUser(2, 10)}
	if len(rdb) > 0 && rdb[0] != nil {
		create = append(create, middleware.Idempotency(rdb[0], nil))
	}
	create = append(create, middleware.RBACAuthorize(rbacService, "ledger", "create"), handler.Record)

	entries := r.Group("/ledger")
	{
		entries.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "ledger", "read"),
			handler.Query,
		)
		entries.GET("/days",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "ledger", "read"),
			handler.Days,
		)
		entries.POST("", create...)
		entries.PATCH("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "ledger", "create"),
			handler.UpdateReason,
		)
		entries.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "ledger", "delete"),
			handler.Remove,
		)
	}
}
