package payroll

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

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetSummary)
		payrolls.GET("/:employee_id/:month", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetMonthly)
		payrolls.GET("/:employee_id/:month/payslip", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.DownloadPayslip)
		if redisClient != nil {
			payrolls.POST(
				"/:employee_id/:month/pay",
				middleware.Idempotency(redisClient, nil),
				middleware.RBACAuthorize(rbacService, "payroll", "pay"),
				handler.Pay,
			)
		} else {
			payrolls.POST("/:employee_id/:month/pay", middleware.RBACAuthorize(rbacService, "payroll", "pay"), handler.Pay)
		}
		payrolls.POST("/:employee_id/:month/unpay", middleware.RBACAuthorize(rbacService, "payroll", "pay"), handler.Unpay)
	}
}
