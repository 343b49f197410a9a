package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-analyzer-go/internal/api/handler"
	"resume-analyzer-go/internal/logger"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	api.POST("/resume/upload", resumeHandler.HandleResumeUpload)

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})

	h.NoRoute(func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "Endpoint tidak ditemukan"})
	})
}

// Recovery 恐慌恢复中间件，任何panic都转成统一的500响应
func Recovery() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().Interface("panic", r).Str("path", string(ctx.Path())).Msg("请求处理发生panic")
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "Terjadi kesalahan tak terduga"})
				ctx.Abort()
			}
		}()
		ctx.Next(c)
	}
}
