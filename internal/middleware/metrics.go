package middleware

import (
	"strconv"
	"time"

	"github.com/Shattajit/Mini-CRM/internal/metrics"
	"github.com/gin-gonic/gin"
)

func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		metrics.RequestStarted()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestFinished(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status()), time.Since(start))
	}
}
