// internal/server/router.go
//
// 本檔負責 HTTP 路由註冊與中介層組裝。
//   - handler.go 定義「如何處理請求」
//   - router.go 定義「請求如何被導向」
//   - cmd/grievance 組裝整體應用（注入 Store、Logger）
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router 建立並回傳整個 HTTP 處理鏈。
func (s *Server) Router() http.Handler {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), requestID(), s.accessLog(), s.metrics.middleware())

	// API 同時掛在 / 與 /api/v1 之下，方便本地開發與版本化。
	s.register(r.Group("/"))
	s.register(r.Group("/api/v1"))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	return r
}

// register 綁定 API v1 端點：
//   - GET  /health
//   - GET  /complaints           → 列出申訴
//   - POST /complaints           → 登記申訴
//   - GET  /complaints/:id       → 查詢申訴
//   - PUT  /complaints/:id/status → 更新狀態
//   - GET  /summary              → 狀態統計
func (s *Server) register(g *gin.RouterGroup) {
	g.GET("/health", s.health)
	g.GET("/complaints", s.listComplaints)
	g.POST("/complaints", s.createComplaint)
	g.GET("/complaints/:id", s.getComplaint)
	g.PUT("/complaints/:id/status", s.updateStatus)
	g.GET("/summary", s.summary)
}
