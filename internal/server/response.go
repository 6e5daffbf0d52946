// internal/server/response.go
//
// 本檔負責統一 HTTP 回應格式。
//   - 成功回應：JSON 編碼（Content-Type: application/json）。
//   - 錯誤回應：{"error": "..."}，驗證錯誤另帶 field 欄位。
package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"grievance/internal/complaint"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeJSON 統一輸出成功回應。
func writeJSON(c *gin.Context, code int, v any) {
	c.JSON(code, v)
}

// writeErr 統一輸出錯誤回應。
func writeErr(c *gin.Context, err error, code int) {
	resp := errorResponse{Error: err.Error()}
	var ve *complaint.ValidationError
	if errors.As(err, &ve) {
		resp.Error = ve.Err.Error()
		resp.Field = ve.Field
	}
	c.AbortWithStatusJSON(code, resp)
}
