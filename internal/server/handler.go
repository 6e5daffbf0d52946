// internal/server/handler.go
//
// Package server
// ─────────────────────────────────────────────
// 提供 HTTP RESTful 介面，供「登記申訴」與「管理者」兩種使用情境。
// 每個 handler 僅負責：
//  1. 接收與解析 HTTP 請求
//  2. 呼叫 complaint.Store 執行商業邏輯（Store 自行於變更後存檔）
//  3. 回傳標準化 JSON 回應；「已變更但未存檔」以 persisted=false 告知呼叫端
//
// 分層：
//   - complaint：純商業邏輯，與 HTTP 無關。
//   - server：處理傳輸層（Transport Layer）。
//   - storage：負責持久化。
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"grievance/internal/complaint"
	"grievance/internal/storage"
)

// Server 為 HTTP 層核心結構：
// - Store：注入商業邏輯層。
// - log：請求日誌。
// - metrics：Prometheus 指標，註冊在獨立 registry，測試間互不干擾。
type Server struct {
	Store   *complaint.Store
	log     *slog.Logger
	metrics *Metrics
}

// NewServer 建立新的 HTTP 伺服器；logger 為 nil 時使用 slog.Default()。
func NewServer(store *complaint.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{Store: store, log: logger, metrics: NewMetrics(store)}
}

type createRequest struct {
	ID           string `json:"id"`
	CitizenName  string `json:"citizen_name"`
	MobileNumber string `json:"mobile_number"`
	Category     string `json:"category"`
	OtherDetails string `json:"other_details"`
}

type complaintResponse struct {
	Complaint storage.PersistComplaint `json:"complaint"`
	Persisted bool                     `json:"persisted"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type statusResponse struct {
	ID        string `json:"id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	Persisted bool   `json:"persisted"`
}

// createComplaint 處理 POST /complaints。類別為 Others 時必須附上說明。
func (s *Server) createComplaint(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErr(c, err, http.StatusBadRequest)
		return
	}

	cat, _ := complaint.ParseCategory(req.Category)
	if cat == complaint.CategoryOthers && strings.TrimSpace(req.OtherDetails) == "" {
		err := &complaint.ValidationError{Field: "other_details", Err: complaint.ErrEmptyDetails}
		s.metrics.observeMutation("add", err)
		writeErr(c, err, http.StatusBadRequest)
		return
	}
	added, err := s.Store.Add(complaint.NewComplaint{
		ID:           req.ID,
		CitizenName:  req.CitizenName,
		MobileNumber: req.MobileNumber,
		Category:     cat,
		OtherDetails: req.OtherDetails,
	})
	persisted, err := splitSaveErr(err)
	if err != nil {
		s.metrics.observeMutation("add", err)
		writeErr(c, err, statusFor(err))
		return
	}
	s.metrics.observeMutation("add", persistErr(persisted))
	writeJSON(c, http.StatusCreated, complaintResponse{Complaint: added.Serialize(), Persisted: persisted})
}

// listComplaints 處理 GET /complaints，依插入順序回傳。
func (s *Server) listComplaints(c *gin.Context) {
	list := s.Store.List()
	out := make([]storage.PersistComplaint, 0, len(list))
	for _, item := range list {
		out = append(out, item.Serialize())
	}
	writeJSON(c, http.StatusOK, out)
}

// getComplaint 處理 GET /complaints/:id。
func (s *Server) getComplaint(c *gin.Context) {
	found, ok := s.Store.FindByID(c.Param("id"))
	if !ok {
		writeErr(c, complaint.ErrNotFound, http.StatusNotFound)
		return
	}
	writeJSON(c, http.StatusOK, found.Serialize())
}

// updateStatus 處理 PUT /complaints/:id/status，body 為 {"status": "Closed"}。
func (s *Server) updateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErr(c, err, http.StatusBadRequest)
		return
	}

	st, _ := complaint.ParseStatus(req.Status)
	ch, err := s.Store.UpdateStatus(c.Param("id"), st)
	persisted, err := splitSaveErr(err)
	if err != nil {
		s.metrics.observeMutation("update_status", err)
		writeErr(c, err, statusFor(err))
		return
	}
	s.metrics.observeMutation("update_status", persistErr(persisted))
	writeJSON(c, http.StatusOK, statusResponse{
		ID:        ch.ID,
		OldStatus: string(ch.Old),
		NewStatus: string(ch.New),
		Persisted: persisted,
	})
}

// summary 處理 GET /summary：各狀態筆數與總數。
func (s *Server) summary(c *gin.Context) {
	t := s.Store.StatusTally()
	body := gin.H{"total": t.Total()}
	for _, st := range complaint.Statuses() {
		body[string(st)] = t[st]
	}
	writeJSON(c, http.StatusOK, body)
}

// health 提供健康檢查端點：GET /health。
func (s *Server) health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "ok", "complaints": s.Store.Len()})
}

// splitSaveErr 將「變更成功但寫檔失敗」與真正的失敗分開。
func splitSaveErr(err error) (persisted bool, rest error) {
	if err == nil {
		return true, nil
	}
	var se *complaint.SaveError
	if errors.As(err, &se) {
		return false, nil
	}
	return false, err
}

func persistErr(persisted bool) error {
	if persisted {
		return nil
	}
	return errUnsaved
}

var errUnsaved = errors.New("mutation not persisted")

// statusFor 將領域錯誤映射為 HTTP 狀態碼。
func statusFor(err error) int {
	var ve *complaint.ValidationError
	switch {
	case errors.Is(err, complaint.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, complaint.ErrDuplicateID):
		return http.StatusConflict
	case errors.As(err, &ve):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
