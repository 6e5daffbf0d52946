// internal/complaint/store.go

// Store 為聚合根：以插入順序保存所有申訴，並負責與資料檔同步。
// 採用單一互斥鎖 (sync.Mutex) 序列化所有讀寫，終端機與 HTTP 介面可共用同一實例。
// 所有錯誤皆以回傳值交給呼叫端，Store 內部不會 panic。

package complaint

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"grievance/internal/storage"
)

// Store owns the ordered complaint collection and its backing file.
type Store struct {
	mu    sync.Mutex
	path  string
	items []Complaint
	log   *slog.Logger
	now   func() time.Time
}

// Option 調整 Store 的相依元件。
type Option func(*Store)

// WithLogger 指定結構化日誌輸出。
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock 指定時鐘，測試用。
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore 建立以 path 為資料檔的空白 Store；需呼叫 Load 載入既有資料。
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path, log: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path 回傳資料檔路徑。
func (s *Store) Path() string { return s.path }

// Load 由資料檔重建集合。
//   - 檔案不存在：空集合，回傳 nil。
//   - 檔案無法讀取或不是 JSON 陣列：記錄日誌、退回空集合，回傳 *LoadError。
//   - 個別紀錄形狀錯誤、無法還原或編號重複：記錄日誌後略過該筆。
//   - 所有紀錄皆被略過：空集合，回傳包裝 ErrNoUsableRecords 的 *LoadError。
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil

	raws, err := storage.ReadEntries(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("no complaints file, starting empty", "path", s.path)
		return nil
	}
	if err != nil {
		s.log.Error("load complaints failed, starting empty", "path", s.path, "error", err)
		return &LoadError{Path: s.path, Err: err}
	}

	now := s.now()
	skipped := 0
	var firstErr error
	for i, raw := range raws {
		c, err := s.restore(i, raw, now)
		if err != nil {
			skipped++
			if firstErr == nil {
				firstErr = err
			}
			s.log.Warn("skipping complaint record", "path", s.path, "index", i, "error", err)
			continue
		}
		s.items = append(s.items, c)
	}
	if skipped > 0 && len(s.items) == 0 {
		s.log.Error("no complaint record could be restored, starting empty", "path", s.path, "skipped", skipped, "error", firstErr)
		return &LoadError{Path: s.path, Err: fmt.Errorf("%w: skipped %d, first: %v", ErrNoUsableRecords, skipped, firstErr)}
	}
	s.log.Info("complaints loaded", "path", s.path, "count", len(s.items), "skipped", skipped)
	return nil
}

// restore 還原檔案中第 i 筆紀錄；呼叫端須持有 s.mu。
func (s *Store) restore(i int, raw []byte, now time.Time) (Complaint, error) {
	p, err := storage.DecodeEntry(raw)
	if err != nil {
		return Complaint{}, &MalformedRecordError{Index: i, Err: err}
	}
	c, err := deserialize(p, now)
	if err != nil {
		var me *MalformedRecordError
		if errors.As(err, &me) {
			me.Index = i
		}
		return Complaint{}, err
	}
	if s.isDuplicateLocked(c.ID) {
		return Complaint{}, &MalformedRecordError{Index: i, Field: "id", Err: ErrDuplicateID}
	}
	return c, nil
}

// Save 將整個集合寫回資料檔。失敗時回傳 *SaveError，記憶體狀態不變。
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	out := make([]storage.PersistComplaint, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, c.Serialize())
	}
	if err := storage.SaveComplaints(s.path, out); err != nil {
		s.log.Error("save complaints failed", "path", s.path, "count", len(out), "error", err)
		return &SaveError{Path: s.path, Err: err}
	}
	return nil
}

// IsDuplicateID 以區分大小寫的完全比對檢查編號是否已存在。
func (s *Store) IsDuplicateID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isDuplicateLocked(id)
}

func (s *Store) isDuplicateLocked(id string) bool {
	return s.indexLocked(id) >= 0
}

func (s *Store) indexLocked(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add 驗證輸入後新增一筆狀態為 Open 的申訴並寫回資料檔。
// 驗證失敗回傳 *ValidationError，集合不變。
// 寫檔失敗時申訴仍已加入集合：回傳該筆紀錄與 *SaveError，由呼叫端決定是否提醒使用者。
func (s *Store) Add(in NewComplaint) (Complaint, error) {
	in = in.normalized()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.validateLocked(in); err != nil {
		return Complaint{}, err
	}

	c := Complaint{
		ID:           in.ID,
		CitizenName:  in.CitizenName,
		MobileNumber: in.MobileNumber,
		Category:     in.Category,
		OtherDetails: in.OtherDetails,
		Status:       StatusOpen,
		CreatedAt:    s.now().Truncate(time.Second),
	}
	s.items = append(s.items, c)
	s.log.Info("complaint added", "id", c.ID, "category", string(c.Category))

	if err := s.saveLocked(); err != nil {
		return c, err
	}
	return c, nil
}

// FindByID 回傳編號完全相符的申訴（值拷貝）。
func (s *Store) FindByID(id string) (Complaint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return Complaint{}, false
	}
	return s.items[i], true
}

// StatusChange 為狀態更新前後的值，供畫面顯示。
type StatusChange struct {
	ID  string
	Old Status
	New Status
}

// UpdateStatus 將指定申訴改為 status 並寫回資料檔；任何狀態間皆可轉換。
// 找不到時回傳 ErrNotFound；status 不合法時回傳 *ValidationError；兩者都不修改集合。
// 寫檔失敗的處理方式與 Add 相同。
func (s *Store) UpdateStatus(id string, status Status) (StatusChange, error) {
	if !status.Valid() {
		return StatusChange{}, &ValidationError{Field: "status", Value: string(status), Err: ErrInvalidStatus}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return StatusChange{}, ErrNotFound
	}

	ch := StatusChange{ID: id, Old: s.items[i].Status, New: status}
	s.items[i].Status = status
	s.log.Info("complaint status updated", "id", id, "old", string(ch.Old), "new", string(ch.New))

	if err := s.saveLocked(); err != nil {
		return ch, err
	}
	return ch, nil
}

// Tally 為各狀態的申訴數量；三種狀態一定都有鍵值。
type Tally map[Status]int

// Total 回傳三種狀態的總和。
func (t Tally) Total() int {
	n := 0
	for _, st := range Statuses() {
		n += t[st]
	}
	return n
}

// StatusTally 統計各狀態的申訴數量；不在列舉內的狀態不計入任何欄位。
func (s *Store) StatusTally() Tally {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := Tally{StatusOpen: 0, StatusInProgress: 0, StatusClosed: 0}
	for _, c := range s.items {
		if _, ok := t[c.Status]; ok {
			t[c.Status]++
		}
	}
	return t
}

// List 依插入順序回傳所有申訴的拷貝。
func (s *Store) List() []Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Complaint, len(s.items))
	copy(out, s.items)
	return out
}

// Len 回傳申訴筆數。
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
