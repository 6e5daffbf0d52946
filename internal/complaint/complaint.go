// internal/complaint/complaint.go

// Package complaint 定義申訴紀錄的領域模型與商業規則。
// 本檔定義 Complaint 結構、類別與狀態列舉，以及與 storage 格式之間的轉換，
// 不含任何 HTTP、終端機或檔案 I/O 細節。
package complaint

import (
	"fmt"
	"strings"
	"time"

	"grievance/internal/storage"
)

// TimeLayout 為 created_at 在檔案與畫面上的格式（本地時間，精確到秒）。
const TimeLayout = "2006-01-02 15:04:05"

// Category 為申訴類別。
type Category string

const (
	CategoryWater       Category = "Water"
	CategoryElectricity Category = "Electricity"
	CategoryRoad        Category = "Road"
	CategoryOthers      Category = "Others"
)

// Categories 依選單順序回傳所有類別。
func Categories() []Category {
	return []Category{CategoryWater, CategoryElectricity, CategoryRoad, CategoryOthers}
}

// Valid 回報 c 是否為四種類別之一。
func (c Category) Valid() bool {
	switch c {
	case CategoryWater, CategoryElectricity, CategoryRoad, CategoryOthers:
		return true
	}
	return false
}

// Status 為申訴處理狀態。狀態之間可任意轉換，Closed 並非終態。
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusClosed     Status = "Closed"
)

// Statuses 依選單順序回傳所有狀態。
func Statuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusClosed}
}

// Valid 回報 s 是否為三種狀態之一。
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// ParseStatus 寬鬆解析外部輸入的狀態：忽略大小寫、前後空白，
// 並接受去除空白的寫法（例如 "InProgress"）。
func ParseStatus(s string) (Status, bool) {
	in := strings.TrimSpace(s)
	for _, st := range Statuses() {
		if strings.EqualFold(in, string(st)) || strings.EqualFold(in, strings.ReplaceAll(string(st), " ", "")) {
			return st, true
		}
	}
	return Status(in), false
}

// ParseCategory 忽略大小寫與前後空白解析類別。
func ParseCategory(s string) (Category, bool) {
	in := strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(in, string(c)) {
			return c, true
		}
	}
	return Category(in), false
}

// Complaint represents one citizen complaint.
type Complaint struct {
	ID           string
	CitizenName  string
	MobileNumber string
	Category     Category
	OtherDetails string
	Status       Status
	CreatedAt    time.Time
}

// Serialize 轉為檔案格式；所有欄位皆輸出為字串。
func (c Complaint) Serialize() storage.PersistComplaint {
	return storage.PersistComplaint{
		ID:           c.ID,
		CitizenName:  c.CitizenName,
		MobileNumber: c.MobileNumber,
		Category:     string(c.Category),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt.Format(TimeLayout),
		OtherDetails: c.OtherDetails,
	}
}

// Deserialize 由檔案格式還原 Complaint。
// 必要欄位缺漏（含僅有空白）、手機號碼不是 10 位數字或列舉值不合法時回傳 *MalformedRecordError；
// 舊資料缺少 status 時視為 Open，缺少 created_at 時以目前時間補上。
func Deserialize(p storage.PersistComplaint) (Complaint, error) {
	return deserialize(p, time.Now())
}

func deserialize(p storage.PersistComplaint, now time.Time) (Complaint, error) {
	required := []struct{ field, value string }{
		{"id", p.ID},
		{"citizen_name", p.CitizenName},
		{"mobile_number", p.MobileNumber},
		{"category", p.Category},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return Complaint{}, &MalformedRecordError{Index: -1, Field: r.field, Err: errMissingField}
		}
	}
	if !ValidateMobile(p.MobileNumber) {
		return Complaint{}, &MalformedRecordError{Index: -1, Field: "mobile_number", Err: fmt.Errorf("%w %q", ErrInvalidMobile, p.MobileNumber)}
	}

	c := Complaint{
		ID:           p.ID,
		CitizenName:  p.CitizenName,
		MobileNumber: p.MobileNumber,
		Category:     Category(p.Category),
		OtherDetails: p.OtherDetails,
		Status:       Status(p.Status),
	}
	if !c.Category.Valid() {
		return Complaint{}, &MalformedRecordError{Index: -1, Field: "category", Err: fmt.Errorf("%w %q", ErrInvalidCategory, p.Category)}
	}
	if c.Status == "" {
		c.Status = StatusOpen
	}
	if !c.Status.Valid() {
		return Complaint{}, &MalformedRecordError{Index: -1, Field: "status", Err: fmt.Errorf("%w %q", ErrInvalidStatus, p.Status)}
	}

	if p.CreatedAt == "" {
		c.CreatedAt = now.Truncate(time.Second)
		return c, nil
	}
	t, err := time.ParseInLocation(TimeLayout, p.CreatedAt, time.Local)
	if err != nil {
		return Complaint{}, &MalformedRecordError{Index: -1, Field: "created_at", Err: err}
	}
	c.CreatedAt = t
	return c, nil
}

// Display 以多行文字呈現所有欄位，供終端機畫面使用。
func (c Complaint) Display() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Complaint ID: %s\n", c.ID)
	fmt.Fprintf(&b, "Citizen Name: %s\n", c.CitizenName)
	fmt.Fprintf(&b, "Mobile Number: %s\n", c.MobileNumber)
	fmt.Fprintf(&b, "Complaint Type: %s\n", c.Category)
	if c.OtherDetails != "" {
		fmt.Fprintf(&b, "Details: %s\n", c.OtherDetails)
	}
	fmt.Fprintf(&b, "Status: %s\n", c.Status)
	fmt.Fprintf(&b, "Created Date: %s\n", c.CreatedAt.Format(TimeLayout))
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n")
	return b.String()
}
