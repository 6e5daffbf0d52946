// internal/complaint/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 驗證失敗以 *ValidationError 包裝下列 sentinel，呼叫端可用 errors.Is 判斷原因；
// 載入、儲存與單筆紀錄還原失敗各有獨立型別，皆可用 errors.As 取得細節。
// 這些錯誤都不會中止程式，由上層（終端機選單、HTTP handler）轉換成使用者訊息。

package complaint

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 代表找不到指定編號的申訴。
	// 對應 HTTP 狀態碼 404 Not Found。
	ErrNotFound = errors.New("complaint not found")

	// ErrEmptyID 代表申訴編號為空（去除空白後）。
	ErrEmptyID = errors.New("complaint id cannot be empty")

	// ErrDuplicateID 代表申訴編號已存在。
	// 對應 HTTP 狀態碼 409 Conflict。
	ErrDuplicateID = errors.New("complaint id already exists")

	// ErrEmptyName 代表陳情人姓名為空。
	ErrEmptyName = errors.New("citizen name cannot be empty")

	// ErrInvalidMobile 代表手機號碼不是 10 位數字。
	ErrInvalidMobile = errors.New("mobile number must be exactly 10 digits")

	// ErrInvalidCategory 代表類別不在 Water / Electricity / Road / Others 之中。
	ErrInvalidCategory = errors.New("invalid complaint category")

	// ErrEmptyDetails 代表類別為 Others 卻未填寫申訴說明。
	ErrEmptyDetails = errors.New("please describe your complaint")

	// ErrInvalidStatus 代表狀態不在 Open / In Progress / Closed 之中。
	ErrInvalidStatus = errors.New("invalid complaint status")

	// ErrNoUsableRecords 代表資料檔中有紀錄，但沒有任何一筆能還原
	// （例如欄位名稱屬於其他版本的格式）。
	ErrNoUsableRecords = errors.New("no usable complaint records in file")

	errMissingField = errors.New("required field is missing")
)

// ValidationError 描述新增或更新時被拒絕的輸入；發生時集合不會被修改。
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// LoadError 代表資料檔存在但無法讀取或解析。
// Store 已退回空集合，程式可繼續執行。
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load complaints from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError 代表寫入資料檔失敗；記憶體中的變更已經生效。
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save complaints to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// MalformedRecordError 代表資料檔中某一筆紀錄無法還原。
// Index 為該筆在檔案陣列中的位置；由 Deserialize 直接回傳時為 -1。
type MalformedRecordError struct {
	Index int
	Field string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed complaint record %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("malformed complaint record %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }
