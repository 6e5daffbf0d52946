// internal/storage/model.go
//
// 定義「資料持久化層 (storage layer)」的結構模型。
// 該層只描述 complaints.json 內每一筆紀錄的固定形狀，所有欄位皆以字串保存，
// 型別轉換（類別、狀態、時間）由 complaint 套件負責。
package storage

// PersistComplaint 為單筆申訴在檔案中的序列化格式。
// 欄位順序即 JSON 輸出順序，確保檔案內容穩定、方便人工檢視與 diff。
type PersistComplaint struct {
	ID           string `json:"id"`                      // 申訴編號，集合內唯一
	CitizenName  string `json:"citizen_name"`            // 陳情人姓名
	MobileNumber string `json:"mobile_number"`           // 10 碼手機號碼
	Category     string `json:"category"`                // Water / Electricity / Road / Others
	Status       string `json:"status"`                  // Open / In Progress / Closed
	CreatedAt    string `json:"created_at"`              // 建立時間（本地時間，精確到秒）
	OtherDetails string `json:"other_details,omitempty"` // 類別為 Others 時的補充說明
}
