// internal/storage/jsonstore.go
//
// 提供 complaints.json 的讀寫實作。
// 檔案內容為 PersistComplaint 的 JSON 陣列，以兩格縮排輸出。
// 寫入採「原子寫入」策略：先寫入 .tmp 檔，再以 rename() 取代原檔，
// 寫入中途失敗時原檔保持不變。
package storage

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadEntries 讀取指定路徑的 JSON 陣列，回傳尚未解碼的個別紀錄。
// 檔案不存在時回傳的錯誤滿足 errors.Is(err, fs.ErrNotExist)，由上層決定視為空集合。
// 個別紀錄的形狀檢查交給 DecodeEntry，讓上層可以逐筆略過壞資料。
func ReadEntries(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []json.RawMessage
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return entries, nil
}

// DecodeEntry 先以 JSON Schema 檢查單筆紀錄，再解碼為 PersistComplaint。
func DecodeEntry(raw json.RawMessage) (PersistComplaint, error) {
	var p PersistComplaint
	if err := checkEntry(raw); err != nil {
		return p, err
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("decode entry: %w", err)
	}
	return p, nil
}

// SaveComplaints 將所有紀錄序列化為 JSON 陣列並以原子方式覆寫 path。
// 流程：
//  1. 寫入 path+".tmp" 暫存檔（兩格縮排）。
//  2. 關閉並確認寫入成功。
//  3. 以 os.Rename() 取代正式檔案。
//
// 任一步驟失敗都會移除暫存檔並回傳錯誤，原檔不受影響。
func SaveComplaints(path string, items []PersistComplaint) error {
	if items == nil {
		// nil 會被編碼成 null，空集合必須寫成 []
		items = []PersistComplaint{}
	}
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
