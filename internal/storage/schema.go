// internal/storage/schema.go
//
// 單筆紀錄的 JSON Schema。必要欄位缺漏、型別錯誤或出現未知欄位的紀錄，
// 在解碼前就會被拒絕；status 與 created_at 允許缺漏，以相容舊版資料。
package storage

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

const entrySchema = `{
  "type": "object",
  "required": ["id", "citizen_name", "mobile_number", "category"],
  "additionalProperties": false,
  "properties": {
    "id":            {"type": "string"},
    "citizen_name":  {"type": "string"},
    "mobile_number": {"type": "string"},
    "category":      {"type": "string"},
    "status":        {"type": "string"},
    "created_at":    {"type": "string"},
    "other_details": {"type": "string"}
  }
}`

// ErrSchema 表示紀錄形狀不符合 entrySchema。
var ErrSchema = errors.New("entry does not match schema")

// 編譯後的 schema 只需建立一次。
var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(entrySchema))
})

func checkEntry(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile entry schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// 無法解析的 JSON 片段
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}
