// internal/complaint/validate.go
//
// 新增申訴時的欄位驗證。欄位格式規則以 validator tag 宣告在 NewComplaint 上，
// 自訂 tag：
//   - mobile10：ValidateMobile
//   - complaint_category：Category.Valid
//
// 錯誤回報順序固定為 編號 → 重複編號 → 姓名 → 手機 → 類別，
// 與終端機逐欄輸入的順序一致。
package complaint

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var inputValidate *validator.Validate

func init() {
	inputValidate = validator.New()
	_ = inputValidate.RegisterValidation("mobile10", func(fl validator.FieldLevel) bool {
		return ValidateMobile(fl.Field().String())
	})
	_ = inputValidate.RegisterValidation("complaint_category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	})
}

// NewComplaint 為新增申訴的輸入。
// OtherDetails 只在類別為 Others 時保存。
type NewComplaint struct {
	ID           string   `validate:"required"`
	CitizenName  string   `validate:"required"`
	MobileNumber string   `validate:"mobile10"`
	Category     Category `validate:"complaint_category"`
	OtherDetails string
}

func (n NewComplaint) normalized() NewComplaint {
	n.ID = strings.TrimSpace(n.ID)
	n.CitizenName = strings.TrimSpace(n.CitizenName)
	n.MobileNumber = strings.TrimSpace(n.MobileNumber)
	n.OtherDetails = strings.TrimSpace(n.OtherDetails)
	if n.Category != CategoryOthers {
		n.OtherDetails = ""
	}
	return n
}

// ValidateMobile 回報 mobile 去除前後空白後是否恰為 10 個十進位數字。
func ValidateMobile(mobile string) bool {
	m := strings.TrimSpace(mobile)
	if len(m) != 10 {
		return false
	}
	for i := 0; i < len(m); i++ {
		if m[i] < '0' || m[i] > '9' {
			return false
		}
	}
	return true
}

// validateLocked 依固定順序回傳第一個驗證錯誤；呼叫端須持有 s.mu。
func (s *Store) validateLocked(in NewComplaint) error {
	failed := make(map[string]bool)
	if err := inputValidate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			failed[fe.StructField()] = true
		}
	}

	switch {
	case failed["ID"]:
		return &ValidationError{Field: "id", Value: in.ID, Err: ErrEmptyID}
	case s.isDuplicateLocked(in.ID):
		return &ValidationError{Field: "id", Value: in.ID, Err: ErrDuplicateID}
	case failed["CitizenName"]:
		return &ValidationError{Field: "citizen_name", Value: in.CitizenName, Err: ErrEmptyName}
	case failed["MobileNumber"]:
		return &ValidationError{Field: "mobile_number", Value: in.MobileNumber, Err: ErrInvalidMobile}
	case failed["Category"]:
		return &ValidationError{Field: "category", Value: string(in.Category), Err: ErrInvalidCategory}
	}
	return nil
}
