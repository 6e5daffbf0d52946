// internal/report/report.go

// Package report 將申訴集合匯出為 Excel 試算表，供承辦人員離線檢視。
// 產出兩個工作表：
//   - Complaints：每筆申訴一列，順序與資料檔相同
//   - Summary：各狀態筆數與總數
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"grievance/internal/complaint"
)

const (
	ComplaintsSheet = "Complaints"
	SummarySheet    = "Summary"
)

var header = []any{"Complaint ID", "Citizen Name", "Mobile Number", "Complaint Type", "Details", "Status", "Created Date"}

// WriteXLSX 將 items 與 tally 寫入 path。
func WriteXLSX(path string, items []complaint.Complaint, tally complaint.Tally) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", ComplaintsSheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := setRow(f, ComplaintsSheet, 1, header); err != nil {
		return err
	}
	for i, c := range items {
		row := []any{
			c.ID,
			c.CitizenName,
			c.MobileNumber,
			string(c.Category),
			c.OtherDetails,
			string(c.Status),
			c.CreatedAt.Format(complaint.TimeLayout),
		}
		if err := setRow(f, ComplaintsSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	rows := [][]any{{"Status", "Count"}}
	for _, st := range complaint.Statuses() {
		rows = append(rows, []any{string(st), tally[st]})
	}
	rows = append(rows, []any{"Total", tally.Total()})
	for i, row := range rows {
		if err := setRow(f, SummarySheet, i+1, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("report: %s!%s: %w", sheet, cell, err)
	}
	return nil
}
