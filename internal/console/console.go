// internal/console/console.go

// Package console 提供互動式文字選單，作為 complaint.Store 的終端機前端。
// 每個選項只負責：
//  1. 逐欄讀取輸入並在格式錯誤時重新提示
//  2. 呼叫 Store 執行操作
//  3. 將結果（含「已變更但未存檔」）轉成使用者訊息
//
// 輸入輸出皆為 io.Reader / io.Writer，可由腳本或測試驅動。
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grievance/internal/complaint"
)

const rule = "=================================================="

// Console 為選單迴圈的狀態。
type Console struct {
	store *complaint.Store
	in    *bufio.Scanner
	out   io.Writer

	title lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
}

// New 建立選單；樣式依 out 的終端機能力決定（非 TTY 時輸出純文字）。
func New(store *complaint.Store, in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("10")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("11")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Run 執行主選單直到使用者選擇離開或輸入結束；兩種情況都會先存檔。
func (c *Console) Run() error {
	c.banner("Welcome to Citizen Grievance Management System")

	for {
		c.menu()
		choice, err := c.prompt("\nEnter your choice (1-6): ")
		if err != nil {
			return c.finish(err)
		}

		switch choice {
		case "1":
			err = c.addComplaint()
		case "2":
			err = c.viewAll()
		case "3":
			err = c.updateStatus()
		case "4":
			err = c.search()
		case "5":
			err = c.summary()
		case "6":
			c.banner("Thank you for using the Grievance Management System!")
			return c.save()
		default:
			c.warnf("\n[WARNING] Invalid choice. Please select a number between 1 and 6.")
			err = c.pause()
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

// finish 處理輸入結束：存檔後正常結束；其他讀取錯誤原樣回傳。
func (c *Console) finish(err error) error {
	if !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(c.out)
	return c.save()
}

func (c *Console) save() error {
	if err := c.store.Save(); err != nil {
		c.failf("[ERROR] Error saving complaints: %v", err)
	}
	return nil
}

func (c *Console) menu() {
	c.banner("CITIZEN GRIEVANCE MANAGEMENT SYSTEM")
	fmt.Fprintln(c.out, "1. Add a New Complaint")
	fmt.Fprintln(c.out, "2. View All Complaints")
	fmt.Fprintln(c.out, "3. Update Complaint Status")
	fmt.Fprintln(c.out, "4. Search Complaint by ID")
	fmt.Fprintln(c.out, "5. View Status Summary")
	fmt.Fprintln(c.out, "6. Exit")
	fmt.Fprintln(c.out, rule)
}

func (c *Console) banner(text string) {
	fmt.Fprintln(c.out, "\n"+rule)
	fmt.Fprintln(c.out, c.title.Render(text))
	fmt.Fprintln(c.out, rule)
}

func (c *Console) okf(format string, args ...any) {
	fmt.Fprintln(c.out, c.ok.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) warnf(format string, args ...any) {
	fmt.Fprintln(c.out, c.warn.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) failf(format string, args ...any) {
	fmt.Fprintln(c.out, c.fail.Render(fmt.Sprintf(format, args...)))
}

// prompt 輸出提示並讀取一行（已去除前後空白）。輸入結束時回傳 io.EOF。
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) pause() error {
	_, err := c.prompt("\nPress Enter to continue...")
	return err
}

// choose 列出選項並重複提示，直到輸入 1..len(labels) 之間的數字。
func (c *Console) choose(header, label string, labels []string) (int, error) {
	fmt.Fprintln(c.out, header)
	for i, l := range labels {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, l)
	}
	for {
		in, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(in)
		if err == nil && n >= 1 && n <= len(labels) {
			return n - 1, nil
		}
		c.warnf("[WARNING] Invalid choice. Please select a number between 1 and %d.", len(labels))
	}
}
