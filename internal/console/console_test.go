// internal/console/console_test.go
//
// 以字串腳本驅動選單，驗證提示重試、Store 呼叫與輸出訊息。
package console

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grievance/internal/complaint"
)

func newStore(t *testing.T, path string) *complaint.Store {
	t.Helper()
	s := complaint.NewStore(path, complaint.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, s.Load())
	return s
}

// run 以 script 作為輸入執行選單，回傳輸出內容。
func run(t *testing.T, s *complaint.Store, script string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(s, strings.NewReader(script), &out).Run())
	return out.String()
}

func seed(t *testing.T, s *complaint.Store) {
	t.Helper()
	_, err := s.Add(complaint.NewComplaint{ID: "C1", CitizenName: "Asha", MobileNumber: "9876543210", Category: complaint.CategoryWater})
	require.NoError(t, err)
}

func TestAddWithRetriesThenExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complaints.json")
	s := newStore(t, path)

	script := strings.Join([]string{
		"1",          // menu: add
		"",           // empty id
		"C1",         // id
		"Asha",       // name
		"123",        // bad mobile
		"9876543210", // mobile
		"9",          // bad type
		"1",          // Water
		"",           // pause
		"6",          // exit
	}, "\n") + "\n"
	out := run(t, s, script)

	assert.Contains(t, out, "[WARNING] Complaint ID cannot be empty. Please try again.")
	assert.Contains(t, out, "[WARNING] Invalid mobile number. Please enter exactly 10 digits.")
	assert.Contains(t, out, "[WARNING] Invalid choice. Please select a number between 1 and 4.")
	assert.Contains(t, out, "[OK] Complaint added successfully!")
	assert.Contains(t, out, "Complaint ID: C1")
	assert.Contains(t, out, "Status: Open")
	assert.Contains(t, out, "Thank you for using the Grievance Management System!")

	reloaded := newStore(t, path)
	got, ok := reloaded.FindByID("C1")
	require.True(t, ok)
	assert.Equal(t, complaint.CategoryWater, got.Category)
	assert.Equal(t, "Asha", got.CitizenName)
}

func TestAddRejectsDuplicateID(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "complaints.json"))
	seed(t, s)

	out := run(t, s, "1\nC1\nC2\nRavi\n9123456780\n3\n\n6\n")
	assert.Contains(t, out, "[WARNING] This Complaint ID already exists. Please use a different ID.")
	assert.Equal(t, 2, s.Len())
	got, ok := s.FindByID("C2")
	require.True(t, ok)
	assert.Equal(t, complaint.CategoryRoad, got.Category)
}

func TestAddOthersAsksForDetails(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "complaints.json"))

	out := run(t, s, "1\nC2\nRavi\n9123456780\n4\n\nstray cattle\n\n6\n")
	assert.Contains(t, out, "[WARNING] Please describe your complaint.")
	got, ok := s.FindByID("C2")
	require.True(t, ok)
	assert.Equal(t, complaint.CategoryOthers, got.Category)
	assert.Equal(t, "stray cattle", got.OtherDetails)
}

func TestAddReportsUnsavedChange(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "missing-dir", "complaints.json"))

	out := run(t, s, "1\nC1\nAsha\n9876543210\n2\n\n6\n")
	assert.Contains(t, out, "[WARNING] Complaint added but could not save to file.")
	assert.Contains(t, out, "[ERROR] Error saving complaints")
	assert.Equal(t, 1, s.Len())
}

func TestUpdateSearchSummary(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "complaints.json"))
	seed(t, s)

	out := run(t, s, "3\nC1\n7\n3\n\n4\nC1\n\n5\n\n6\n")
	assert.Contains(t, out, "Current Status: Open")
	assert.Contains(t, out, "Invalid choice. Please select a number between 1 and 3.")
	assert.Contains(t, out, "[OK] Status updated successfully!")
	assert.Contains(t, out, "Old Status: Open")
	assert.Contains(t, out, "New Status: Closed")
	assert.Contains(t, out, "[OK] Complaint Found:")
	assert.Contains(t, out, "Status: Closed")
	assert.Contains(t, out, "Status-wise Complaint Count:")

	got, _ := s.FindByID("C1")
	assert.Equal(t, complaint.StatusClosed, got.Status)
}

func TestUpdateAndSearchNotFound(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "complaints.json"))
	seed(t, s)

	out := run(t, s, "3\nC9\n\n4\nC9\n\n6\n")
	assert.Equal(t, 2, strings.Count(out, "[WARNING] Complaint with ID 'C9' not found."))
}

func TestEmptyStoreMessages(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "complaints.json"))

	out := run(t, s, "2\n\n3\n\n4\n\n5\n\n6\n")
	assert.Equal(t, 3, strings.Count(out, "No complaints found. The system is empty."))
	assert.Contains(t, out, "No complaints found. Please add a complaint first.")
}

func TestViewAll(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "complaints.json"))
	seed(t, s)

	out := run(t, s, "2\n\n6\n")
	assert.Contains(t, out, "Total Complaints: 1")
	assert.Contains(t, out, "Citizen Name: Asha")
}

func TestInvalidMenuChoice(t *testing.T) {
	s := newStore(t, filepath.Join(t.TempDir(), "complaints.json"))
	out := run(t, s, "x\n\n6\n")
	assert.Contains(t, out, "[WARNING] Invalid choice. Please select a number between 1 and 6.")
}

func TestEOFSavesAndReturns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complaints.json")
	s := newStore(t, path)
	seed(t, s)
	require.NoError(t, os.Remove(path))

	// 輸入在填寫姓名時中斷
	run(t, s, "1\nC5\n")

	_, err := os.Stat(path)
	require.NoError(t, err, "store should be saved on end of input")
	assert.Equal(t, 1, newStore(t, path).Len())
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, complaint.Tally{complaint.StatusOpen: 2, complaint.StatusInProgress: 1, complaint.StatusClosed: 0})
	out := buf.String()
	assert.Contains(t, out, "Open:         2")
	assert.Contains(t, out, "In Progress:  1")
	assert.Contains(t, out, "Closed:       0")
	assert.Contains(t, out, "Total:        3")
}
