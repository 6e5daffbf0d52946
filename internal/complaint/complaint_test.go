// internal/complaint/complaint_test.go
//
// 驗證 Complaint 與 storage 格式間的轉換、列舉解析與畫面輸出。

package complaint

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grievance/internal/storage"
)

func sample() Complaint {
	return Complaint{
		ID:           "C1",
		CitizenName:  "Asha",
		MobileNumber: "9876543210",
		Category:     CategoryWater,
		Status:       StatusInProgress,
		CreatedAt:    time.Date(2026, 10, 14, 9, 30, 15, 0, time.Local),
	}
}

// assertSame 逐欄比對；時間以 Equal 比較。
func assertSame(t *testing.T, want, got Complaint) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.CitizenName, got.CitizenName)
	assert.Equal(t, want.MobileNumber, got.MobileNumber)
	assert.Equal(t, want.Category, got.Category)
	assert.Equal(t, want.OtherDetails, got.OtherDetails)
	assert.Equal(t, want.Status, got.Status)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at want=%v got=%v", want.CreatedAt, got.CreatedAt)
}

func TestSerializeFields(t *testing.T) {
	p := sample().Serialize()
	assert.Equal(t, storage.PersistComplaint{
		ID:           "C1",
		CitizenName:  "Asha",
		MobileNumber: "9876543210",
		Category:     "Water",
		Status:       "In Progress",
		CreatedAt:    "2026-10-14 09:30:15",
	}, p)
}

func TestSerializeRoundTrip(t *testing.T) {
	others := sample()
	others.Category = CategoryOthers
	others.OtherDetails = "broken bench in park"
	others.Status = StatusClosed

	for _, c := range []Complaint{sample(), others} {
		got, err := Deserialize(c.Serialize())
		require.NoError(t, err)
		assertSame(t, c, got)
	}
}

func TestDeserializeMissingFields(t *testing.T) {
	full := sample().Serialize()
	tests := []struct {
		field  string
		mutate func(*storage.PersistComplaint)
	}{
		{"id", func(p *storage.PersistComplaint) { p.ID = "" }},
		{"citizen_name", func(p *storage.PersistComplaint) { p.CitizenName = "" }},
		{"mobile_number", func(p *storage.PersistComplaint) { p.MobileNumber = "" }},
		{"id", func(p *storage.PersistComplaint) { p.ID = "   " }},
		{"citizen_name", func(p *storage.PersistComplaint) { p.CitizenName = "\t" }},
		{"mobile_number", func(p *storage.PersistComplaint) { p.MobileNumber = "bad" }},
		{"mobile_number", func(p *storage.PersistComplaint) { p.MobileNumber = "98765 4321" }},
		{"category", func(p *storage.PersistComplaint) { p.Category = "" }},
		{"category", func(p *storage.PersistComplaint) { p.Category = "Garbage" }},
		{"status", func(p *storage.PersistComplaint) { p.Status = "Completed" }},
		{"created_at", func(p *storage.PersistComplaint) { p.CreatedAt = "14/10/2026" }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			p := full
			tt.mutate(&p)
			_, err := Deserialize(p)
			var me *MalformedRecordError
			require.True(t, errors.As(err, &me), "got %v", err)
			assert.Equal(t, tt.field, me.Field)
			assert.Equal(t, -1, me.Index)
		})
	}
}

func TestDeserializeLegacyDefaults(t *testing.T) {
	p := sample().Serialize()
	p.Status = ""
	p.CreatedAt = ""

	now := time.Date(2026, 1, 2, 3, 4, 5, 600, time.Local)
	c, err := deserialize(p, now)
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, c.Status)
	assert.True(t, c.CreatedAt.Equal(now.Truncate(time.Second)))
}

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"Open":        StatusOpen,
		" closed ":    StatusClosed,
		"In Progress": StatusInProgress,
		"InProgress":  StatusInProgress,
		"in progress": StatusInProgress,
	}
	for in, want := range cases {
		got, ok := ParseStatus(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseStatus("Completed")
	assert.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	got, ok := ParseCategory(" electricity")
	assert.True(t, ok)
	assert.Equal(t, CategoryElectricity, got)

	_, ok = ParseCategory("Garbage")
	assert.False(t, ok)
}

func TestEnumerationsOrder(t *testing.T) {
	assert.Equal(t, []Category{"Water", "Electricity", "Road", "Others"}, Categories())
	assert.Equal(t, []Status{"Open", "In Progress", "Closed"}, Statuses())
	for _, c := range Categories() {
		assert.True(t, c.Valid())
	}
	assert.False(t, Status("").Valid())
}

func TestDisplay(t *testing.T) {
	c := sample()
	out := c.Display()
	for _, want := range []string{
		"Complaint ID: C1",
		"Citizen Name: Asha",
		"Mobile Number: 9876543210",
		"Complaint Type: Water",
		"Status: In Progress",
		"Created Date: 2026-10-14 09:30:15",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Details:")

	c.Category = CategoryOthers
	c.OtherDetails = "noise"
	assert.Contains(t, c.Display(), "Details: noise")
}
