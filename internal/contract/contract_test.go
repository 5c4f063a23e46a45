package contract

import (
	"testing"
	"time"

	"github.com/alexanderramin/attendance/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummaryResponse_JSON(t *testing.T) {
	resp := NewDailySummaryResponse(&domain.DailySummary{
		Attended: true,
		Duration: domain.Duration{Hours: 6, Minutes: 75},
	})

	out, err := MarshalIndent(resp)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"attended\": true,\n    \"duration\": \"6:75\"\n}", string(out))
}

func TestDailySummaryResponse_NotAttended(t *testing.T) {
	out, err := MarshalIndent(NewDailySummaryResponse(&domain.DailySummary{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"attended": false, "duration": "0:0"}`, string(out))
}

func TestHistoryResponse_FormatsInstantsInUTC(t *testing.T) {
	cairo := time.FixedZone("EET", 2*60*60)

	h := &domain.AttendanceHistory{
		Employee: "EMP01",
		Days: []domain.HistoryEntry{{
			Day: "2020-04-01",
			Actions: []domain.HistoryAction{
				{Kind: domain.ActionCheckIn, Instant: time.Date(2020, 4, 1, 7, 0, 0, 0, time.UTC)},
				{Kind: domain.ActionCheckOut, Instant: time.Date(2020, 4, 1, 17, 0, 0, 0, cairo)},
			},
		}},
	}

	out, err := MarshalIndent(NewHistoryResponse(h))
	require.NoError(t, err)
	assert.JSONEq(t, `{"days": [{"date": "2020-04-01", "actions": [
		{"action": "CheckIn", "time": "2020-04-01T07:00:00+00:00"},
		{"action": "CheckOut", "time": "2020-04-01T15:00:00+00:00"}
	]}]}`, string(out))
}

func TestHistoryResponse_EmptyListsAreArrays(t *testing.T) {
	out, err := MarshalIndent(NewHistoryResponse(&domain.AttendanceHistory{}))
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"days\": []\n}", string(out))

	out, err = MarshalIndent(NewHistoryResponse(&domain.AttendanceHistory{
		Days: []domain.HistoryEntry{{Day: "2020-04-01"}},
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"days": [{"date": "2020-04-01", "actions": []}]}`, string(out))
}
