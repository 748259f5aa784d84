package get_schedules

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	t.Run("full query", func(t *testing.T) {
		query := url.Values{
			"startDate":       {"2025-06-01"},
			"endDate":         {"2025-06-07"},
			"branchId":        {"2"},
			"courtId":         {"3"},
			"ageBracketId":    {"4"},
			"includeInactive": {"true"},
		}

		req, err := ToServiceRequest(query)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), req.StartDate)
		assert.Equal(t, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), req.EndDate)
		require.NotNil(t, req.BranchID)
		assert.Equal(t, int64(2), *req.BranchID)
		require.NotNil(t, req.CourtID)
		assert.Equal(t, int64(3), *req.CourtID)
		require.NotNil(t, req.AgeBracketID)
		assert.Equal(t, int64(4), *req.AgeBracketID)
		assert.True(t, req.IncludeInactive)
	})

	t.Run("All and empty mean no filter", func(t *testing.T) {
		query := url.Values{
			"startDate": {"2025-06-01"},
			"endDate":   {"2025-06-07"},
			"branchId":  {"All"},
			"courtId":   {""},
		}

		req, err := ToServiceRequest(query)

		require.NoError(t, err)
		assert.Nil(t, req.BranchID)
		assert.Nil(t, req.CourtID)
		assert.Nil(t, req.AgeBracketID)
		assert.False(t, req.IncludeInactive)
	})

	t.Run("missing dates rejected", func(t *testing.T) {
		_, err := ToServiceRequest(url.Values{"endDate": {"2025-06-07"}})
		assert.Error(t, err)

		_, err = ToServiceRequest(url.Values{"startDate": {"2025-06-01"}})
		assert.Error(t, err)
	})

	t.Run("malformed values rejected", func(t *testing.T) {
		base := url.Values{
			"startDate": {"2025-06-01"},
			"endDate":   {"2025-06-07"},
		}

		bad := url.Values{}
		for k, v := range base {
			bad[k] = v
		}
		bad.Set("startDate", "01.06.2025")
		_, err := ToServiceRequest(bad)
		assert.Error(t, err)

		bad = url.Values{}
		for k, v := range base {
			bad[k] = v
		}
		bad.Set("courtId", "abc")
		_, err = ToServiceRequest(bad)
		assert.Error(t, err)

		bad.Set("courtId", "-1")
		_, err = ToServiceRequest(bad)
		assert.Error(t, err)
	})
}
