package roster_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classlab/helpdesk/pkg/roster"
	"github.com/classlab/helpdesk/pkg/sheets"
)

func rosterServer(t *testing.T, fetches *atomic.Int32, rows [][]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fetches != nil {
			fetches.Add(1)
		}
		json.NewEncoder(w).Encode(sheets.ValueRange{
			Range:          "Groups!A2:A",
			MajorDimension: "ROWS",
			Values:         rows,
		})
	}))
}

func TestService_Known(t *testing.T) {
	t.Parallel()

	t.Run("answers from cached roster", func(t *testing.T) {
		t.Parallel()
		var fetches atomic.Int32
		srv := rosterServer(t, &fetches, [][]string{{"1"}, {"7"}, {"12"}})
		defer srv.Close()

		client := sheets.NewWithClient(srv.Client(), sheets.WithBaseURL(srv.URL))
		svc := roster.New(client, "sheet-id", "Groups", "A2:A")

		known, err := svc.Known(t.Context(), 7)
		require.NoError(t, err)
		assert.True(t, known)

		known, err = svc.Known(t.Context(), 99)
		require.NoError(t, err)
		assert.False(t, known)

		// Both lookups served by a single fetch.
		assert.EqualValues(t, 1, fetches.Load())
		assert.Equal(t, 3, svc.Size())
	})

	t.Run("skips unparseable cells", func(t *testing.T) {
		t.Parallel()
		srv := rosterServer(t, nil, [][]string{{"1"}, {"Grupo"}, {""}, {"2"}})
		defer srv.Close()

		client := sheets.NewWithClient(srv.Client(), sheets.WithBaseURL(srv.URL))
		svc := roster.New(client, "sheet-id", "Groups", "A2:A")

		require.NoError(t, svc.Refresh(t.Context()))
		assert.Equal(t, 2, svc.Size())
	})

	t.Run("propagates fetch failure", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := sheets.NewWithClient(srv.Client(), sheets.WithBaseURL(srv.URL))
		svc := roster.New(client, "sheet-id", "Groups", "A2:A")

		_, err := svc.Known(t.Context(), 1)
		assert.ErrorIs(t, err, sheets.ErrRequestFailed)
	})
}
