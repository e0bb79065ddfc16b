package audit_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classlab/helpdesk/pkg/audit"
	"github.com/classlab/helpdesk/pkg/sheets"
)

func TestSheetsStorage_Store(t *testing.T) {
	t.Parallel()

	var gotBody map[string][][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := sheets.NewWithClient(srv.Client(), sheets.WithBaseURL(srv.URL))
	storage := audit.NewSheetsStorage(client, "sheet-id", "Log")

	event := audit.Event{
		ID:        "evt-1",
		Action:    audit.ActionServed,
		Group:     7,
		Channel:   887022804183175188,
		Helper:    "Ivan",
		CreatedAt: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}
	require.NoError(t, storage.Store(t.Context(), event))

	require.Len(t, gotBody["values"], 1)
	assert.Equal(t, []string{"2024-03-15 10:30:00", "7", "served", "Ivan"}, gotBody["values"][0])
}

func TestSlogStorage_Store(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { audit.NewSlogStorage(nil) })
}
