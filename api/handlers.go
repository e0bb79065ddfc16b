package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/classlab/helpdesk/pkg/audit"
	"github.com/classlab/helpdesk/pkg/helpqueue"
	"github.com/classlab/helpdesk/pkg/logger"
)

type handlers struct {
	queue  *helpqueue.Queue
	audit  audit.Logger
	roster RosterChecker
	log    *slog.Logger
}

// RosterChecker reports roster membership; satisfied by *roster.Service.
type RosterChecker interface {
	Known(ctx context.Context, group uint16) (bool, error)
}

type enqueueRequest struct {
	Group        uint16 `json:"group"`
	VoiceChannel uint64 `json:"voice_channel"`
}

type nextRequest struct {
	Helper string `json:"helper"`
}

type requestPayload struct {
	Group        uint16 `json:"group"`
	VoiceChannel uint64 `json:"voice_channel"`
}

type queueListPayload struct {
	Groups []helpqueue.Group `json:"groups"`
	Count  int               `json:"count"`
}

type queueCountPayload struct {
	Count int  `json:"count"`
	Empty bool `json:"empty"`
}

// enqueueHelp handles POST /help.
func (h *handlers) enqueueHelp(w http.ResponseWriter, r *http.Request) {
	var req enqueueRequest
	if err := decodeJSON(r, &req, false); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	// Roster lookups fail open: correctness of the queue never depends on
	// the spreadsheet being reachable.
	if h.roster != nil {
		known, err := h.roster.Known(r.Context(), req.Group)
		switch {
		case err != nil:
			h.log.WarnContext(r.Context(), "roster lookup failed, allowing request",
				logger.Error(err), logger.GroupNumber(req.Group))
		case !known:
			respondError(w, r, h.log, errUnknownGroup)
			return
		}
	}

	if err := h.queue.Enqueue(helpqueue.Group(req.Group), helpqueue.Channel(req.VoiceChannel)); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "help requested",
		logger.GroupNumber(req.Group), logger.Channel(req.VoiceChannel))
	respondJSON(w, http.StatusCreated, requestPayload{Group: req.Group, VoiceChannel: req.VoiceChannel})
}

// nextHelp handles POST /help/next.
func (h *handlers) nextHelp(w http.ResponseWriter, r *http.Request) {
	var req nextRequest
	if err := decodeJSON(r, &req, true); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	group, channel, err := h.queue.Next()
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "help served",
		logger.GroupNumber(uint16(group)), logger.Helper(req.Helper))
	h.recordAudit(r.Context(), audit.ActionServed,
		audit.WithGroup(uint16(group)),
		audit.WithChannel(uint64(channel)),
		audit.WithHelper(req.Helper),
	)

	respondJSON(w, http.StatusOK, requestPayload{Group: uint16(group), VoiceChannel: uint64(channel)})
}

// dismissHelp handles DELETE /help/{group}.
func (h *handlers) dismissHelp(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "group")
	n, err := strconv.ParseUint(param, 10, 16)
	if err != nil {
		respondError(w, r, h.log, errInvalidGroupParam)
		return
	}
	group := helpqueue.Group(n)

	channel, err := h.queue.Dismiss(group)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "help dismissed", logger.GroupNumber(uint16(group)))
	h.recordAudit(r.Context(), audit.ActionDismissed,
		audit.WithGroup(uint16(group)),
		audit.WithChannel(uint64(channel)),
	)

	respondJSON(w, http.StatusOK, requestPayload{Group: uint16(group), VoiceChannel: uint64(channel)})
}

// clearQueue handles DELETE /help.
func (h *handlers) clearQueue(w http.ResponseWriter, r *http.Request) {
	if err := h.queue.Clear(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "help queue cleared")
	h.recordAudit(r.Context(), audit.ActionCleared)

	w.WriteHeader(http.StatusNoContent)
}

// listQueue handles GET /help.
func (h *handlers) listQueue(w http.ResponseWriter, r *http.Request) {
	groups, err := h.queue.Sorted()
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if groups == nil {
		groups = []helpqueue.Group{}
	}
	respondJSON(w, http.StatusOK, queueListPayload{Groups: groups, Count: len(groups)})
}

// queueCount handles GET /help/count.
func (h *handlers) queueCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.queue.Len()
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, queueCountPayload{Count: n, Empty: n == 0})
}

// recordAudit is best-effort: failures are logged and never surfaced to the
// client or rolled back against the queue.
func (h *handlers) recordAudit(ctx context.Context, action audit.Action, opts ...audit.EventOption) {
	if h.audit == nil {
		return
	}
	if err := h.audit.Log(ctx, action, opts...); err != nil {
		h.log.WarnContext(ctx, "failed to record audit event",
			logger.Error(err), logger.Action(string(action)))
	}
}
