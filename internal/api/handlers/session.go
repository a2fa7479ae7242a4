package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Harshitk-cp/ellipsis/internal/domain"
	"github.com/Harshitk-cp/ellipsis/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	svc *service.SessionService
}

func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

type sessionResponse struct {
	ID             string               `json:"id"`
	State          domain.StateSnapshot `json:"state"`
	TurnCount      int                  `json:"turn_count"`
	CreatedAt      string               `json:"created_at"`
	LastActivityAt string               `json:"last_activity_at"`
}

func toSessionResponse(info domain.SessionInfo) sessionResponse {
	return sessionResponse{
		ID:             info.ID.String(),
		State:          info.State,
		TurnCount:      info.TurnCount,
		CreatedAt:      info.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		LastActivityAt: info.LastActivityAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Create(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(session.Info()))
}

func (h *SessionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	info, err := h.svc.Describe(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get session")
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(info))
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reset clears turn history and replaces the dialogue state with a
// fresh instance, keeping the session ID.
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Reset(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to reset session")
		return
	}

	info, err := h.svc.Describe(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get session")
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(info))
}

type processTurnRequest struct {
	Text string `json:"text"`
}

func (h *SessionHandler) ProcessTurn(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var req processTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.ProcessTurn(r.Context(), id, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTextEmpty):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to process turn")
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type historyResponse struct {
	SessionID string              `json:"session_id"`
	Turns     []domain.TurnResult `json:"turns"`
}

func (h *SessionHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	turns, err := h.svc.History(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get history")
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{SessionID: id.String(), Turns: turns})
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}
