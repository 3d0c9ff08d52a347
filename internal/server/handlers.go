package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kurobon/gitdojo/backend/internal/git"
	"github.com/kurobon/gitdojo/backend/internal/mirror"
	"github.com/kurobon/gitdojo/backend/internal/session"
)

type sessionRequest struct {
	SessionID string `json:"sessionId"`
}

type commandRequest struct {
	SessionID string `json:"sessionId"`
	Command   string `json:"command"`
}

type sessionResponse struct {
	SessionID string             `json:"sessionId"`
	State     *session.GraphView `json:"state"`
}

type commandResponse struct {
	Output  string             `json:"output"`
	Success bool               `json:"success"`
	State   *session.GraphView `json:"state"`
}

type stateResponse struct {
	State *session.GraphView `json:"state"`
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "pong"})
}

func (s *Server) handleInitSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}

	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := s.Manager.Create(r.Context(), req.SessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		SessionID: sess.ID,
		State:     session.BuildGraphView(sess.Snapshot()),
	})
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}

	var req commandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("sessionId required"))
		return
	}

	log.Printf("command: session=%s input=%q", req.SessionID, req.Command)

	res, err := s.Manager.Execute(r.Context(), req.SessionID, req.Command)
	if err != nil {
		sessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, commandResponse{
		Output:  res.Output,
		Success: res.Success,
		State:   session.BuildGraphView(res.Snapshot),
	})
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}

	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := s.Manager.Undo(r.Context(), req.SessionID)
	if err != nil {
		sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: session.BuildGraphView(sess.Snapshot())})
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}

	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := s.Manager.Redo(r.Context(), req.SessionID)
	if err != nil {
		sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: session.BuildGraphView(sess.Snapshot())})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}

	entries, err := s.Manager.History(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]session.JournalEntry{"entries": entries})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}

	sess, err := s.Manager.Get(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.BuildGraphView(sess.Snapshot()))
}

func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	verbs := git.GetSupportedCommands()
	out := make(map[string]string, len(verbs))
	for _, verb := range verbs {
		help, err := git.GetCommandHelp(verb)
		if err != nil {
			continue
		}
		out[verb] = help
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}

	sess, err := s.Manager.Get(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		sessionError(w, err)
		return
	}

	view, err := mirror.ExportView(sess.Snapshot())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
