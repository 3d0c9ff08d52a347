// Package server exposes the sandbox over HTTP: session lifecycle, command
// execution, undo/redo, the graph view, lesson packs and the real-git
// export. Engine failures are not HTTP failures; they come back as 200 with
// success=false because a rejected git command is the learning material,
// not a server fault.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/kurobon/gitdojo/backend/internal/lesson"
	"github.com/kurobon/gitdojo/backend/internal/session"
)

type Server struct {
	Manager *session.Manager
	Lessons *lesson.Loader

	mux *http.ServeMux
}

func NewServer(manager *session.Manager, lessons *lesson.Loader) *Server {
	s := &Server{
		Manager: manager,
		Lessons: lessons,
		mux:     http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/ping", s.handlePing)
	s.mux.HandleFunc("/api/session/init", s.handleInitSession)
	s.mux.HandleFunc("/api/command", s.handleCommand)
	s.mux.HandleFunc("/api/session/undo", s.handleUndo)
	s.mux.HandleFunc("/api/session/redo", s.handleRedo)
	s.mux.HandleFunc("/api/session/history", s.handleHistory)
	s.mux.HandleFunc("/api/state", s.handleState)
	s.mux.HandleFunc("/api/commands", s.handleCommands)
	s.mux.HandleFunc("/api/lessons", s.handleListLessons)
	s.mux.HandleFunc("/api/lessons/start", s.handleStartLesson)
	s.mux.HandleFunc("/api/lessons/verify", s.handleVerifyLesson)
	s.mux.HandleFunc("/api/export", s.handleExport)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL.Path)
	s.mux.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// sessionError maps manager errors onto status codes: unknown sessions are
// 404, empty undo/redo stacks are conflicts, everything else is a server
// fault.
func sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, session.ErrNothingToUndo), errors.Is(err, session.ErrNothingToRedo):
		writeError(w, http.StatusConflict, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

// decodeJSON fills v from the request body. An empty body is fine; the
// handlers validate required fields themselves.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid request body")
	}
	return nil
}
