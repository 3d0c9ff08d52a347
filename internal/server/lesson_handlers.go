package server

import (
	"fmt"
	"net/http"

	"github.com/kurobon/gitdojo/backend/internal/lesson"
	"github.com/kurobon/gitdojo/backend/internal/session"
)

type lessonRequest struct {
	SessionID string `json:"sessionId"`
	LessonID  string `json:"lessonId"`
}

type startLessonResponse struct {
	State *session.GraphView `json:"state"`
	Task  string             `json:"task"`
}

func (s *Server) handleListLessons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Lessons.List())
}

// handleStartLesson resets the session and replays the lesson's setup
// commands so the learner begins from the lesson's starting state.
func (s *Server) handleStartLesson(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}

	var req lessonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	l, ok := s.Lessons.Get(req.LessonID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("lesson %q not found", req.LessonID))
		return
	}

	sess, err := s.Manager.Replay(r.Context(), req.SessionID, l.Setup)
	if err != nil {
		sessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, startLessonResponse{
		State: session.BuildGraphView(sess.Snapshot()),
		Task:  l.Task,
	})
}

func (s *Server) handleVerifyLesson(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}

	var req lessonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	l, ok := s.Lessons.Get(req.LessonID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("lesson %q not found", req.LessonID))
		return
	}

	sess, err := s.Manager.Get(r.Context(), req.SessionID)
	if err != nil {
		sessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lesson.Evaluate(l, sess.Snapshot()))
}
