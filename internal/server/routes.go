package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hollowbrook/hamlet/internal/activity"
	"github.com/hollowbrook/hamlet/internal/store"
)

func (s *Server) handleCreateNPC(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}

	npc, err := s.db.CreateNPC(req.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, npc)
}

func (s *Server) handleListNPCs(w http.ResponseWriter, r *http.Request) {
	npcs, err := s.db.ListNPCs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if npcs == nil {
		npcs = []store.NPC{}
	}
	writeJSON(w, http.StatusOK, npcs)
}

func (s *Server) handleGetNPC(w http.ResponseWriter, r *http.Request) {
	npc, err := s.db.GetNPC(chi.URLParam(r, "npcID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if npc == nil {
		writeError(w, http.StatusNotFound, "npc not found")
		return
	}
	writeJSON(w, http.StatusOK, npc)
}

func (s *Server) handleNPCMood(w http.ResponseWriter, r *http.Request) {
	mood, err := s.activities.Mood(chi.URLParam(r, "npcID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, mood)
}

func (s *Server) handlePerformActivity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Activity string `json:"activity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Activity == "" {
		writeError(w, http.StatusBadRequest, "activity required")
		return
	}

	result, err := s.activities.Perform(chi.URLParam(r, "npcID"), req.Activity)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleResetNPC(w http.ResponseWriter, r *http.Request) {
	npcID := chi.URLParam(r, "npcID")
	if err := s.db.ResetNPCEmotion(npcID, time.Now().UnixMilli()); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, activity.Catalog())
}
