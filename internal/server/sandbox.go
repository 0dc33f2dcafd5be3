package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hollowbrook/hamlet/internal/emotion"
)

// The sandbox is a test harness around the pure engine: a single
// in-memory vector callers can pull on, reset, and inspect. The engine
// assumes well-formed enum inputs, so validation happens here.

func (s *Server) handleSandboxApplyPulls(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pulls []emotion.Pull `json:"pulls"`
		Hours float64        `json:"hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Pulls) == 0 {
		writeError(w, http.StatusBadRequest, "at least one pull required")
		return
	}
	for _, p := range req.Pulls {
		if !p.Emotion.Valid() {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown emotion %q", p.Emotion))
			return
		}
		if !p.Intensity.Valid() {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown intensity %q", p.Intensity))
			return
		}
	}

	s.sandboxMu.Lock()
	vec := s.sandbox
	if req.Hours > 0 {
		vec = emotion.ApplyDecay(vec, req.Hours)
	}
	vec = emotion.ApplyPulls(vec, req.Pulls)
	s.sandbox = vec
	s.sandboxMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"vector":         vec,
		"interpretation": emotion.Enrich(emotion.Interpret(vec)),
	})
}

func (s *Server) handleSandboxReset(w http.ResponseWriter, r *http.Request) {
	s.sandboxMu.Lock()
	s.sandbox = emotion.Neutral()
	s.sandboxMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"vector": emotion.Neutral(),
	})
}

// handleSandboxConfig enumerates the engine's static tables so clients
// can build valid requests.
func (s *Server) handleSandboxConfig(w http.ResponseWriter, r *http.Request) {
	intensities := map[emotion.Intensity]float64{}
	for _, i := range emotion.Intensities() {
		intensities[i] = i.Magnitude()
	}

	dyads := map[string][]emotion.Emotion{}
	all := emotion.All()
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if name, ok := emotion.DyadName(all[i], all[j]); ok {
				dyads[name] = []emotion.Emotion{all[i], all[j]}
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"emotions":    all,
		"intensities": intensities,
		"dyads":       dyads,
		"thresholds": map[string]float64{
			"high":           emotion.HighThreshold,
			"medium":         emotion.MediumThreshold,
			"low":            emotion.LowThreshold,
			"proximityRatio": emotion.ProximityRatio,
		},
	})
}
