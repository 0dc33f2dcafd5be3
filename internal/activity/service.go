package activity

import (
	"fmt"
	"time"

	"github.com/hollowbrook/hamlet/internal/emotion"
	"github.com/hollowbrook/hamlet/internal/store"
)

// Service runs activities against persisted NPC state. The engine calls
// are pure; this layer owns the read-modify-write cycle, so callers that
// need serialization per NPC should arrange it outside (single writer or
// a transaction).
type Service struct {
	db  *store.DB
	src emotion.Source
	now func() time.Time
}

// NewService creates a Service using the given random source.
func NewService(db *store.DB, src emotion.Source) *Service {
	return &Service{db: db, src: src, now: time.Now}
}

// Result is everything one activity execution produced.
type Result struct {
	Activity string              `json:"activity"`
	Tier     emotion.OutcomeTier `json:"tier"`
	Pulls    []emotion.Pull      `json:"pulls"`
	Vector   emotion.Vector      `json:"vector"`
	Mood     emotion.Described   `json:"mood"`
}

// Perform runs one activity for an NPC: decay the stored vector by
// elapsed time, roll the outcome, generate pulls, apply them, persist
// the new vector, and interpret it for display.
func (s *Service) Perform(npcID, activityID string) (*Result, error) {
	act, ok := Lookup(activityID)
	if !ok {
		return nil, fmt.Errorf("unknown activity %q", activityID)
	}
	if !act.Profile.Valid() {
		return nil, fmt.Errorf("activity %q has no emotion profile", activityID)
	}

	npc, err := s.db.GetNPC(npcID)
	if err != nil {
		return nil, err
	}
	if npc == nil {
		return nil, fmt.Errorf("npc %s not found", npcID)
	}

	now := s.now()
	hours := float64(now.UnixMilli()-npc.EmotionUpdatedAt) / float64(time.Hour/time.Millisecond)

	vec := emotion.ApplyDecay(npc.Emotion, hours)
	tier := RollTier(s.src, act.Weights)
	pulls := emotion.GeneratePulls(s.src, act.Profile, tier)
	vec = emotion.ApplyPulls(vec, pulls)

	if err := s.db.UpdateNPCEmotion(npcID, vec, now.UnixMilli()); err != nil {
		return nil, err
	}

	return &Result{
		Activity: act.ID,
		Tier:     tier,
		Pulls:    pulls,
		Vector:   vec,
		Mood:     emotion.Enrich(emotion.Interpret(vec)),
	}, nil
}

// Mood reads an NPC's current mood: the stored vector decayed to now and
// interpreted. Read-only; the decayed vector is not written back.
func (s *Service) Mood(npcID string) (*emotion.Described, error) {
	npc, err := s.db.GetNPC(npcID)
	if err != nil {
		return nil, err
	}
	if npc == nil {
		return nil, fmt.Errorf("npc %s not found", npcID)
	}

	hours := float64(s.now().UnixMilli()-npc.EmotionUpdatedAt) / float64(time.Hour/time.Millisecond)
	vec := emotion.ApplyDecay(npc.Emotion, hours)

	mood := emotion.Enrich(emotion.Interpret(vec))
	return &mood, nil
}
