package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hollowbrook/hamlet/internal/emotion"
)

func applyPulls(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/sandbox/apply-pulls", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestSandboxApplyPulls(t *testing.T) {
	srv := testServer(t)

	w := applyPulls(t, srv, `{"pulls":[{"emotion":"joy","intensity":"medium"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Vector         emotion.Vector    `json:"vector"`
		Interpretation emotion.Described `json:"interpretation"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if resp.Vector.JoySadness != 0.25 {
		t.Errorf("JoySadness = %f, want 0.25", resp.Vector.JoySadness)
	}
	if resp.Interpretation.Emotion != "joy" {
		t.Errorf("interpretation = %s, want joy", resp.Interpretation.Emotion)
	}
}

func TestSandboxStateAccumulates(t *testing.T) {
	srv := testServer(t)

	applyPulls(t, srv, `{"pulls":[{"emotion":"fear","intensity":"large"}]}`)
	w := applyPulls(t, srv, `{"pulls":[{"emotion":"fear","intensity":"large"}]}`)

	var resp struct {
		Vector emotion.Vector `json:"vector"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	// Second pull lands on an already-loaded axis: moved further, but
	// dampened by axis resistance.
	if resp.Vector.AngerFear >= -0.4 {
		t.Errorf("AngerFear = %f, want below -0.4 after two pulls", resp.Vector.AngerFear)
	}
	if resp.Vector.AngerFear < -0.8 {
		t.Errorf("AngerFear = %f, resistance should dampen the second pull", resp.Vector.AngerFear)
	}
}

func TestSandboxApplyPullsWithDecay(t *testing.T) {
	srv := testServer(t)

	applyPulls(t, srv, `{"pulls":[{"emotion":"sadness","intensity":"medium"}]}`)

	// 4 hours erases a 0.25 axis before the new pull lands.
	w := applyPulls(t, srv, `{"pulls":[{"emotion":"joy","intensity":"medium"}],"hours":4}`)

	var resp struct {
		Vector emotion.Vector `json:"vector"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Vector.JoySadness != 0.25 {
		t.Errorf("JoySadness = %f, want 0.25 (prior sadness decayed away)", resp.Vector.JoySadness)
	}
}

func TestSandboxValidation(t *testing.T) {
	srv := testServer(t)

	cases := []string{
		`{"pulls":[]}`,
		`{"pulls":[{"emotion":"bliss","intensity":"medium"}]}`,
		`{"pulls":[{"emotion":"joy","intensity":"colossal"}]}`,
		`not json`,
	}
	for _, body := range cases {
		if w := applyPulls(t, srv, body); w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want %d", body, w.Code, http.StatusBadRequest)
		}
	}
}

func TestSandboxReset(t *testing.T) {
	srv := testServer(t)

	applyPulls(t, srv, `{"pulls":[{"emotion":"anger","intensity":"huge"}]}`)

	req := httptest.NewRequest("POST", "/api/sandbox/reset", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("reset status = %d", w.Code)
	}

	w = applyPulls(t, srv, `{"pulls":[{"emotion":"joy","intensity":"medium"}]}`)
	var resp struct {
		Vector emotion.Vector `json:"vector"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Vector.AngerFear != 0 {
		t.Errorf("AngerFear = %f, want 0 after reset", resp.Vector.AngerFear)
	}
}

func TestSandboxConfig(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/api/sandbox/config", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Emotions    []emotion.Emotion            `json:"emotions"`
		Intensities map[string]float64           `json:"intensities"`
		Dyads       map[string][]emotion.Emotion `json:"dyads"`
		Thresholds  map[string]float64           `json:"thresholds"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if len(resp.Emotions) != 8 {
		t.Errorf("emotions = %d, want 8", len(resp.Emotions))
	}
	if len(resp.Intensities) != 5 {
		t.Errorf("intensities = %d, want 5", len(resp.Intensities))
	}
	if len(resp.Dyads) != 24 {
		t.Errorf("dyads = %d, want 24", len(resp.Dyads))
	}
	if resp.Thresholds["high"] != 0.80 {
		t.Errorf("high threshold = %f, want 0.80", resp.Thresholds["high"])
	}
}
