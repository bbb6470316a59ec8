package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/simonhull/firebird-suite/lemma"
	"github.com/simonhull/firebird-suite/lemma/internal/algebra"
	"github.com/simonhull/firebird-suite/lemma/internal/assprimes"
	"github.com/simonhull/firebird-suite/lemma/internal/locfree"
	"github.com/simonhull/firebird-suite/lemma/internal/logger"
)

// Theorem describes the statement served at /theorem.
type Theorem struct {
	Name        string   `json:"name"`
	Conditions  []string `json:"conditions"`
	Equivalence bool     `json:"equivalence"`
	References  []string `json:"references"`
}

// VerifyRequest is the body accepted by POST /verify.
type VerifyRequest struct {
	RingProperties struct {
		Noetherian *bool `json:"noetherian"`
	} `json:"ring_properties"`
	ModuleRank int `json:"module_rank"`
}

// VerifyResponse reports the three conditions for the requested module.
type VerifyResponse struct {
	Equivalent bool `json:"equivalent"`
	Conditions struct {
		Projective            bool `json:"projective"`
		LocallyFreeAtPrimes   bool `json:"locally_free_at_primes"`
		LocallyFreeAtMaximals bool `json:"locally_free_at_maximals"`
	} `json:"conditions"`
}

type handler struct {
	ring         func() *algebra.NoetherianRing
	primesModule string
	log          logger.Logger
	now          func() time.Time
}

func (h *handler) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /theorem", h.handleTheorem)
	mux.HandleFunc("POST /verify", h.handleVerify)
	mux.HandleFunc("GET /assprimes", h.handleAssPrimes)
	mux.HandleFunc("GET /health", h.handleHealth)
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"project":   "Noetherian Module Equivalence API",
		"version":   lemma.Version,
		"endpoints": []string{"/theorem", "/verify", "/assprimes", "/health"},
	})
}

func (h *handler) handleTheorem(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, Theorem{
		Name:        "Noetherian Module Equivalence",
		Conditions:  locfree.Conditions,
		Equivalence: true,
		References:  []string{"Serre, 1955", "Kaplansky, 1958", "Matsumura, 1986"},
	})
}

// handleVerify runs the equivalence check on the configured ring with a
// module of the requested rank. The module counts as projective iff its rank
// is positive.
func (h *handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validateVerify(req); err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	module := algebra.NewFinitelyGeneratedModule("P", req.ModuleRank)
	module.SetProjective(req.ModuleRank > 0)
	res := locfree.NewVerifier(h.ring(), module).Verify()

	h.log.Debug("verified module", logger.F("rank", req.ModuleRank), logger.F("equivalent", res.Equivalent))

	var resp VerifyResponse
	resp.Equivalent = res.Equivalent
	resp.Conditions.Projective = res.Projective
	resp.Conditions.LocallyFreeAtPrimes = res.FreeAtPrimes
	resp.Conditions.LocallyFreeAtMaximals = res.FreeAtMaximals
	h.writeJSON(w, http.StatusOK, resp)
}

func validateVerify(req VerifyRequest) error {
	switch {
	case req.RingProperties.Noetherian == nil:
		return errors.New("ring_properties.noetherian is required")
	case !*req.RingProperties.Noetherian:
		return errors.New("the equivalence only applies to Noetherian rings")
	}
	return nil
}

func (h *handler) handleAssPrimes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, assprimes.NewModule(h.primesModule).Verify())
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("writing response failed", logger.F("status", status), logger.F("error", err))
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
