package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/calvinwijaya/blackjack-trainer/internal/game"
	"github.com/calvinwijaya/blackjack-trainer/internal/store"
	"github.com/calvinwijaya/blackjack-trainer/internal/strategy"
	"github.com/calvinwijaya/blackjack-trainer/internal/trainer"
	"github.com/gorilla/mux"
)

// Handlers contains all the API handlers
type Handlers struct {
	store      store.Store
	hub        *Hub
	newSession func() *trainer.Session
}

// NewHandlers creates a new instance of Handlers
func NewHandlers(store store.Store, hub *Hub) *Handlers {
	return &Handlers{
		store:      store,
		hub:        hub,
		newSession: trainer.NewSession,
	}
}

// RegisterRoutes registers all API routes
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	// Session endpoints
	r.HandleFunc("/api/session/new", h.NewSession).Methods("POST")
	r.HandleFunc("/api/session/{id}/start", h.StartTraining).Methods("POST")
	r.HandleFunc("/api/session/{id}/hand", h.NewHand).Methods("POST")
	r.HandleFunc("/api/session/{id}/action", h.Act).Methods("POST")
	r.HandleFunc("/api/session/{id}", h.GetSession).Methods("GET")
	r.HandleFunc("/api/session/{id}", h.EndSession).Methods("DELETE")

	// Strategy endpoints
	r.HandleFunc("/api/strategy/table", h.StrategyTable).Methods("GET")
	r.HandleFunc("/api/strategy/recommend", h.Recommend).Methods("POST")

	// WebSocket endpoint
	if h.hub != nil {
		r.HandleFunc("/ws", h.hub.WebSocketHandler)
	}
}

// response helper function to send JSON responses
func response(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// error response helper function
func errorResponse(w http.ResponseWriter, status int, message string) {
	response(w, status, map[string]string{"error": message})
}

// sessionError maps session and store errors onto HTTP status codes
func sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		errorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, trainer.ErrNotPlayerTurn), errors.Is(err, trainer.ErrHandInProgress):
		errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, trainer.ErrActionNotAllowed):
		errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, trainer.ErrSplitNotImplemented):
		errorResponse(w, http.StatusNotImplemented, err.Error())
	default:
		log.Printf("Session error: %v", err)
		errorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// lookup fetches the session named in the route
func (h *Handlers) lookup(w http.ResponseWriter, r *http.Request) (*trainer.Session, bool) {
	session, err := h.store.GetSession(mux.Vars(r)["id"])
	if err != nil {
		sessionError(w, err)
		return nil, false
	}
	return session, true
}

// broadcast pushes the session's current view to its websocket subscribers
func (h *Handlers) broadcast(session *trainer.Session) {
	if h.hub != nil {
		h.hub.BroadcastSessionUpdate(session)
	}
}

// NewSession creates a new training session waiting to be started
func (h *Handlers) NewSession(w http.ResponseWriter, r *http.Request) {
	session := h.newSession()

	if err := h.store.SaveSession(session); err != nil {
		log.Printf("Error saving session: %v", err)
		errorResponse(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	log.Printf("[SESSION] Created %s", session.ID)
	response(w, http.StatusCreated, session.View())
}

// GetSession returns the current view of a session
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	response(w, http.StatusOK, session.View())
}

// StartTraining resets the session's statistics and deals the first hand
func (h *Handlers) StartTraining(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := session.StartTraining(); err != nil {
		sessionError(w, err)
		return
	}

	h.broadcast(session)
	response(w, http.StatusOK, session.View())
}

// NewHand deals the next hand, keeping statistics
func (h *Handlers) NewHand(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := session.NewHand(); err != nil {
		sessionError(w, err)
		return
	}

	h.broadcast(session)
	response(w, http.StatusOK, session.View())
}

// Act applies a player action and returns the decision feedback
func (h *Handlers) Act(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	action, err := game.ParseAction(req.Action)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	feedback, err := session.Act(action)
	if err != nil && !errors.Is(err, trainer.ErrSplitNotImplemented) {
		sessionError(w, err)
		return
	}

	h.broadcast(session)

	status := http.StatusOK
	if err != nil {
		// Split is graded but not played
		status = http.StatusNotImplemented
	}
	response(w, status, map[string]interface{}{
		"feedback": feedback,
		"session":  session.View(),
	})
}

// EndSession removes a session
func (h *Handlers) EndSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.DeleteSession(id); err != nil {
		sessionError(w, err)
		return
	}

	log.Printf("[SESSION] Ended %s", id)
	response(w, http.StatusOK, map[string]string{
		"success": "true",
		"message": "Session ended",
	})
}

// StrategyTable returns the full basic strategy chart
func (h *Handlers) StrategyTable(w http.ResponseWriter, r *http.Request) {
	response(w, http.StatusOK, map[string]interface{}{
		"upcards": strategy.Upcards,
		"table":   strategy.BasicStrategyTable(),
	})
}

// Recommend looks up the chart action for an arbitrary hand and upcard
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cards  []game.Card `json:"cards"`
		Upcard game.Card   `json:"upcard"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	for _, card := range append(req.Cards, req.Upcard) {
		if !card.Suit.Valid() || !card.Rank.Valid() {
			errorResponse(w, http.StatusBadRequest, "Invalid card: "+card.String())
			return
		}
	}

	hand := game.NewHand(req.Cards...)
	situation := strategy.Classify(hand, req.Upcard)

	action, err := strategy.RecommendSituation(situation)
	if err != nil {
		errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	response(w, http.StatusOK, map[string]interface{}{
		"situation":      situation,
		"action":         action,
		"allowedActions": game.AllowedActions(hand),
	})
}
