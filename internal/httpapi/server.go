// Package httpapi exposes the warehouse call surface as JSON endpoints so
// the in-memory core can serve multiple callers from one process. All
// mutation still funnels through the Inventory's own lock; handlers never
// touch its internals.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockyard/pkg/warehouse"
)

// Server wires HTTP endpoints to one Inventory.
type Server struct {
	inv    *warehouse.Inventory
	logger *zap.Logger
}

// New returns a Server over the given inventory. A nil logger is replaced
// with a no-op logger so tests stay quiet.
func New(inv *warehouse.Inventory, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{inv: inv, logger: logger}
}

// Handler returns the route table for the JSON API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/sections", s.addSection)
	mux.HandleFunc("GET /api/sections", s.listSections)
	mux.HandleFunc("GET /api/sections/{section}/items", s.listItems)
	mux.HandleFunc("POST /api/stock/add", s.addStock)
	mux.HandleFunc("POST /api/stock/remove", s.removeStock)
	mux.HandleFunc("POST /api/stock/set", s.setQuantity)
	mux.HandleFunc("POST /api/stock/move", s.moveStock)
	mux.HandleFunc("GET /api/snapshot", s.snapshot)
	return mux
}

type sectionRequest struct {
	Name string `json:"name"`
}

type stockRequest struct {
	Section  string `json:"section"`
	Item     string `json:"item"`
	Amount   int    `json:"amount"`
	Quantity int    `json:"quantity"`
	Expiry   string `json:"expiry"`
}

type moveRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

func (s *Server) addSection(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.inv.AddSection(req.Name); err != nil {
		s.writeError(w, "add section", err)
		return
	}
	s.logger.Info("section added", zap.String("section", req.Name))
	s.writeJSON(w, http.StatusCreated, map[string]string{"section": req.Name})
}

func (s *Server) listSections(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.inv.SectionNames())
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	// An absent section yields an empty list on purpose; this endpoint
	// feeds selection lists and must not fail on stale names.
	s.writeJSON(w, http.StatusOK, s.inv.ItemNames(r.PathValue("section")))
}

func (s *Server) addStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.inv.AddStock(req.Section, req.Item, req.Amount, req.Expiry); err != nil {
		s.writeError(w, "add stock", err)
		return
	}
	s.logger.Info("stock added",
		zap.String("section", req.Section),
		zap.String("item", req.Item),
		zap.Int("amount", req.Amount))
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) removeStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.inv.RemoveStock(req.Section, req.Item, req.Amount); err != nil {
		s.writeError(w, "remove stock", err)
		return
	}
	s.logger.Info("stock removed",
		zap.String("section", req.Section),
		zap.String("item", req.Item),
		zap.Int("amount", req.Amount))
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.inv.SetQuantity(req.Section, req.Item, req.Quantity); err != nil {
		s.writeError(w, "set quantity", err)
		return
	}
	s.logger.Info("quantity set",
		zap.String("section", req.Section),
		zap.String("item", req.Item),
		zap.Int("quantity", req.Quantity))
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) moveStock(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.inv.MoveStock(req.From, req.To, req.Item, req.Amount); err != nil {
		s.writeError(w, "move stock", err)
		return
	}
	s.logger.Info("stock moved",
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.String("item", req.Item),
		zap.Int("amount", req.Amount))
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.inv.Snapshot())
}

// decode reads the JSON request body into dst, answering 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return false
	}
	return true
}

// writeError maps a warehouse error to an HTTP status and logs the refusal.
func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, warehouse.ErrInvalidName), errors.Is(err, warehouse.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, warehouse.ErrSectionNotFound), errors.Is(err, warehouse.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, warehouse.ErrDuplicateSection), errors.Is(err, warehouse.ErrInsufficientStock):
		status = http.StatusConflict
	}
	s.logger.Info("request refused", zap.String("op", op), zap.Error(err), zap.Int("status", status))
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}
