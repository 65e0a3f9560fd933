package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/verdantchain/explorer-backend/internal/chain"
	"github.com/verdantchain/explorer-backend/internal/sustainability"
)

// ExplorerHandler serves the explorer's JSON API on top of the indexing
// facade.
type ExplorerHandler struct {
	explorer Explorer
	history  SnapshotHistory
	events   EventStream
	logger   *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler instance. The event stream
// may be nil when no live node is configured; the events endpoint then
// reports unavailability.
func NewExplorerHandler(explorer Explorer, history SnapshotHistory, events EventStream, logger *zap.Logger) *ExplorerHandler {
	return &ExplorerHandler{
		explorer: explorer,
		history:  history,
		events:   events,
		logger:   logger.Named("http"),
	}
}

// Routes builds the mux with every API endpoint registered.
func (h *ExplorerHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/chain", h.handleChainInfo)
	mux.HandleFunc("GET /api/blocks", h.handleLatestBlocks)
	mux.HandleFunc("GET /api/blocks/{id}", h.handleBlock)
	mux.HandleFunc("GET /api/transactions", h.handleRecentTransactions)
	mux.HandleFunc("GET /api/transactions/{hash}", h.handleTransaction)
	mux.HandleFunc("GET /api/identities/{id}", h.handleIdentity)
	mux.HandleFunc("GET /api/addresses/{address}/balance", h.handleBalance)
	mux.HandleFunc("GET /api/addresses/{address}/utxos", h.handleUtxos)
	mux.HandleFunc("GET /api/search", h.handleSearch)
	mux.HandleFunc("GET /api/sustainability", h.handleSustainability)
	mux.HandleFunc("GET /api/sustainability/history", h.handleSustainabilityHistory)
	mux.HandleFunc("GET /api/events", h.handleEvents)

	return mux
}

// handleHealth reports liveness for monitoring systems.
func (h *ExplorerHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

func (h *ExplorerHandler) handleChainInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.explorer.GetChainInfo(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, info)
}

// handleBlock resolves {id} as a height when it is decimal and as a hash
// otherwise.
func (h *ExplorerHandler) handleBlock(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if height, err := strconv.ParseUint(id, 10, 64); err == nil {
		block, err := h.explorer.GetBlockByHeight(r.Context(), height)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, block)
		return
	}

	block, err := h.explorer.GetBlockByHash(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, block)
}

func (h *ExplorerHandler) handleLatestBlocks(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.explorer.GetLatestBlocks(r.Context(), queryLimit(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"blocks": blocks, "count": len(blocks)})
}

func (h *ExplorerHandler) handleTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.explorer.GetTransaction(r.Context(), r.PathValue("hash"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tx)
}

func (h *ExplorerHandler) handleRecentTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.explorer.GetRecentTransactions(r.Context(), queryLimit(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"transactions": txs, "count": len(txs)})
}

func (h *ExplorerHandler) handleIdentity(w http.ResponseWriter, r *http.Request) {
	identity, err := h.explorer.GetIdentity(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, identity)
}

func (h *ExplorerHandler) handleBalance(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	balance, err := h.explorer.GetBalance(r.Context(), address)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"address": address, "balance": balance})
}

func (h *ExplorerHandler) handleUtxos(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	utxos, err := h.explorer.GetUtxos(r.Context(), address)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"address": address, "utxos": utxos, "count": len(utxos)})
}

func (h *ExplorerHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing query parameter q"})
		return
	}

	result, err := h.explorer.Search(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *ExplorerHandler) handleSustainability(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.explorer.GetSustainabilityMetrics(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

func (h *ExplorerHandler) handleSustainabilityHistory(w http.ResponseWriter, r *http.Request) {
	days := 1
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 90 {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "days must be between 1 and 90"})
			return
		}
		days = parsed
	}

	snapshots := h.history.History(days)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"days":      days,
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}

// queryLimit parses ?limit= leniently; the facade clamps it anyway.
func queryLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}

func (h *ExplorerHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("response encode failed", zap.Error(err))
	}
}

// writeError maps domain errors onto HTTP statuses. Unknown errors are
// logged and reported as an opaque 500.
func (h *ExplorerHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, chain.ErrInvalidArgument):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, chain.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, sustainability.ErrDivisionUndefined):
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
