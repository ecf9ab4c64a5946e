// Package http exposes the conversational shopping assistant over a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sparkyshop/sparky/internal/agent"
	"github.com/sparkyshop/sparky/internal/catalog"
	"github.com/sparkyshop/sparky/internal/domain"
	"github.com/sparkyshop/sparky/internal/session"
)

type Handler struct {
	sessions *session.Manager
	router   *agent.Router
	catalog  *catalog.Catalog
	log      *zap.Logger
}

func NewHandler(sessions *session.Manager, router *agent.Router, c *catalog.Catalog, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		sessions: sessions,
		router:   router,
		catalog:  c,
		log:      log,
	}
}

type ChatRequestDTO struct {
	Message string `json:"message"`
}

type ActionRequestDTO struct {
	Action string `json:"action"`
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type ChatResponseDTO struct {
	SessionID string          `json:"session_id"`
	Response  domain.Response `json:"response"`
}

type CartResponseDTO struct {
	SessionID string            `json:"session_id"`
	Items     []domain.CartLine `json:"items"`
	Total     float64           `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	sc := sessionFromContext(r.Context())

	var req ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Message == "" {
		h.respondError(w, http.StatusBadRequest, "invalid_message", "message must not be empty")
		return
	}

	resp := h.router.ProcessMessage(sc, req.Message)

	h.respondJSON(w, http.StatusOK, ChatResponseDTO{SessionID: sc.ID, Response: resp})
}

func (h *Handler) Action(w http.ResponseWriter, r *http.Request) {
	sc := sessionFromContext(r.Context())

	var req ActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Action == "" {
		h.respondError(w, http.StatusBadRequest, "invalid_action", "action must not be empty")
		return
	}

	resp := h.router.HandleAction(sc, req.Action)

	h.respondJSON(w, http.StatusOK, ChatResponseDTO{SessionID: sc.ID, Response: resp})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	sc := sessionFromContext(r.Context())
	h.respondJSON(w, http.StatusOK, cartDTO(sc))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	sc := sessionFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		h.respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	product, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		h.respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	sc.AddToCart(product, req.Quantity)

	h.respondJSON(w, http.StatusCreated, cartDTO(sc))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sc := sessionFromContext(r.Context())

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	sc.RemoveFromCart(productID)

	h.respondJSON(w, http.StatusOK, cartDTO(sc))
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	sc := sessionFromContext(r.Context())

	order, err := h.router.CompleteOrder(sc)
	if err != nil {
		if errors.Is(err, agent.ErrNothingToOrder) {
			h.respondError(w, http.StatusConflict, "nothing_to_order", "cart is empty and no product is selected")
			return
		}
		h.log.Error("checkout failed", zap.String("session", sc.ID), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.respondJSON(w, http.StatusCreated, order)
}

func cartDTO(sc *session.Context) CartResponseDTO {
	items := sc.Cart
	if items == nil {
		items = []domain.CartLine{}
	}
	return CartResponseDTO{
		SessionID: sc.ID,
		Items:     items,
		Total:     sc.CartTotal(),
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, code, message string) {
	h.respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
