package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/you-humble/repair-fulfillment/internal/model"
	"github.com/you-humble/repair-fulfillment/internal/transport/http/respond"
)

const actorHeader = "X-Actor-ID"

// attrPrefix marks query parameters that filter variants by attribute,
// e.g. ?attr.color=black&attr.capacity=128.
const attrPrefix = "attr."

type SparePartService interface {
	SparePartByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error)
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int64) (int64, error)
	SearchVariants(ctx context.Context, sparePartID uuid.UUID, query string, attrs map[string]string) ([]*model.SparePartVariant, error)
	VariantStats(ctx context.Context, sparePartID uuid.UUID) (*model.VariantStats, error)
	ReplaceVariants(ctx context.Context, sparePartID uuid.UUID, variants []*model.SparePartVariant, actor uuid.UUID) ([]*model.SparePartVariant, error)
}

type Handler struct {
	svc SparePartService
}

func NewSparePartHandler(svc SparePartService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/spare-parts/{id}", func(r chi.Router) {
		r.Get("/", h.byID)
		r.Post("/adjust", h.adjust)
		r.Get("/variants", h.variants)
		r.Put("/variants", h.replaceVariants)
		r.Get("/variants/stats", h.variantStats)
	})
}

func (h *Handler) byID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	sp, err := h.svc.SparePartByID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, toSparePartDTO(sp))
}

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, fmt.Errorf("decode body: %w", model.ErrValidation))
		return
	}

	quantity, err := h.svc.AdjustQuantity(r.Context(), id, req.Delta)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, adjustResponse{Quantity: quantity})
}

func (h *Handler) variants(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	query := r.URL.Query().Get("q")
	attrs := make(map[string]string)
	for key, values := range r.URL.Query() {
		if !strings.HasPrefix(key, attrPrefix) || len(values) == 0 {
			continue
		}
		attrs[strings.TrimPrefix(key, attrPrefix)] = values[0]
	}

	variants, err := h.svc.SearchVariants(r.Context(), id, query, attrs)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, toVariantDTOs(variants))
}

func (h *Handler) replaceVariants(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req replaceVariantsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, fmt.Errorf("decode body: %w", model.ErrValidation))
		return
	}

	variants, err := h.svc.ReplaceVariants(r.Context(), id, toVariantModels(req.Variants), actorID(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, toVariantDTOs(variants))
}

func (h *Handler) variantStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	stats, err := h.svc.VariantStats(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, stats)
}

func actorID(r *http.Request) uuid.UUID {
	raw := r.Header.Get(actorHeader)
	if raw == "" {
		return uuid.Nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, model.ErrValidation)
	}

	return id, nil
}
