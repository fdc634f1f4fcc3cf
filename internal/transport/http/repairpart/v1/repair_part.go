package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/repair-fulfillment/internal/model"
	"github.com/you-humble/repair-fulfillment/internal/transport/http/respond"
)

// ActorHeader carries the opaque actor id used for audit fields.
const ActorHeader = "X-Actor-ID"

type RepairPartService interface {
	CreateMany(ctx context.Context, params []model.CreateRepairPartParams, actor uuid.UUID) (*model.CreateRepairPartsResult, error)
	RepairPartByID(ctx context.Context, id uuid.UUID) (*model.RepairPart, error)
	Accept(ctx context.Context, ids []uuid.UUID, actor uuid.UUID) ([]*model.RepairPart, error)
	Reject(ctx context.Context, ids []uuid.UUID, actor uuid.UUID, reason string) ([]*model.RepairPart, error)
	MarkReceived(ctx context.Context, ids []uuid.UUID, actor uuid.UUID) ([]*model.RepairPart, error)
	MarkUsed(ctx context.Context, id uuid.UUID, actor uuid.UUID) (*model.RepairPart, []model.AuxOutcome, error)
	ListForDevice(ctx context.Context, deviceID uuid.UUID) ([]*model.RepairPartDetails, error)
	ListByStatus(ctx context.Context, status model.RepairPartStatus, deviceID *uuid.UUID) ([]*model.RepairPartDetails, error)
	StatsForDevice(ctx context.Context, deviceID uuid.UUID) (*model.RepairPartsStats, error)
}

type ReadinessService interface {
	Evaluate(ctx context.Context, deviceID uuid.UUID) (*model.Readiness, error)
}

type Handler struct {
	svc       RepairPartService
	readiness ReadinessService
}

func NewRepairPartHandler(svc RepairPartService, readiness ReadinessService) *Handler {
	return &Handler{svc: svc, readiness: readiness}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/repair-parts", func(r chi.Router) {
		r.Post("/", h.create)
		r.Post("/accept", h.accept)
		r.Post("/reject", h.reject)
		r.Get("/{id}", h.byID)
		r.Post("/{id}/receive", h.receive)
		r.Post("/{id}/use", h.use)
		r.Get("/status/{status}", h.listByStatus)
	})

	r.Route("/devices/{deviceID}/repair-parts", func(r chi.Router) {
		r.Get("/", h.listForDevice)
		r.Get("/readiness", h.deviceReadiness)
		r.Get("/stats", h.deviceStats)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, fmt.Errorf("decode body: %w", model.ErrValidation))
		return
	}

	res, err := h.svc.CreateMany(r.Context(), toCreateParams(req.Items), actorID(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, createResponse{
		Parts: lo.Map(res.Parts, func(p *model.RepairPart, _ int) repairPartDTO {
			return toRepairPartDTO(p)
		}),
		Aux: res.Aux,
	})
}

func (h *Handler) byID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	part, err := h.svc.RepairPartByID(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, toRepairPartDTO(part))
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, fmt.Errorf("decode body: %w", model.ErrValidation))
		return
	}

	updated, err := h.svc.Accept(r.Context(), req.IDs, actorID(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, toUpdatedResponse(updated))
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, fmt.Errorf("decode body: %w", model.ErrValidation))
		return
	}

	updated, err := h.svc.Reject(r.Context(), req.IDs, actorID(r), req.Reason)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, toUpdatedResponse(updated))
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	updated, err := h.svc.MarkReceived(r.Context(), []uuid.UUID{id}, actorID(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if len(updated) == 0 {
		respond.Error(w, r, model.ErrRepairPartNotFound)
		return
	}

	respond.JSON(w, r, http.StatusOK, toUpdatedResponse(updated))
}

func (h *Handler) use(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	part, aux, err := h.svc.MarkUsed(r.Context(), id, actorID(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, useResponse{
		Part: toRepairPartDTO(part),
		Aux:  aux,
	})
}

func (h *Handler) listForDevice(w http.ResponseWriter, r *http.Request) {
	deviceID, err := pathUUID(r, "deviceID")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	parts, err := h.svc.ListForDevice(r.Context(), deviceID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, lo.Map(parts, func(d *model.RepairPartDetails, _ int) detailsDTO {
		return toDetailsDTO(d)
	}))
}

func (h *Handler) listByStatus(w http.ResponseWriter, r *http.Request) {
	status := model.RepairPartStatus(chi.URLParam(r, "status"))

	var deviceID *uuid.UUID
	if raw := r.URL.Query().Get("deviceId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respond.Error(w, r, fmt.Errorf("invalid deviceId: %w", model.ErrValidation))
			return
		}
		deviceID = &id
	}

	parts, err := h.svc.ListByStatus(r.Context(), status, deviceID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, lo.Map(parts, func(d *model.RepairPartDetails, _ int) detailsDTO {
		return toDetailsDTO(d)
	}))
}

func (h *Handler) deviceReadiness(w http.ResponseWriter, r *http.Request) {
	deviceID, err := pathUUID(r, "deviceID")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	res, err := h.readiness.Evaluate(r.Context(), deviceID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, res)
}

func (h *Handler) deviceStats(w http.ResponseWriter, r *http.Request) {
	deviceID, err := pathUUID(r, "deviceID")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	stats, err := h.svc.StatsForDevice(r.Context(), deviceID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, stats)
}

// actorID parses the actor header. uuid.Nil when absent or malformed;
// operations that need an actor reject uuid.Nil themselves.
func actorID(r *http.Request) uuid.UUID {
	raw := r.Header.Get(ActorHeader)
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
