package handlers

import (
	"github.com/campuskit/onboarding_service/internal/api/rest"
	"github.com/campuskit/onboarding_service/internal/api/rest/middleware"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ComplianceHandler struct {
	rh *rest.RestHandler
}

func SetupComplianceRoutes(rh *rest.RestHandler) {
	h := &ComplianceHandler{rh: rh}

	compliance := rh.App.Group("/api/compliance", middleware.AuthRequired(rh.Auth))
	compliance.Get("/items", h.ListItems)
	compliance.Post("/submit", h.Submit)
	compliance.Get("/status", h.Status)

	admin := rh.App.Group("/api/admin/compliance", middleware.AuthRequired(rh.Auth), middleware.AdminOnly())
	admin.Post("/items", h.CreateItem)
	admin.Put("/items/:id", h.UpdateItem)
}

func (h *ComplianceHandler) CreateItem(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.ComplianceItemCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	item, err := h.rh.ComplianceSvc.CreateItem(actor, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, item)
}

func (h *ComplianceHandler) UpdateItem(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid item id")
	}

	var req dto.ComplianceItemUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	item, err := h.rh.ComplianceSvc.UpdateItem(actor, id, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, item)
}

func (h *ComplianceHandler) ListItems(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.rh.ComplianceSvc.ListItems(actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, items)
}

func (h *ComplianceHandler) Submit(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.ComplianceSubmitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	rec, err := h.rh.ComplianceSvc.Submit(actor, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, rec)
}

func (h *ComplianceHandler) Status(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	resp, err := h.rh.ComplianceSvc.Status(actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}
