package handlers

import (
	"github.com/campuskit/onboarding_service/internal/api/rest"
	"github.com/campuskit/onboarding_service/internal/api/rest/middleware"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type HostelHandler struct {
	rh *rest.RestHandler
}

func SetupHostelRoutes(rh *rest.RestHandler) {
	h := &HostelHandler{rh: rh}

	hostel := rh.App.Group("/api/hostel", middleware.AuthRequired(rh.Auth))
	hostel.Post("/apply", h.Apply)
	hostel.Get("/status", h.Status)

	admin := rh.App.Group("/api/admin/hostel", middleware.AuthRequired(rh.Auth), middleware.AdminOnly())
	admin.Put("/:id/process", h.Process)
}

func (h *HostelHandler) Apply(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.HostelApplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	app, err := h.rh.HostelSvc.Apply(actor, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, app)
}

func (h *HostelHandler) Status(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	app, err := h.rh.HostelSvc.GetStatus(actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, app)
}

func (h *HostelHandler) Process(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	var req dto.HostelProcessRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	app, err := h.rh.HostelSvc.Process(actor, id, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, app)
}
