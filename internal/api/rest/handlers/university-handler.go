package handlers

import (
	"github.com/campuskit/onboarding_service/internal/api/rest"
	"github.com/campuskit/onboarding_service/internal/api/rest/middleware"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type UniversityHandler struct {
	rh *rest.RestHandler
}

func SetupUniversityRoutes(rh *rest.RestHandler) {
	h := &UniversityHandler{rh: rh}

	// public, feeds the registration page with tenant branding
	rh.App.Get("/api/universities/:slug", h.GetBySlug)

	university := rh.App.Group("/api/university", middleware.AuthRequired(rh.Auth))
	university.Get("/", h.GetOwn)

	admin := rh.App.Group("/api/admin/university", middleware.AuthRequired(rh.Auth), middleware.AdminOnly())
	admin.Put("/", h.Update)

	super := rh.App.Group("/api/admin/universities", middleware.AuthRequired(rh.Auth), middleware.SuperAdminOnly())
	super.Post("/", h.Create)
}

func (h *UniversityHandler) GetBySlug(ctx *fiber.Ctx) error {
	u, err := h.rh.UniversitySvc.GetBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, u)
}

func (h *UniversityHandler) GetOwn(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	u, err := h.rh.UniversitySvc.GetOwn(ctx.Context(), actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, u)
}

func (h *UniversityHandler) Update(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.UniversityUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	u, err := h.rh.UniversitySvc.Update(ctx.Context(), actor, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, u)
}

func (h *UniversityHandler) Create(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.UniversityCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	u, err := h.rh.UniversitySvc.Create(actor, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, u)
}
