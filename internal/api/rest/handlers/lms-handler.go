package handlers

import (
	"github.com/campuskit/onboarding_service/internal/api/rest"
	"github.com/campuskit/onboarding_service/internal/api/rest/middleware"
	"github.com/campuskit/onboarding_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type LMSHandler struct {
	rh *rest.RestHandler
}

func SetupLMSRoutes(rh *rest.RestHandler) {
	h := &LMSHandler{rh: rh}

	lms := rh.App.Group("/api/lms", middleware.AuthRequired(rh.Auth))
	lms.Post("/activate", h.Activate)
	lms.Get("/status", h.Status)
}

func (h *LMSHandler) Activate(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	activation, err := h.rh.LMSSvc.Activate(ctx.Context(), actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, activation)
}

func (h *LMSHandler) Status(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	activation, err := h.rh.LMSSvc.GetStatus(actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, activation)
}
