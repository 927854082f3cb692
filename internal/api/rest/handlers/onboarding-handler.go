package handlers

import (
	"github.com/campuskit/onboarding_service/internal/api/rest"
	"github.com/campuskit/onboarding_service/internal/api/rest/middleware"
	"github.com/campuskit/onboarding_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type OnboardingHandler struct {
	rh *rest.RestHandler
}

func SetupOnboardingRoutes(rh *rest.RestHandler) {
	h := &OnboardingHandler{rh: rh}

	onboarding := rh.App.Group("/api/onboarding", middleware.AuthRequired(rh.Auth))
	onboarding.Get("/progress", h.Progress)

	dashboard := rh.App.Group("/api/dashboard", middleware.AuthRequired(rh.Auth))
	dashboard.Get("/summary", h.Summary)
}

func (h *OnboardingHandler) Progress(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	resp, err := h.rh.OnboardingSvc.GetProgress(actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *OnboardingHandler) Summary(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	resp, err := h.rh.DashboardSvc.Summary(actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}
