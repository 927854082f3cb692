package handlers

import (
	"github.com/campuskit/onboarding_service/internal/api/rest"
	"github.com/campuskit/onboarding_service/internal/api/rest/middleware"
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	rh *rest.RestHandler
}

func SetupDocumentRoutes(rh *rest.RestHandler) {
	h := &DocumentHandler{rh: rh}

	docs := rh.App.Group("/api/documents", middleware.AuthRequired(rh.Auth))
	docs.Post("/upload", h.Upload)
	docs.Get("/", h.List)
	docs.Get("/:id", h.Get)

	admin := rh.App.Group("/api/admin/documents", middleware.AuthRequired(rh.Auth), middleware.AdminOnly())
	admin.Get("/", h.ListForReview)
	admin.Put("/:id/review", h.Review)
}

func (h *DocumentHandler) Upload(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	documentType := ctx.FormValue("document_type")
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "could not read file")
	}
	defer f.Close()

	data, err := utils.ReadAllLimit(f, 10*1024*1024)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file exceeds 10MB")
	}

	resp, err := h.rh.DocumentSvc.Upload(
		ctx.Context(),
		actor,
		documentType,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, resp)
}

func (h *DocumentHandler) List(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	resp, err := h.rh.DocumentSvc.ListOwn(actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *DocumentHandler) Get(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid document id")
	}

	doc, err := h.rh.DocumentSvc.GetByID(actor, id)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, doc)
}

func (h *DocumentHandler) ListForReview(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	status := domain.DocumentStatus(ctx.Query("status"))
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	docs, err := h.rh.DocumentSvc.ListForReview(actor, status, limit, offset)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"documents": docs,
		"total":     len(docs),
	})
}

func (h *DocumentHandler) Review(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid document id")
	}

	var req dto.DocumentReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	doc, err := h.rh.DocumentSvc.Review(actor, id, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, doc)
}
