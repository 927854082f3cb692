package handlers

import (
	"github.com/campuskit/onboarding_service/internal/api/rest"
	"github.com/campuskit/onboarding_service/internal/api/rest/middleware"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CourseHandler struct {
	rh *rest.RestHandler
}

func SetupCourseRoutes(rh *rest.RestHandler) {
	h := &CourseHandler{rh: rh}

	courses := rh.App.Group("/api/courses", middleware.AuthRequired(rh.Auth))
	courses.Get("/", h.ListCourses)
	courses.Get("/:id", h.GetCourse)

	subjects := rh.App.Group("/api/subjects", middleware.AuthRequired(rh.Auth))
	subjects.Get("/", h.ListSubjects)

	enrollments := rh.App.Group("/api/enrollments", middleware.AuthRequired(rh.Auth))
	enrollments.Post("/", h.Enroll)
	enrollments.Post("/drop", h.Drop)
	enrollments.Get("/", h.ListEnrollments)

	admin := rh.App.Group("/api/admin", middleware.AuthRequired(rh.Auth), middleware.AdminOnly())
	admin.Post("/courses", h.CreateCourse)
	admin.Put("/courses/:id", h.UpdateCourse)
	admin.Post("/subjects", h.CreateSubject)
}

func (h *CourseHandler) CreateCourse(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.CourseCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	c, err := h.rh.CourseSvc.CreateCourse(actor, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, c)
}

func (h *CourseHandler) UpdateCourse(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid course id")
	}

	var req dto.CourseUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	c, err := h.rh.CourseSvc.UpdateCourse(actor, id, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, c)
}

func (h *CourseHandler) ListCourses(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	courses, err := h.rh.CourseSvc.ListCourses(actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, courses)
}

func (h *CourseHandler) GetCourse(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid course id")
	}

	c, err := h.rh.CourseSvc.GetCourse(actor, id)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, c)
}

func (h *CourseHandler) CreateSubject(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.SubjectCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	subj, err := h.rh.CourseSvc.CreateSubject(actor, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, subj)
}

func (h *CourseHandler) ListSubjects(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var courseID *uuid.UUID
	if raw := ctx.Query("course_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid course id")
		}
		courseID = &id
	}

	subjects, err := h.rh.CourseSvc.ListSubjects(actor, courseID)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, subjects)
}

func (h *CourseHandler) Enroll(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.EnrollRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	enrollments, err := h.rh.CourseSvc.Enroll(actor, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, enrollments)
}

func (h *CourseHandler) Drop(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.DropRequest
	if err := ctx.BodyParser(&req); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	e, err := h.rh.CourseSvc.Drop(actor, req)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, e)
}

func (h *CourseHandler) ListEnrollments(ctx *fiber.Ctx) error {
	actor, err := h.rh.Auth.GetCurrentActor(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	resp, err := h.rh.CourseSvc.ListEnrollments(actor)
	if err != nil {
		return utils.ResponseDomainError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}
