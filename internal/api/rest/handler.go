package rest

import (
	"github.com/campuskit/onboarding_service/config"
	"github.com/campuskit/onboarding_service/internal/helper"
	"github.com/campuskit/onboarding_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// RestHandler carries everything the route handlers need. Built once in
// StartServer and handed to each Setup*Routes function.
type RestHandler struct {
	App    *fiber.App
	Auth   helper.Auth
	Config config.Config

	UserSvc       services.UserService
	UniversitySvc services.UniversityService
	DocumentSvc   services.DocumentService
	PaymentSvc    services.PaymentService
	HostelSvc     services.HostelService
	LMSSvc        services.LMSService
	CourseSvc     services.CourseService
	ComplianceSvc services.ComplianceService
	OnboardingSvc services.OnboardingService
	DashboardSvc  services.DashboardService
}
