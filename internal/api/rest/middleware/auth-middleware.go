package middleware

import (
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/helper"
	"github.com/campuskit/onboarding_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// AuthRequired verifies the JWT from the access_token cookie or the
// Authorization header and stores the resulting actor in request locals.
func AuthRequired(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Cookies("access_token")
		if token == "" {
			token = ctx.Get("Authorization")
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}

		actor, err := helper.AuthContextFromClaims(claims)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}

		ctx.Locals("actor", actor)
		return ctx.Next()
	}
}

// AdminOnly must run after AuthRequired.
func AdminOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		actor, ok := ctx.Locals("actor").(domain.AuthContext)
		if !ok || !actor.IsAdmin() {
			return utils.ResponseError(ctx, fiber.StatusForbidden, "admin access required")
		}
		return ctx.Next()
	}
}

// SuperAdminOnly must run after AuthRequired.
func SuperAdminOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		actor, ok := ctx.Locals("actor").(domain.AuthContext)
		if !ok || actor.Role != domain.RoleSuperAdmin {
			return utils.ResponseError(ctx, fiber.StatusForbidden, "superadmin access required")
		}
		return ctx.Next()
	}
}
