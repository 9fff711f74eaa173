package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Naveen122004/portfolio-service/internal/domain"
	"github.com/Naveen122004/portfolio-service/internal/repository"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

// RequireAdmin ensures the caller holds an admin role assignment. The lookup
// hits the role store on every request; a revoked grant locks the caller out
// immediately, with no cached privilege surviving the revocation.
func RequireAdmin(roles repository.RoleRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("sign in required")
		}
		isAdmin, err := roles.HasRole(c.Context(), principal.User.ID, domain.RoleAdmin)
		if err != nil {
			return apperrors.MapError(err)
		}
		if !isAdmin {
			return apperrors.NewForbidden("access denied")
		}
		return c.Next()
	}
}
