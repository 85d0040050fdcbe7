package pasetotoken

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

const CtxKeyClaims = "auth.claims"

// TokenFromRequest returns the bearer token from the Authorization header,
// falling back to cookie when the header is absent. It returns "" when the
// request carries no token.
func TokenFromRequest(c fiber.Ctx, cookie string) string {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}
	if cookie != "" {
		return strings.TrimSpace(c.Cookies(cookie))
	}
	return ""
}

func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	v := c.Locals(CtxKeyClaims)
	if v == nil {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}
