package middleware

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/notifications/internal/service/session"
	pasetotoken "github.com/Alijeyrad/notifications/pkg/paseto"
	"github.com/Alijeyrad/notifications/pkg/reqctx"
)

// Authenticate reads an access token from the Authorization header or the
// given cookie. Valid claims are stored in c.Locals(pasetotoken.CtxKeyClaims)
// and in the request context; any other request continues anonymously.
func Authenticate(auth session.Authenticator, cookie string) fiber.Handler {
	return func(c fiber.Ctx) error {
		tok := pasetotoken.TokenFromRequest(c, cookie)
		if tok == "" {
			return c.Next()
		}

		claims, err := auth.Authenticate(c.Context(), tok)
		if err != nil {
			if !errors.Is(err, session.ErrUnauthenticated) && !errors.Is(err, session.ErrSessionRevoked) {
				slog.WarnContext(c.Context(), "session lookup failed", "error", err)
			}
			return c.Next()
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}

// LoginRequired sends anonymous requests to loginURL with the original
// path in ?next=.
func LoginRequired(loginURL string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if _, ok := pasetotoken.ClaimsFromFiber(c); ok {
			return c.Next()
		}
		return c.Redirect().Status(fiber.StatusFound).To(loginRedirect(loginURL, c.OriginalURL()))
	}
}

func loginRedirect(loginURL, next string) string {
	u, err := url.Parse(loginURL)
	if err != nil {
		return loginURL
	}
	q := u.Query()
	q.Set("next", next)
	u.RawQuery = q.Encode()
	return u.String()
}
