package controller

import (
	"errors"
	"testing"

	"health-assistant-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

func TestAuthenticatedUserId(t *testing.T) {
	app := fiber.New()
	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(ctx)

	assertUnauthorized := func(t *testing.T, err error) {
		t.Helper()
		if err == nil {
			t.Fatal("expected an error")
		}
		var appErr *serverutils.AppError
		if !errors.As(err, &appErr) || appErr.Code != fiber.StatusUnauthorized {
			t.Fatalf("expected 401 app error, got %v", err)
		}
	}

	t.Run("missing claim", func(t *testing.T) {
		_, err := authenticatedUserId(ctx)
		assertUnauthorized(t, err)
	})

	t.Run("non-string claim", func(t *testing.T) {
		ctx.Locals("user_id", 42)
		_, err := authenticatedUserId(ctx)
		assertUnauthorized(t, err)
	})

	t.Run("malformed uuid", func(t *testing.T) {
		ctx.Locals("user_id", "not-a-uuid")
		_, err := authenticatedUserId(ctx)
		assertUnauthorized(t, err)
	})

	t.Run("valid claim", func(t *testing.T) {
		want := uuid.New()
		ctx.Locals("user_id", want.String())
		got, err := authenticatedUserId(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}
