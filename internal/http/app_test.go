package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"sbsoverseas/internal/config"
	"sbsoverseas/internal/content"
	"sbsoverseas/internal/http/handlers"
	"sbsoverseas/internal/repos"
	"sbsoverseas/internal/services"
)

type testEnv struct {
	DB         *sqlx.DB
	Store      *content.Store
	Users      *repos.UserRepo
	Auth       *services.AuthService
	ContentDir string
	UploadsDir string
}

// newSiteApp wires the full route table the way the binary does, with
// per-test content and upload directories and an in-memory database.
func newSiteApp(t *testing.T, gen handlers.Generator) (*fiber.App, *testEnv) {
	t.Helper()

	cfg := config.Config{
		DBDSN:      ":memory:",
		ContentDir: t.TempDir(),
		UploadsDir: t.TempDir(),
	}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store, err := content.NewStore(cfg.ContentDir)
	if err != nil {
		t.Fatalf("content store: %v", err)
	}

	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Server().MaxRequestBodySize = 12 << 20
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if p, err := authSvc.CurrentProfile(sid); err == nil && p != nil {
				c.Locals("profile", p)
			}
		}
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}))

	deps := handlers.NewDeps(db, cfg, store, authSvc, gen)
	adminOnly := handlers.RequireAdmin(authSvc)

	app.Get("/api/content/:domain", deps.ContentHandler.Get)
	app.Post("/api/content/:domain", adminOnly, deps.ContentHandler.Save)

	app.Get("/api/products/search", deps.SearchHandler.Search)
	app.Get("/api/products/:id", deps.ProductHandler.Detail)

	formLimiter := limiter.New(limiter.Config{Max: 100, Expiration: time.Minute})
	app.Post("/api/submissions", formLimiter, deps.SubmissionHandler.Create)
	app.Post("/api/subscribe", formLimiter, deps.NewsletterHandler.Subscribe)

	app.Get("/api/submissions", adminOnly, deps.SubmissionHandler.List)
	app.Delete("/api/submissions/:id", adminOnly, deps.SubmissionHandler.Delete)
	app.Post("/api/upload", adminOnly, deps.UploadHandler.Upload)
	app.Post("/api/generate", adminOnly, deps.AIHandler.Generate)

	app.Get("/login", authH.LoginForm)
	app.Post("/login", authH.Login)
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)
	app.Post("/logout", authH.Logout)

	admin := app.Group("/admin", adminOnly)
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/submissions", deps.AdminHandler.SubmissionsPage)
	admin.Get("/subscribers", deps.AdminHandler.SubscribersPage)
	admin.Get("/users", deps.AdminHandler.UsersPage)
	admin.Post("/users/:id/delete", deps.AdminHandler.DeleteUser)

	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	env := &testEnv{
		DB:         db,
		Store:      store,
		Users:      userRepo,
		Auth:       authSvc,
		ContentDir: cfg.ContentDir,
		UploadsDir: cfg.UploadsDir,
	}
	return app, env
}

// adminCookie binds a session to the seeded bootstrap admin.
func adminCookie(t *testing.T, env *testEnv) *http.Cookie {
	t.Helper()
	if err := env.Users.BindSession("sid-admin", "u-admin"); err != nil {
		t.Fatalf("bind admin session: %v", err)
	}
	return &http.Cookie{Name: "sid", Value: "sid-admin"}
}

// userCookie creates a regular (non-admin) account with a bound session.
func userCookie(t *testing.T, env *testEnv) *http.Cookie {
	t.Helper()
	if err := env.Users.Create("u-visitor", "visitor@sbsoverseas.test", "$2a$12$notarealhash", "Visitor"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := env.Users.BindSession("sid-visitor", "u-visitor"); err != nil {
		t.Fatalf("bind session: %v", err)
	}
	return &http.Cookie{Name: "sid", Value: "sid-visitor"}
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
