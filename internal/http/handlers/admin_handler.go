package handlers

import (
	"sbsoverseas/internal/content"
	"sbsoverseas/internal/domain"
	applog "sbsoverseas/internal/log"
	"sbsoverseas/internal/repos"
	"sbsoverseas/internal/services"
	"sbsoverseas/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Users *repos.UserRepo
	Subs  *services.SubmissionService
	News  *repos.NewsletterRepo
}

// GET /admin — dashboard shell with one tab per content domain.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	inquiries, _ := h.Subs.Count(domain.SubmissionContact)
	orders, _ := h.Subs.Count(domain.SubmissionOrder)
	return render(c, "admin_dashboard", fiber.Map{
		"Domains":   content.Domains(),
		"Inquiries": inquiries,
		"Orders":    orders,
	})
}

// GET /admin/submissions
func (h *AdminHandler) SubmissionsPage(c *fiber.Ctx) error {
	subType := domain.SubmissionContact
	if c.Query("type") == domain.SubmissionOrder {
		subType = domain.SubmissionOrder
	}
	subs, err := h.Subs.List(subType)
	if err != nil {
		applog.Error(c, "admin.submissions.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load submissions"})
	}
	return render(c, "admin_submissions", fiber.Map{"Submissions": subs, "Type": subType})
}

// GET /admin/subscribers
func (h *AdminHandler) SubscribersPage(c *fiber.Ctx) error {
	signups, err := h.News.List()
	if err != nil {
		applog.Error(c, "admin.subscribers.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load subscribers"})
	}
	return render(c, "admin_subscribers", fiber.Map{"Signups": signups})
}

// GET /admin/users
func (h *AdminHandler) UsersPage(c *fiber.Ctx) error {
	users, err := h.Users.ListProfiles()
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load users"})
	}
	return render(c, "admin_users", fiber.Map{"Users": users})
}

// POST /admin/users/:id/delete
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	if err := h.Users.DeleteUserCascade(id); err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not delete user")
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.Redirect("/admin/users")
}
