package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"

	"notes-service/internal/logger"
	"notes-service/internal/models"
	"notes-service/internal/services"
	"notes-service/internal/validation"
)

// Flash kinds stored in the session.
const (
	flashOK    = "ok"
	flashError = "error"
)

const (
	flashTypeKey = "flash_type"
	flashMsgKey  = "flash_msg"
)

var validThemes = map[string]bool{"dark": true, "light": true, "auto": true}

// Flash is a one-shot status message carried across a redirect.
type Flash struct {
	Type string
	Msg  string
}

type ProjectHandler struct {
	service *services.ProjectService
	store   *session.Store
}

func NewProjectHandler(service *services.ProjectService, store *session.Store) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		store:   store,
	}
}

// Index handles GET /: list, search, edit pre-fill, theme switch.
func (h *ProjectHandler) Index(c *fiber.Ctx) error {
	if opt := c.Query("set_theme"); opt != "" {
		return h.setTheme(c, opt)
	}

	theme := c.Cookies("theme", "auto")
	if !validThemes[theme] {
		theme = "auto"
	}

	search := strings.TrimSpace(c.Query("q"))

	var edit *models.Project
	if editID := c.QueryInt("edit"); editID > 0 {
		project, err := h.service.Get(uint(editID))
		if err != nil {
			logger.Error("edit lookup failed: id=%d err=%v", editID, err)
			return storageError(c)
		}
		edit = project
	}

	projects, err := h.service.List(search)
	if err != nil {
		logger.Error("listing projects failed: %v", err)
		return storageError(c)
	}

	return c.Render("index", fiber.Map{
		"Theme":        theme,
		"Search":       search,
		"Edit":         edit,
		"Projects":     projects,
		"Flash":        h.popFlash(c),
		"CSRFToken":    csrf.TokenFromContext(c),
		"Statuses":     models.Statuses,
		"StatusLabels": models.StatusLabels,
	})
}

// Submit handles POST /: dispatches on the hidden action field. Every
// outcome sets a flash and redirects to the bare path (POST-redirect-GET),
// so a refresh never resubmits.
func (h *ProjectHandler) Submit(c *fiber.Ctx) error {
	switch c.FormValue("action") {
	case "create":
		if err := h.service.Create(formFromRequest(c)); err != nil {
			return h.submitError(c, "create", err)
		}
		h.setFlash(c, flashOK, "Project created successfully.")
	case "update":
		id, ok := formID(c)
		if !ok {
			h.setFlash(c, flashError, "Invalid fields. Check the form.")
			return h.redirect(c)
		}
		if err := h.service.Update(id, formFromRequest(c)); err != nil {
			return h.submitError(c, "update", err)
		}
		h.setFlash(c, flashOK, "Project updated successfully.")
	case "delete":
		id, ok := formID(c)
		if !ok {
			h.setFlash(c, flashError, "Invalid id.")
			return h.redirect(c)
		}
		if err := h.service.Delete(id); err != nil {
			return h.submitError(c, "delete", err)
		}
		h.setFlash(c, flashOK, "Project deleted successfully.")
	default:
		h.setFlash(c, flashError, "Unknown action.")
	}
	return h.redirect(c)
}

func (h *ProjectHandler) submitError(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		logger.Warn("%s rejected: %v", action, err)
		h.setFlash(c, flashError, "Invalid fields. Check all required fields.")
	case errors.Is(err, services.ErrInvalidID):
		h.setFlash(c, flashError, "Invalid id.")
	default:
		logger.Error("%s failed: %v", action, err)
		return storageError(c)
	}
	return h.redirect(c)
}

func (h *ProjectHandler) setTheme(c *fiber.Ctx, opt string) error {
	opt = strings.ToLower(opt)
	if !validThemes[opt] {
		opt = "auto"
	}
	c.Cookie(&fiber.Cookie{
		Name:     "theme",
		Value:    opt,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
	h.setFlash(c, flashOK, "Theme changed to: "+opt)
	return h.redirect(c)
}

// redirect strips the query string so the address bar ends up clean after
// any mutation or theme switch.
func (h *ProjectHandler) redirect(c *fiber.Ctx) error {
	return c.Redirect(c.Path(), fiber.StatusSeeOther)
}

func (h *ProjectHandler) setFlash(c *fiber.Ctx, kind, msg string) {
	sess, err := h.store.Get(c)
	if err != nil {
		logger.Error("session unavailable, dropping flash: %v", err)
		return
	}
	sess.Set(flashTypeKey, kind)
	sess.Set(flashMsgKey, msg)
	if err := sess.Save(); err != nil {
		logger.Error("failed to save session: %v", err)
	}
}

// popFlash reads the flash once and clears it.
func (h *ProjectHandler) popFlash(c *fiber.Ctx) *Flash {
	sess, err := h.store.Get(c)
	if err != nil {
		return nil
	}
	kind, _ := sess.Get(flashTypeKey).(string)
	msg, _ := sess.Get(flashMsgKey).(string)
	if msg == "" {
		return nil
	}
	sess.Delete(flashTypeKey)
	sess.Delete(flashMsgKey)
	if err := sess.Save(); err != nil {
		logger.Error("failed to clear flash: %v", err)
	}
	return &Flash{Type: kind, Msg: msg}
}

// formFromRequest collects the raw submission. Status defaults to
// in_progress and pending amount to "0" only when the field is absent;
// present-but-invalid values go through validation and get rejected.
func formFromRequest(c *fiber.Ctx) validation.ProjectForm {
	status := c.FormValue("status")
	if strings.TrimSpace(status) == "" {
		status = models.StatusInProgress
	}
	pending := c.FormValue("pending_amount")
	if strings.TrimSpace(pending) == "" {
		pending = "0"
	}
	return validation.ProjectForm{
		ProjectName:   c.FormValue("project_name"),
		TotalAmount:   c.FormValue("total_amount"),
		ClientName:    c.FormValue("client_name"),
		DeliveryDate:  c.FormValue("delivery_date"),
		Status:        status,
		Notes:         c.FormValue("notes"),
		PendingAmount: pending,
	}
}

func formID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.Atoi(c.FormValue("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func storageError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).SendString("Storage error. Try again later.")
}
