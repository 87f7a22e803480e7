package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/service"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

const (
	csvFileName  = "hr_employees.csv"
	xlsxFileName = "hr_employees.xlsx"
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// EmployeesHandler exposes the roster endpoints.
type EmployeesHandler struct {
	roster         *service.RosterService
	importMaxBytes int
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(roster *service.RosterService, importMaxBytes int) *EmployeesHandler {
	return &EmployeesHandler{roster: roster, importMaxBytes: importMaxBytes}
}

// List handles GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	var q dto.EmployeeListQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	items := h.roster.List(c.UserContext(), q.Criteria())
	return c.JSON(fiber.Map{"data": dto.EmployeeListResponse{Items: items, Count: len(items)}})
}

// New handles GET /api/employees/new, returning an unsaved record with current defaults.
func (h *EmployeesHandler) New(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.roster.Draft(c.UserContext())})
}

// Get handles GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	emp, err := h.roster.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": emp})
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var emp domain.Employee
	if err := c.BodyParser(&emp); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return h.save(c, emp)
}

// Update handles PUT /api/employees/:id. The path id wins over any id in the body.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	var emp domain.Employee
	if err := c.BodyParser(&emp); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	emp.ID = c.Params("id")
	return h.save(c, emp)
}

func (h *EmployeesHandler) save(c *fiber.Ctx, emp domain.Employee) error {
	saved, created, err := h.roster.Save(c.UserContext(), auth.RoleFromContext(c), emp)
	if err != nil {
		return err
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": saved})
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	if err := h.roster.Delete(c.UserContext(), auth.RoleFromContext(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// PendingCheckins handles GET /api/employees/checkins/pending.
func (h *EmployeesHandler) PendingCheckins(c *fiber.Ctx) error {
	items := h.roster.NeedsCheckin(c.UserContext())
	return c.JSON(fiber.Map{"data": dto.EmployeeListResponse{Items: items, Count: len(items)}})
}

// Import handles POST /api/employees/import. The file is taken from the multipart field
// "file" when present, otherwise from the raw request body.
func (h *EmployeesHandler) Import(c *fiber.Ctx) error {
	data, err := h.readUpload(c)
	if err != nil {
		return err
	}
	summary, err := h.roster.Import(c.UserContext(), auth.RoleFromContext(c), data)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

func (h *EmployeesHandler) readUpload(c *fiber.Ctx) ([]byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		body := c.Body()
		if h.importMaxBytes > 0 && len(body) > h.importMaxBytes {
			return nil, tooLarge(h.importMaxBytes)
		}
		return append([]byte(nil), body...), nil
	}
	if h.importMaxBytes > 0 && header.Size > int64(h.importMaxBytes) {
		return nil, tooLarge(h.importMaxBytes)
	}

	f, err := header.Open()
	if err != nil {
		return nil, apperrors.NewImportError(apperrors.CodeImportInvalidFile, "file is empty or invalid", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, f); err != nil {
		return nil, apperrors.NewImportError(apperrors.CodeImportInvalidFile, "file is empty or invalid", err)
	}
	return buf.Bytes(), nil
}

func tooLarge(limit int) error {
	return apperrors.NewDomainError(apperrors.CodeImportInvalidFile, "file exceeds the import size limit",
		http.StatusRequestEntityTooLarge, map[string]any{"max_bytes": limit})
}

// ExportCSV handles GET /api/employees/export.csv.
func (h *EmployeesHandler) ExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.roster.Export(c.UserContext(), &buf); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Attachment(csvFileName)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}

// ExportXLSX handles GET /api/employees/export.xlsx.
func (h *EmployeesHandler) ExportXLSX(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.roster.ExportXLSX(c.UserContext(), &buf); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Attachment(xlsxFileName)
	c.Set(fiber.HeaderContentType, xlsxMIME)
	return c.Send(buf.Bytes())
}
