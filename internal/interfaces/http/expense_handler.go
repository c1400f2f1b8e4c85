package http

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/expenses"
	"github.com/tu-usuario/gestion-pro/pkg/metrics"
)

// ExpenseHandler maneja gastos, resumen por categorías, plantillas
// recurrentes y subida de comprobantes.
type ExpenseHandler struct {
	uc          *expenses.ExpenseUseCase
	summaryUC   *expenses.SummaryUseCase
	recurringUC *expenses.RecurringUseCase
	uploadDir   string
	uploadBase  string
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *expenses.ExpenseUseCase, summaryUC *expenses.SummaryUseCase, recurringUC *expenses.RecurringUseCase, uploadDir, uploadBase string) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, summaryUC: summaryUC, recurringUC: recurringUC, uploadDir: uploadDir, uploadBase: uploadBase}
}

// Create registra un gasto.
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category es requerida"})
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	out, err := h.uc.Create(c.UserContext(), GetClubID(c), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	metrics.ExpensesTotal.WithLabelValues(out.Category).Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un gasto.
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetClubID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un gasto.
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetClubID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un gasto.
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetClubID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List lista gastos con filtro opcional de fechas y paginación.
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to deben ser fechas RFC 3339"})
	}
	out, err := h.uc.List(GetClubID(c), from, to, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Summary devuelve el resumen por categorías del rango. Sin from/to, resume
// el mes calendario en curso.
func (h *ExpenseHandler) Summary(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to deben ser fechas RFC 3339"})
	}
	now := time.Now()
	if from == nil {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		from = &start
	}
	if to == nil {
		to = &now
	}
	out, err := h.summaryUC.Summarize(GetClubID(c), *from, *to)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UploadReceipt guarda el comprobante en disco y asocia su URL al gasto.
func (h *ExpenseHandler) UploadReceipt(c *fiber.Ctx) error {
	file, err := c.FormFile("receipt")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo multipart receipt es requerido"})
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".pdf", ".png", ".jpg", ".jpeg", ".webp":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de comprobante no soportado"})
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar el comprobante"})
	}

	out, err := h.uc.AttachReceipt(GetClubID(c), c.Params("id"), h.uploadBase+"/"+name)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// CreateRecurring crea una plantilla de gasto recurrente.
func (h *ExpenseHandler) CreateRecurring(c *fiber.Ctx) error {
	var in dto.CreateRecurringExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.recurringUC.Create(GetClubID(c), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRecurring lista plantillas recurrentes del club.
func (h *ExpenseHandler) ListRecurring(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.recurringUC.List(GetClubID(c), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeactivateRecurring desactiva una plantilla recurrente.
func (h *ExpenseHandler) DeactivateRecurring(c *fiber.Ctx) error {
	if err := h.recurringUC.Deactivate(GetClubID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
