package expenses

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// RecurringProcessor materializa las plantillas de gasto recurrente en gastos
// reales. Lo dispara el scheduler una vez al día; también puede ejecutarse a
// demanda. Una plantilla está vencida cuando ya pasó su día del mes y aún no
// se ha corrido en este mes.
type RecurringProcessor struct {
	templates repository.RecurringExpenseRepository
	expenses  repository.ExpenseRepository
}

// NewRecurringProcessor construye el procesador.
func NewRecurringProcessor(templates repository.RecurringExpenseRepository, expenses repository.ExpenseRepository) *RecurringProcessor {
	return &RecurringProcessor{templates: templates, expenses: expenses}
}

// ProcessDue recorre las plantillas activas y crea los gastos vencidos.
// Devuelve cuántos gastos se crearon. Un fallo en una plantilla no detiene a
// las demás: se registra y se continúa.
func (p *RecurringProcessor) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	templates, err := p.templates.ListActive()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, tpl := range templates {
		if !IsDue(tpl, now) {
			continue
		}
		expense := &entity.Expense{
			ID:          uuid.New().String(),
			ClubID:      tpl.ClubID,
			Amount:      tpl.Amount,
			Category:    tpl.Category,
			Date:        now,
			Description: tpl.Description,
			Supplier:    tpl.Supplier,
			IsRecurring: true,
			CreatedBy:   tpl.CreatedBy,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := p.expenses.Create(expense); err != nil {
			log.Error().Err(err).Str("template_id", tpl.ID).Msg("crear gasto recurrente")
			continue
		}
		if err := p.templates.MarkRun(tpl.ID, now); err != nil {
			log.Error().Err(err).Str("template_id", tpl.ID).Msg("marcar plantilla ejecutada")
			continue
		}
		created++
	}
	log.Info().Int("created", created).Int("templates", len(templates)).Msg("gastos recurrentes procesados")
	return created, nil
}

// IsDue indica si la plantilla debe materializarse en la fecha dada: está
// activa, ya llegó su día del mes y no se ha corrido en este mes calendario.
func IsDue(tpl *entity.RecurringExpense, now time.Time) bool {
	if tpl == nil || !tpl.Active {
		return false
	}
	if now.Day() < tpl.DayOfMonth {
		return false
	}
	if tpl.LastRun == nil {
		return true
	}
	return tpl.LastRun.Year() != now.Year() || tpl.LastRun.Month() != now.Month()
}
