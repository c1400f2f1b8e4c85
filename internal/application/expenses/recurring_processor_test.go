package expenses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

func tpl(day int, active bool, lastRun *time.Time) *entity.RecurringExpense {
	return &entity.RecurringExpense{
		ID:         "tpl1",
		ClubID:     "club1",
		Amount:     decimal.NewFromInt(500),
		Category:   entity.ExpenseCategoryServices,
		DayOfMonth: day,
		Active:     active,
		LastRun:    lastRun,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

// Plantilla nunca corrida y con el día ya cumplido: vencida.
func TestIsDue_NuncaCorrida(t *testing.T) {
	now := date(2026, time.August, 15)

	assert.True(t, IsDue(tpl(15, true, nil), now), "el mismo día del mes ya cuenta")
	assert.True(t, IsDue(tpl(10, true, nil), now), "día pasado cuenta")
	assert.False(t, IsDue(tpl(20, true, nil), now), "día futuro no cuenta")
}

// Inactiva nunca vence, aunque el día haya pasado.
func TestIsDue_Inactiva(t *testing.T) {
	now := date(2026, time.August, 28)
	assert.False(t, IsDue(tpl(5, false, nil), now))
}

// Ya corrida este mes: no vuelve a vencer hasta el mes siguiente.
func TestIsDue_YaCorridaEsteMes(t *testing.T) {
	lastRun := date(2026, time.August, 5)
	now := date(2026, time.August, 20)
	assert.False(t, IsDue(tpl(5, true, &lastRun), now))
}

// Corrida el mes pasado: vuelve a vencer al llegar el día.
func TestIsDue_CorridaMesAnterior(t *testing.T) {
	lastRun := date(2026, time.July, 5)

	assert.True(t, IsDue(tpl(5, true, &lastRun), date(2026, time.August, 5)))
	assert.False(t, IsDue(tpl(5, true, &lastRun), date(2026, time.August, 4)), "antes del día no vence")
}

// Cambio de año: misma lógica de mes calendario, no de 30 días.
func TestIsDue_CambioDeAnio(t *testing.T) {
	lastRun := date(2025, time.December, 1)
	assert.True(t, IsDue(tpl(1, true, &lastRun), date(2026, time.January, 1)))
}

func TestIsDue_PlantillaNil(t *testing.T) {
	assert.False(t, IsDue(nil, time.Now()))
}

type memRecurringRepo struct {
	templates map[string]*entity.RecurringExpense
}

func (r *memRecurringRepo) Create(t *entity.RecurringExpense) error { r.templates[t.ID] = t; return nil }
func (r *memRecurringRepo) GetByID(id string) (*entity.RecurringExpense, error) {
	return r.templates[id], nil
}
func (r *memRecurringRepo) Update(t *entity.RecurringExpense) error { r.templates[t.ID] = t; return nil }
func (r *memRecurringRepo) Delete(id string) error                  { delete(r.templates, id); return nil }
func (r *memRecurringRepo) ListByClub(clubID string, limit, offset int) ([]*entity.RecurringExpense, error) {
	return nil, nil
}
func (r *memRecurringRepo) ListActive() ([]*entity.RecurringExpense, error) {
	var list []*entity.RecurringExpense
	for _, t := range r.templates {
		if t.Active {
			list = append(list, t)
		}
	}
	return list, nil
}
func (r *memRecurringRepo) MarkRun(id string, at time.Time) error {
	t := r.templates[id]
	t.LastRun = &at
	return nil
}

type memExpenseRepo struct {
	created []*entity.Expense
}

func (r *memExpenseRepo) Create(e *entity.Expense) error {
	if e.CreatedBy == "" {
		return errors.New("created_by vacío")
	}
	r.created = append(r.created, e)
	return nil
}
func (r *memExpenseRepo) GetByID(id string) (*entity.Expense, error) { return nil, nil }
func (r *memExpenseRepo) Update(e *entity.Expense) error             { return nil }
func (r *memExpenseRepo) Delete(id string) error                     { return nil }
func (r *memExpenseRepo) ListByClub(clubID string, from, to *time.Time, limit, offset int) ([]*entity.Expense, error) {
	return nil, nil
}
func (r *memExpenseRepo) ListByClubAndRange(clubID string, from, to time.Time) ([]entity.Expense, error) {
	return nil, nil
}

// El gasto materializado hereda los campos de la plantilla, incluido el
// usuario creador, y la plantilla queda marcada como corrida.
func TestProcessDue_MaterializaConCreador(t *testing.T) {
	template := tpl(5, true, nil)
	template.CreatedBy = "user1"
	template.Description = "arriendo local"
	template.Supplier = "inmobiliaria"
	templates := &memRecurringRepo{templates: map[string]*entity.RecurringExpense{template.ID: template}}
	repo := &memExpenseRepo{}
	now := date(2026, time.August, 10)

	created, err := NewRecurringProcessor(templates, repo).ProcessDue(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 1, created)
	require.Len(t, repo.created, 1)

	got := repo.created[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "club1", got.ClubID)
	assert.Equal(t, "user1", got.CreatedBy, "hereda el creador de la plantilla")
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, entity.ExpenseCategoryServices, got.Category)
	assert.Equal(t, "arriendo local", got.Description)
	assert.Equal(t, "inmobiliaria", got.Supplier)
	assert.True(t, got.IsRecurring)
	assert.Equal(t, now, got.Date)

	require.NotNil(t, template.LastRun)
	assert.Equal(t, now, *template.LastRun)
}

// Plantilla aún no vencida: no se crea nada ni se marca corrida.
func TestProcessDue_NoVencidaNoMaterializa(t *testing.T) {
	template := tpl(20, true, nil)
	template.CreatedBy = "user1"
	templates := &memRecurringRepo{templates: map[string]*entity.RecurringExpense{template.ID: template}}
	repo := &memExpenseRepo{}

	created, err := NewRecurringProcessor(templates, repo).ProcessDue(context.Background(), date(2026, time.August, 10))
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Empty(t, repo.created)
	assert.Nil(t, template.LastRun)
}

// Segunda corrida en el mismo mes: idempotente, no duplica el gasto.
func TestProcessDue_IdempotenteEnElMes(t *testing.T) {
	template := tpl(5, true, nil)
	template.CreatedBy = "user1"
	templates := &memRecurringRepo{templates: map[string]*entity.RecurringExpense{template.ID: template}}
	repo := &memExpenseRepo{}
	proc := NewRecurringProcessor(templates, repo)

	created, err := proc.ProcessDue(context.Background(), date(2026, time.August, 10))
	require.NoError(t, err)
	require.Equal(t, 1, created)

	created, err = proc.ProcessDue(context.Background(), date(2026, time.August, 11))
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Len(t, repo.created, 1)
}
