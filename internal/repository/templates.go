package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/schedule"
	"github.com/google/uuid"
)

// CreateBulkTemplate stores a submitted generation spec. Templates arrive
// pending approval; drafts never reach the database.
func (r *Repository) CreateBulkTemplate(ctx context.Context, spec domain.GenerationSpec) (*domain.BulkShiftTemplate, error) {
	ctx, cancel := r.txCtx(ctx)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	tpl := &domain.BulkShiftTemplate{
		ID:     uuid.New().String(),
		Status: domain.TemplatePendingApproval,
		Spec:   spec,
	}

	query := `
		INSERT INTO bulk_templates (id, location_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, version
	`
	params := []any{tpl.ID, spec.LocationID, spec.StartDate, spec.EndDate, tpl.Status}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&tpl.CreatedAt, &tpl.Version); err != nil {
		return nil, err
	}

	for _, slot := range spec.Slots {
		var slotID int64
		query = `
			INSERT INTO bulk_template_slots (template_id, start_time, end_time, shift_type)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		params = []any{tpl.ID, slot.StartTime, slot.EndTime, slot.ShiftType}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&slotID); err != nil {
			return nil, err
		}

		for _, day := range slot.ApplicableDays {
			query = `
				INSERT INTO bulk_template_slot_days (slot_id, day)
				VALUES ($1, $2)
			`
			if _, err := tx.ExecContext(ctx, query, slotID, day); err != nil {
				return nil, err
			}
		}

		for position, employeeID := range slot.EmployeeIDs {
			query = `
				INSERT INTO bulk_template_slot_employees (slot_id, employee_id, position)
				VALUES ($1, $2, $3)
			`
			if _, err := tx.ExecContext(ctx, query, slotID, employeeID, position); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return tpl, nil
}

// ApproveBulkTemplate transitions a pending template to approved and fans its
// generation spec out into concrete shifts, all in one transaction. The
// status guard in the UPDATE makes approval of a non-pending template fail
// with sql.ErrNoRows.
func (r *Repository) ApproveBulkTemplate(ctx context.Context, templateID string) (*schedule.ApprovalResult, error) {
	tpl, err := r.GetBulkTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.txCtx(ctx)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE bulk_templates
		SET status = $1, version = version + 1
		WHERE id = $2 AND status = $3
		RETURNING version
	`
	var version int32
	params := []any{domain.TemplateApproved, templateID, domain.TemplatePendingApproval}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&version); err != nil {
		return nil, err
	}

	createdIDs := make([]string, 0)
	for _, date := range datesInRange(tpl.Spec.StartDate, tpl.Spec.EndDate) {
		for _, slot := range tpl.Spec.Slots {
			if !slotAppliesTo(slot, date) {
				continue
			}

			shift := domain.Shift{
				ID:                  uuid.New().String(),
				LocationID:          tpl.Spec.LocationID,
				Date:                date.Format(dateLayout),
				StartTime:           slot.StartTime,
				EndTime:             slot.EndTime,
				ShiftType:           slot.ShiftType,
				AssignedEmployeeIDs: slot.EmployeeIDs,
				Status:              domain.ShiftScheduled,
			}
			if err := insertShiftTx(ctx, tx, &shift); err != nil {
				return nil, err
			}

			query = `
				INSERT INTO bulk_template_created_shifts (template_id, shift_id)
				VALUES ($1, $2)
			`
			if _, err := tx.ExecContext(ctx, query, templateID, shift.ID); err != nil {
				return nil, err
			}

			createdIDs = append(createdIDs, shift.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &schedule.ApprovalResult{CreatedShiftIDs: createdIDs}, nil
}

// RejectBulkTemplate transitions a pending template to rejected. No shifts
// are created.
func (r *Repository) RejectBulkTemplate(ctx context.Context, templateID, reason string) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE bulk_templates
		SET status = $1, rejection_reason = $2, version = version + 1
		WHERE id = $3 AND status = $4
		RETURNING version
	`
	var version int32
	params := []any{domain.TemplateRejected, reason, templateID, domain.TemplatePendingApproval}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) ListBulkTemplates(ctx context.Context, status domain.TemplateStatus) ([]*domain.BulkShiftTemplate, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		SELECT id, location_id, start_date, end_date, status, COALESCE(rejection_reason, ''), created_at, version
		FROM bulk_templates
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.BulkShiftTemplate, 0)
	for rows.Next() {
		tpl := &domain.BulkShiftTemplate{}
		dst := []any{&tpl.ID, &tpl.Spec.LocationID, &tpl.Spec.StartDate, &tpl.Spec.EndDate, &tpl.Status, &tpl.RejectionReason, &tpl.CreatedAt, &tpl.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, tpl := range templates {
		if err := r.loadTemplateDetails(ctx, tpl); err != nil {
			return nil, err
		}
	}

	return templates, nil
}

func (r *Repository) GetBulkTemplateByID(ctx context.Context, templateID string) (*domain.BulkShiftTemplate, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		SELECT location_id, start_date, end_date, status, COALESCE(rejection_reason, ''), created_at, version
		FROM bulk_templates WHERE id = $1
	`

	tpl := &domain.BulkShiftTemplate{ID: templateID}
	dst := []any{&tpl.Spec.LocationID, &tpl.Spec.StartDate, &tpl.Spec.EndDate, &tpl.Status, &tpl.RejectionReason, &tpl.CreatedAt, &tpl.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, templateID).Scan(dst...); err != nil {
		return nil, err
	}

	if err := r.loadTemplateDetails(ctx, tpl); err != nil {
		return nil, err
	}

	return tpl, nil
}

// loadTemplateDetails fills in a template's slots (with applicable days and
// pre-assigned employees) and, for approved templates, the created shift ids.
func (r *Repository) loadTemplateDetails(ctx context.Context, tpl *domain.BulkShiftTemplate) error {
	query := `
		SELECT
			s.id,
			s.start_time,
			s.end_time,
			s.shift_type,
			sd.day
		FROM bulk_template_slots s
		LEFT JOIN bulk_template_slot_days sd ON s.id = sd.slot_id
		WHERE s.template_id = $1
		ORDER BY s.id, sd.day
	`

	rows, err := r.dbpool.QueryContext(ctx, query, tpl.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	slotsMap := make(map[int64]*domain.SlotSpec)
	slotOrder := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID        int64
			StartTime string
			EndTime   string
			ShiftType string
			Day       sql.NullInt32
		}
		if err := rows.Scan(&row.ID, &row.StartTime, &row.EndTime, &row.ShiftType, &row.Day); err != nil {
			return err
		}

		slot, exists := slotsMap[row.ID]
		if !exists {
			slot = &domain.SlotSpec{
				StartTime:      row.StartTime,
				EndTime:        row.EndTime,
				ShiftType:      row.ShiftType,
				EmployeeIDs:    make([]int64, 0),
				ApplicableDays: make([]int32, 0),
			}
			slotsMap[row.ID] = slot
			slotOrder = append(slotOrder, row.ID)
		}

		if !row.Day.Valid {
			continue
		}
		slot.ApplicableDays = append(slot.ApplicableDays, row.Day.Int32)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	employeeRows, err := r.dbpool.QueryContext(ctx, `
		SELECT slot_id, employee_id
		FROM bulk_template_slot_employees
		WHERE slot_id IN (SELECT id FROM bulk_template_slots WHERE template_id = $1)
		ORDER BY slot_id, position
	`, tpl.ID)
	if err != nil {
		return err
	}
	defer employeeRows.Close()

	for employeeRows.Next() {
		var slotID, employeeID int64
		if err := employeeRows.Scan(&slotID, &employeeID); err != nil {
			return err
		}
		if slot, exists := slotsMap[slotID]; exists {
			slot.EmployeeIDs = append(slot.EmployeeIDs, employeeID)
		}
	}
	if err := employeeRows.Err(); err != nil {
		return err
	}

	tpl.Spec.Slots = make([]domain.SlotSpec, 0, len(slotOrder))
	for _, slotID := range slotOrder {
		tpl.Spec.Slots = append(tpl.Spec.Slots, *slotsMap[slotID])
	}

	if tpl.Status != domain.TemplateApproved {
		return nil
	}

	createdRows, err := r.dbpool.QueryContext(ctx, `
		SELECT shift_id FROM bulk_template_created_shifts WHERE template_id = $1 ORDER BY shift_id
	`, tpl.ID)
	if err != nil {
		return err
	}
	defer createdRows.Close()

	tpl.CreatedShiftIDs = make([]string, 0)
	for createdRows.Next() {
		var shiftID string
		if err := createdRows.Scan(&shiftID); err != nil {
			return err
		}
		tpl.CreatedShiftIDs = append(tpl.CreatedShiftIDs, shiftID)
	}

	return createdRows.Err()
}

const dateLayout = "2006-01-02"

func datesInRange(start, end string) []time.Time {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil
	}

	dates := make([]time.Time, 0)
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// slotAppliesTo matches a date against a slot's ISO weekdays (1 = Monday).
func slotAppliesTo(slot domain.SlotSpec, date time.Time) bool {
	iso := int32((int(date.Weekday())+6)%7 + 1)
	for _, day := range slot.ApplicableDays {
		if day == iso {
			return true
		}
	}
	return false
}
