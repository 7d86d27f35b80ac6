package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Heman1223/bhuvik-enterprises/internal/db"
	"github.com/Heman1223/bhuvik-enterprises/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type registrationRepository struct {
	db *sqlx.DB
}

func newRegistrationRepository(db *sqlx.DB) *registrationRepository {
	return &registrationRepository{
		db: db,
	}
}

const registrationColumns = `
	bin_to_uuid(id) as id, name, phone, email, gender, date_of_birth,
	college_name, course, specialization, year_of_passing, current_semester,
	key_skills, interested_job_role, preferred_location, has_experience,
	resume_path, resume_original_name, consent,
	payment_order_id, payment_id, payment_signature, payment_status, amount,
	serial_number, created_at
`

func (r *registrationRepository) CreatePaid(ctx context.Context, reg *domain.Registration, serialPrefix string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", errors.Join(domain.ErrSerialUnavailable, err))
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	year := reg.CreatedAt.Year()
	counter, err := nextSerial(ctx, tx, year)
	if err != nil {
		return err
	}
	reg.SerialNumber = FormatSerial(serialPrefix, year, counter)

	const query = `
		INSERT INTO registration (
			id, name, phone, email, gender, date_of_birth,
			college_name, course, specialization, year_of_passing, current_semester,
			key_skills, interested_job_role, preferred_location, has_experience,
			resume_path, resume_original_name, consent,
			payment_order_id, payment_id, payment_signature, payment_status, amount,
			serial_number, created_at
		) VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		reg.ID, reg.Name, reg.Phone, reg.Email, reg.Gender, reg.DateOfBirth,
		reg.CollegeName, reg.Course, reg.Specialization, reg.YearOfPassing, reg.CurrentSemester,
		reg.KeySkills, reg.InterestedJobRole, reg.PreferredLocation, reg.HasExperience,
		reg.ResumePath, reg.ResumeOriginalName, reg.Consent,
		reg.PaymentOrderID, reg.PaymentID, reg.PaymentSignature, reg.PaymentStatus, reg.Amount,
		reg.SerialNumber, reg.CreatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert registration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit registration tx: %w", err)
	}

	return nil
}

func (r *registrationRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Registration, error) {
	var reg domain.Registration
	const query = `SELECT ` + registrationColumns + ` FROM registration WHERE payment_order_id = ?`

	if err := r.db.GetContext(ctx, &reg, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select registration by order id: %w", err)
	}

	return &reg, nil
}

func (r *registrationRepository) GetAllPaid(ctx context.Context) ([]domain.Registration, error) {
	const query = `SELECT ` + registrationColumns + ` FROM registration WHERE payment_status = ? ORDER BY created_at DESC`

	var regs []domain.Registration
	if err := r.db.SelectContext(ctx, &regs, query, domain.PaymentStatusPaid); err != nil {
		return nil, fmt.Errorf("select paid registrations: %w", err)
	}

	return regs, nil
}
