package repository

import (
	"context"
	"database/sql"
	"errors"

	"recruit-api/core/database"
	"recruit-api/core/logger"
	"recruit-api/modules/availability/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=availability_repository.go -destination=availability_repository_mock.go -package=repository

// AvailabilityRepositoryInterface defines the repository contract
type AvailabilityRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Availability, error)
	Upsert(ctx context.Context, availability *entity.Availability) (*entity.Availability, error)
	AppendOccupied(ctx context.Context, userID uuid.UUID, slot entity.OccupiedSlot) error
}

// AvailabilityRepository stores one availability record per user (user_availability table)
type AvailabilityRepository struct {
	DB database.IDatabase
}

// NewAvailabilityRepository creates a new repository instance
func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

const availabilityColumns = `id, user_id, free_slots, occupied_slots, working_hours, blackout_dates, rules, created_at, updated_at`

// GetByUserID returns nil, nil when the user has no availability yet.
func (r *AvailabilityRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Availability, error) {
	query := `SELECT ` + availabilityColumns + ` FROM user_availability WHERE user_id = $1`

	var availability entity.Availability
	err := r.DB.GetContext(ctx, &availability, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("AvailabilityRepository:GetByUserID", "user_id", userID, "error", err)
		return nil, err
	}

	return &availability, nil
}

// Upsert writes the record in one statement. Concurrent writers race and the
// last one wins. Occupied slots are only taken from the argument when the row
// is created; after that AppendOccupied owns them, so a save built from a
// stale read cannot drop a booking.
func (r *AvailabilityRepository) Upsert(ctx context.Context, availability *entity.Availability) (*entity.Availability, error) {
	query := `
		INSERT INTO user_availability (user_id, free_slots, occupied_slots, working_hours, blackout_dates, rules)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			free_slots = EXCLUDED.free_slots,
			working_hours = EXCLUDED.working_hours,
			blackout_dates = EXCLUDED.blackout_dates,
			rules = EXCLUDED.rules,
			updated_at = NOW()
		RETURNING ` + availabilityColumns

	var saved entity.Availability
	err := r.DB.GetContext(ctx, &saved, query,
		availability.UserID, availability.FreeSlots, availability.OccupiedSlots,
		availability.WorkingHours, availability.BlackoutDates, availability.Rules)
	if err != nil {
		logger.Error("AvailabilityRepository:Upsert", "user_id", availability.UserID, "error", err)
		return nil, err
	}

	return &saved, nil
}

// AppendOccupied adds an occupied slot under a row lock. A slot whose id is
// already present is skipped so retried tasks do not duplicate it.
func (r *AvailabilityRepository) AppendOccupied(ctx context.Context, userID uuid.UUID, slot entity.OccupiedSlot) error {
	err := r.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO user_availability (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
		if err != nil {
			return err
		}

		var occupied entity.OccupiedSlots
		err = tx.GetContext(ctx, &occupied,
			`SELECT occupied_slots FROM user_availability WHERE user_id = $1 FOR UPDATE`, userID)
		if err != nil {
			return err
		}

		for _, existing := range occupied {
			if existing.ID == slot.ID {
				logger.Info("AvailabilityRepository:AppendOccupied:AlreadyPresent", "user_id", userID, "slot_id", slot.ID)
				return nil
			}
		}
		occupied = append(occupied, slot)

		_, err = tx.ExecContext(ctx,
			`UPDATE user_availability SET occupied_slots = $2, updated_at = NOW() WHERE user_id = $1`,
			userID, occupied)
		return err
	})
	if err != nil {
		logger.Error("AvailabilityRepository:AppendOccupied", "user_id", userID, "error", err)
		return err
	}

	return nil
}
