package warehouserepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/pkg/errs"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLocationRepository creates a new GORM warehouse location repository.
func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new warehouse location to the database.
func (r *GormLocationRepository) Add(ctx context.Context, aggregate *warehouse.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing warehouse location to the database.
// Select("*") forces the used volume to persist even when it drops to zero,
// which gorm's zero-value handling would otherwise skip.
func (r *GormLocationRepository) Update(ctx context.Context, aggregate *warehouse.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LocationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a warehouse location by ID.
func (r *GormLocationRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Location, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a warehouse location and locks its row until the
// surrounding transaction completes. Concurrent allocations against the same
// location serialize on this lock, so the capacity check and the write are
// one atomic step.
func (r *GormLocationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Location, error) {
	locked := r.db.Clauses(clause.Locking{Strength: "UPDATE"})
	return r.get(ctx, locked, id)
}

func (r *GormLocationRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*warehouse.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locationId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a warehouse location by its unique code.
func (r *GormLocationRepository) GetByCode(ctx context.Context, code string) (*warehouse.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}
