package vehiclerepo

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause("vehicleNumber", dto.Number, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so cleared references and a released load
// reach the row.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause("vehicleNumber", dto.Number, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormVehicleRepository) ListAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *GormVehicleRepository) ListByZone(ctx context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}
	return r.list(r.db.WithContext(ctx).Where("zone_id = ?", zoneID.Bytes()))
}

func (r *GormVehicleRepository) ListByZoneForUpdate(
	ctx context.Context,
	zoneID kernel.UUID,
) ([]*vehicle.Vehicle, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}
	return r.list(r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("zone_id = ?", zoneID.Bytes()))
}

// Delete removes a vehicle that no order references, delivered history
// included; only CANCELLED orders are ignored. The vehicle row is locked
// before counting so an assignment in flight either commits first and is
// counted, or finds the row gone.
func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	if _, err := r.get(db.Clauses(clause.Locking{Strength: "UPDATE"}), id); err != nil {
		return err
	}

	var count int64
	if err := db.Table("orders").
		Where("vehicle_id = ? AND status <> ?", id.Bytes(), order.Cancelled.String()).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewDependentsExistError("vehicle", id.String(), "orders", count)
	}

	result := db.Delete(&VehicleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", id.String())
	}

	return nil
}

func (r *GormVehicleRepository) get(db *gorm.DB, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormVehicleRepository) list(db *gorm.DB) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := db.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}
