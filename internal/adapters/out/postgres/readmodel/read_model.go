// Package readmodel answers package and warehouse queries with plain SQL over
// the tables owned by packagerepo and warehouserepo.
package readmodel

import (
	"context"
	"database/sql"
	"errors"

	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	_ queries.PackageReader   = &ReadModel{}
	_ queries.WarehouseReader = &ReadModel{}
)

const selectPackages = `
	SELECT
		p.id,
		p.tracking_number,
		p.address,
		p.status,
		p.slot_id,
		s.name,
		s.warehouse_id,
		w.name
	FROM packages p
	LEFT JOIN slots s ON s.id = p.slot_id
	LEFT JOIN warehouses w ON w.id = s.warehouse_id
`

const selectSlots = `
	SELECT
		s.id,
		s.warehouse_id,
		s.name,
		s.package_id,
		p.tracking_number,
		p.address
	FROM slots s
	LEFT JOIN packages p ON p.id = s.package_id
`

// ReadModel reads committed rows. It never takes locks.
type ReadModel struct {
	db *gorm.DB
}

func NewReadModel(db *gorm.DB) *ReadModel {
	return &ReadModel{db: db}
}

func (m *ReadModel) GetPackage(ctx context.Context, id kernel.UUID) (queries.PackageResponse, bool, error) {
	if err := id.Validate(); err != nil {
		return queries.PackageResponse{}, false, err
	}

	packages, err := m.packages(ctx, selectPackages+`WHERE p.id = ?`, id.Raw())
	if err != nil {
		return queries.PackageResponse{}, false, err
	}
	if len(packages) == 0 {
		return queries.PackageResponse{}, false, nil
	}
	return packages[0], true, nil
}

func (m *ReadModel) ListPackages(ctx context.Context) ([]queries.PackageResponse, error) {
	return m.packages(ctx, selectPackages+`ORDER BY p.tracking_number, p.id`)
}

func (m *ReadModel) ListStoredPackages(ctx context.Context, warehouseID kernel.UUID) ([]queries.PackageResponse, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	return m.packages(ctx,
		selectPackages+`WHERE p.status = ? AND s.warehouse_id = ? ORDER BY s.name`,
		int(parcel.InStorage), warehouseID.Raw(),
	)
}

func (m *ReadModel) GetWarehouse(ctx context.Context, id kernel.UUID) (queries.WarehouseResponse, bool, error) {
	if err := id.Validate(); err != nil {
		return queries.WarehouseResponse{}, false, err
	}

	warehouses, err := m.warehouses(ctx, `WHERE id = ?`, id.Raw())
	if err != nil {
		return queries.WarehouseResponse{}, false, err
	}
	if len(warehouses) == 0 {
		return queries.WarehouseResponse{}, false, nil
	}
	return warehouses[0], true, nil
}

func (m *ReadModel) ListWarehouses(ctx context.Context) ([]queries.WarehouseResponse, error) {
	return m.warehouses(ctx, `ORDER BY name, id`)
}

func (m *ReadModel) packages(ctx context.Context, query string, args ...any) ([]queries.PackageResponse, error) {
	rows, err := m.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]queries.PackageResponse, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			status        int
			slotID        *uuid.UUID
			slotName      sql.NullString
			warehouseID   *uuid.UUID
			warehouseName sql.NullString
			resp          queries.PackageResponse
		)

		err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&resp.Address,
			&status,
			&slotID,
			&slotName,
			&warehouseID,
			&warehouseName,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		resp.Status = parcel.Status(status)
		if resp.SlotID, err = optionalID(slotID); err != nil {
			return nil, err
		}
		if resp.WarehouseID, err = optionalID(warehouseID); err != nil {
			return nil, err
		}
		resp.SlotName = slotName.String
		resp.WarehouseName = warehouseName.String

		packages = append(packages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return packages, nil
}

func (m *ReadModel) warehouses(ctx context.Context, filter string, args ...any) ([]queries.WarehouseResponse, error) {
	rows, err := m.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			latitude,
			longitude
		FROM warehouses
	`+filter, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	warehouses := make([]queries.WarehouseResponse, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id                  uuid.UUID
			latitude, longitude decimal.Decimal
			resp                queries.WarehouseResponse
		)

		if err = rows.Scan(&id, &resp.Name, &latitude, &longitude); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if resp.Coordinates, err = kernel.NewCoordinates(latitude, longitude); err != nil {
			return nil, err
		}
		resp.Slots = make([]queries.SlotResponse, 0)

		index[id] = len(warehouses)
		warehouses = append(warehouses, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(warehouses) == 0 {
		return warehouses, nil
	}

	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	slots, err := m.slots(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range slots {
		i, ok := index[s.WarehouseID.Raw()]
		if !ok {
			return nil, errors.New("slot references an unknown warehouse")
		}
		warehouses[i].Slots = append(warehouses[i].Slots, s)
	}

	return warehouses, nil
}

func (m *ReadModel) slots(ctx context.Context, warehouseIDs []uuid.UUID) ([]queries.SlotResponse, error) {
	rows, err := m.db.WithContext(ctx).
		Raw(selectSlots+`WHERE s.warehouse_id IN ? ORDER BY s.name`, warehouseIDs).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]queries.SlotResponse, 0)
	for rows.Next() {
		var (
			id, warehouseID uuid.UUID
			packageID       *uuid.UUID
			trackingNumber  sql.NullString
			address         sql.NullString
			resp            queries.SlotResponse
		)

		if err = rows.Scan(&id, &warehouseID, &resp.Name, &packageID, &trackingNumber, &address); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if resp.WarehouseID, err = kernel.UUIDFrom(warehouseID); err != nil {
			return nil, err
		}
		if resp.PackageID, err = optionalID(packageID); err != nil {
			return nil, err
		}
		resp.PackageTrackingNumber = trackingNumber.String
		resp.PackageAddress = address.String

		slots = append(slots, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}

func optionalID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFrom(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
