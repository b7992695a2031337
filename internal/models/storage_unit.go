package models

import "time"

// Unit status values as returned by the API.
const (
	UnitStatusAvailable   = "available"
	UnitStatusOccupied    = "occupied"
	UnitStatusMaintenance = "maintenance"
)

type StorageUnit struct {
	ID            int       `json:"id"`
	WarehouseID   int       `json:"warehouseId"`
	WarehouseName string    `json:"warehouseName,omitempty"` // joined server-side
	Name          string    `json:"name"`
	Floor         string    `json:"floor"`
	SizeSqft      float64   `json:"sizeSqft"`
	MonthlyRate   string    `json:"monthlyRate"` // decimal string, e.g. "249.99"
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (u StorageUnit) EntityID() int { return u.ID }

type CreateStorageUnitRequest struct {
	WarehouseID int     `json:"warehouseId"`
	Name        string  `json:"name"`
	Floor       string  `json:"floor"`
	SizeSqft    float64 `json:"sizeSqft"`
	MonthlyRate string  `json:"monthlyRate"`
}
