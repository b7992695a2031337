package models

import "time"

type Warehouse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	TotalFloors int       `json:"totalFloors"`
	TotalUnits  int       `json:"totalUnits"`
	Status      string    `json:"status"` // active | inactive
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (w Warehouse) EntityID() int { return w.ID }

type CreateWarehouseRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	TotalFloors int    `json:"totalFloors"`
}
