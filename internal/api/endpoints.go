package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"warehub/internal/models"
)

func listQuery(search, filter string) url.Values {
	q := url.Values{}
	if strings.TrimSpace(search) != "" {
		q.Set("search", strings.TrimSpace(search))
	}
	if filter != "" && filter != "all" {
		q.Set("status", filter)
	}
	return q
}

func (c *Client) listKeyed(ctx context.Context, path, key, search, filter string, out interface{}) error {
	data, err := c.do(ctx, "GET", path, listQuery(search, filter), nil)
	if err != nil {
		return err
	}
	return decodeKeyed(data, key, out)
}

// --- Warehouses ---

func (c *Client) ListWarehouses(ctx context.Context, search, filter string) ([]models.Warehouse, error) {
	var out []models.Warehouse
	err := c.listKeyed(ctx, "/warehouses", "warehouses", search, filter, &out)
	return out, err
}

func (c *Client) CreateWarehouse(ctx context.Context, req models.CreateWarehouseRequest) (*models.Warehouse, error) {
	var out models.Warehouse
	if err := c.post(ctx, "/warehouses", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateWarehouse(ctx context.Context, id int, req models.CreateWarehouseRequest) (*models.Warehouse, error) {
	var out models.Warehouse
	if err := c.patch(ctx, fmt.Sprintf("/warehouses/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWarehouse(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/warehouses/%d", id))
}

// --- Storage units ---

func (c *Client) ListUnits(ctx context.Context, search, filter string) ([]models.StorageUnit, error) {
	var out []models.StorageUnit
	err := c.listKeyed(ctx, "/units", "", search, filter, &out)
	return out, err
}

func (c *Client) CreateUnit(ctx context.Context, req models.CreateStorageUnitRequest) (*models.StorageUnit, error) {
	var out models.StorageUnit
	if err := c.post(ctx, "/units", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUnit(ctx context.Context, id int, req models.CreateStorageUnitRequest) (*models.StorageUnit, error) {
	var out models.StorageUnit
	if err := c.patch(ctx, fmt.Sprintf("/units/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUnit(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/units/%d", id))
}

// --- Bookings ---

func (c *Client) ListBookings(ctx context.Context, search, filter string) ([]models.Booking, error) {
	var out []models.Booking
	err := c.listKeyed(ctx, "/bookings", "", search, filter, &out)
	return out, err
}

func (c *Client) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	var out models.Booking
	if err := c.post(ctx, "/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id int, req models.CreateBookingRequest) (*models.Booking, error) {
	var out models.Booking
	if err := c.patch(ctx, fmt.Sprintf("/bookings/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/bookings/%d", id))
}

// --- Payments ---

func (c *Client) ListPayments(ctx context.Context, search, filter string) ([]models.Payment, error) {
	var out []models.Payment
	err := c.listKeyed(ctx, "/payments", "", search, filter, &out)
	return out, err
}

func (c *Client) CreatePayment(ctx context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	var out models.Payment
	if err := c.post(ctx, "/payments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePayment(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/payments/%d", id))
}

// --- Users ---

func (c *Client) ListUsers(ctx context.Context, search, filter string) ([]models.User, error) {
	var out []models.User
	err := c.listKeyed(ctx, "/users", "users", search, filter, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	var out models.User
	if err := c.post(ctx, "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, req models.CreateUserRequest) (*models.User, error) {
	var out models.User
	if err := c.patch(ctx, fmt.Sprintf("/users/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id))
}

// --- Reports ---

// OccupancyReport fetches the full, non-paginated occupancy report payload.
func (c *Client) OccupancyReport(ctx context.Context) (*models.OccupancyReport, error) {
	data, err := c.do(ctx, "GET", "/reports/occupancy", nil, nil)
	if err != nil {
		return nil, err
	}
	var out models.OccupancyReport
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: decoding report: %v", ErrRequestFailed, err)
	}
	return &out, nil
}
