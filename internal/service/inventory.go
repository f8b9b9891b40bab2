package service

import (
	"context"
	"time"

	"bloodlink/internal/matching"
	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

// InventoryQuery filters inventory listings.
type InventoryQuery struct {
	HospitalID string
	BloodType  string
}

// InventoryView is a stock row with its severity.
type InventoryView struct {
	model.InventoryItem
	Severity string `json:"severity"`
}

// TypeSummary aggregates one blood type across hospitals.
type TypeSummary struct {
	Total     int `json:"total"`
	Hospitals int `json:"hospitals"`
}

// InventoryResult is the stock listing plus per-type totals.
type InventoryResult struct {
	Inventory []InventoryView        `json:"inventory"`
	Summary   map[string]TypeSummary `json:"summary"`
}

// UpdateInventoryInput overwrites the counts of one stock row.
type UpdateInventoryInput struct {
	ID             string `json:"id"`
	UnitsAvailable int    `json:"units_available"`
	UnitsReserved  int    `json:"units_reserved"`
}

// InventoryService reports and adjusts blood stock.
type InventoryService interface {
	List(ctx context.Context, q InventoryQuery) (*InventoryResult, error)
	Update(ctx context.Context, in UpdateInventoryInput) (*InventoryView, error)
}

type inventoryService struct {
	inventory repository.InventoryRepository
	now       func() time.Time
}

func NewInventoryService(inventory repository.InventoryRepository) InventoryService {
	return &inventoryService{inventory: inventory, now: time.Now}
}

func (s *inventoryService) List(ctx context.Context, q InventoryQuery) (*InventoryResult, error) {
	items, err := s.inventory.List(ctx, repository.InventoryFilter{HospitalID: q.HospitalID, BloodType: q.BloodType})
	if err != nil {
		return nil, err
	}

	res := &InventoryResult{
		Inventory: make([]InventoryView, 0, len(items)),
		Summary:   make(map[string]TypeSummary),
	}
	// Every type listed, even when out of stock everywhere.
	for _, bt := range matching.AllBloodTypes() {
		if q.BloodType == "" || q.BloodType == bt {
			res.Summary[bt] = TypeSummary{}
		}
	}
	for _, it := range items {
		res.Inventory = append(res.Inventory, InventoryView{InventoryItem: it, Severity: model.Severity(it.UnitsAvailable)})
		sum := res.Summary[it.BloodType]
		sum.Total += it.UnitsAvailable
		sum.Hospitals++
		res.Summary[it.BloodType] = sum
	}
	return res, nil
}

func (s *inventoryService) Update(ctx context.Context, in UpdateInventoryInput) (*InventoryView, error) {
	if in.ID == "" {
		return nil, ErrIDRequired
	}
	if in.UnitsAvailable < 0 || in.UnitsReserved < 0 {
		return nil, invalid("unit counts must not be negative")
	}
	it, err := s.inventory.UpdateUnits(ctx, in.ID, in.UnitsAvailable, in.UnitsReserved, s.now().UTC())
	if err != nil {
		return nil, notFound("inventory item", err)
	}
	return &InventoryView{InventoryItem: *it, Severity: model.Severity(it.UnitsAvailable)}, nil
}
