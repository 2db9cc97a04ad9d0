package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDs are assigned app-side so the same models work against Postgres and
// the in-memory sqlite used in tests.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (m *Plan) BeforeCreate(tx *gorm.DB) error              { ensureID(&m.ID); return nil }
func (m *Tenant) BeforeCreate(tx *gorm.DB) error            { ensureID(&m.ID); return nil }
func (m *User) BeforeCreate(tx *gorm.DB) error              { ensureID(&m.ID); return nil }
func (m *Lead) BeforeCreate(tx *gorm.DB) error              { ensureID(&m.ID); return nil }
func (m *LeadFollowUp) BeforeCreate(tx *gorm.DB) error      { ensureID(&m.ID); return nil }
func (m *Hotel) BeforeCreate(tx *gorm.DB) error             { ensureID(&m.ID); return nil }
func (m *AccommodationRate) BeforeCreate(tx *gorm.DB) error { ensureID(&m.ID); return nil }
func (m *TransportCompany) BeforeCreate(tx *gorm.DB) error  { ensureID(&m.ID); return nil }
func (m *Vehicle) BeforeCreate(tx *gorm.DB) error           { ensureID(&m.ID); return nil }
func (m *ItineraryTemplate) BeforeCreate(tx *gorm.DB) error { ensureID(&m.ID); return nil }
func (m *TourPackage) BeforeCreate(tx *gorm.DB) error       { ensureID(&m.ID); return nil }
func (m *DayItinerary) BeforeCreate(tx *gorm.DB) error      { ensureID(&m.ID); return nil }
func (m *Payment) BeforeCreate(tx *gorm.DB) error           { ensureID(&m.ID); return nil }
