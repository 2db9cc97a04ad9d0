package common

import (
	"log"
	"time"
	"tpw/src/models"
	"tpw/src/models/scopes"
	"tpw/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncLeadStatus is the single authoritative status fan-out. It runs inside
// the caller's transaction: sets the lead's status, appends a follow-up
// history record, then overwrites the status of every package linked to the
// lead. Package status updates with a linked lead redirect through here so
// there is exactly one fan-out site.
//
// The follow-up append is best-effort: a failure there is logged and never
// fails the primary write. Sibling packages are last-write-wins.
func SyncLeadStatus(tx *gorm.DB, tenantID, leadID uuid.UUID, status types.LeadStatus, notes, createdBy string) error {
	updates := map[string]any{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}
	if err := tx.
		Model(&models.Lead{}).
		Scopes(scopes.WithTenant(tenantID), scopes.WithID(leadID)).
		Updates(updates).
		Error; err != nil {
		return err
	}

	followUp := models.LeadFollowUp{
		TenantID:     tenantID,
		LeadID:       leadID,
		FollowUpDate: time.Now(),
		Status:       status,
		Notes:        notes,
		CreatedBy:    createdBy,
	}
	// Nested transaction = savepoint, so a failed insert cannot poison the
	// enclosing transaction on Postgres.
	if err := tx.Transaction(func(stx *gorm.DB) error {
		return stx.Create(&followUp).Error
	}); err != nil {
		log.Printf("[status] follow-up append failed for lead %s: %s\n", leadID, err.Error())
	}

	if err := tx.
		Model(&models.TourPackage{}).
		Scopes(scopes.WithTenant(tenantID)).
		Where("lead_id = ?", leadID).
		Update("status", types.PackageStatus(status)).
		Error; err != nil {
		return err
	}
	return nil
}
