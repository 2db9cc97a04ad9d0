package types

import (
	"database/sql/driver"
	"strings"
)

// LeadStatus is the shared sales-pipeline state for leads, packages and
// follow-up history. Stored as its textual name; legacy names from older
// rows are remapped on load so historical data keeps working.
type LeadStatus string

const (
	LEAD_MATURED        LeadStatus = "Matured"
	LEAD_NOT_INTERESTED LeadStatus = "NotInterested"
	LEAD_NO_RESPONSE    LeadStatus = "NoResponse"
	LEAD_TRIP_CANCELLED LeadStatus = "TripCancelled"
	LEAD_TRIP_CONFIRMED LeadStatus = "TripConfirmed"
	LEAD_PACKAGE_SENT   LeadStatus = "PackageSent"
	LEAD_FOLLOWUP       LeadStatus = "Followup"
	LEAD_ALREADY_BOOKED LeadStatus = "AlreadyBooked"
	LEAD_NEW            LeadStatus = "New"
)

type PackageStatus string

const (
	PACKAGE_MATURED        PackageStatus = "Matured"
	PACKAGE_NOT_INTERESTED PackageStatus = "NotInterested"
	PACKAGE_NO_RESPONSE    PackageStatus = "NoResponse"
	PACKAGE_TRIP_CANCELLED PackageStatus = "TripCancelled"
	PACKAGE_TRIP_CONFIRMED PackageStatus = "TripConfirmed"
	PACKAGE_PACKAGE_SENT   PackageStatus = "PackageSent"
	PACKAGE_FOLLOWUP       PackageStatus = "Followup"
	PACKAGE_ALREADY_BOOKED PackageStatus = "AlreadyBooked"
	PACKAGE_NEW            PackageStatus = "New"
)

// Legacy status names that older rows may still carry. Ported as-is from the
// historical migration tables; do not re-derive.
var leadStatusLegacy = map[string]LeadStatus{
	"FollowUp":          LEAD_FOLLOWUP,
	"CallbackScheduled": LEAD_FOLLOWUP,
	"PlanPostponed":     LEAD_FOLLOWUP,
	"PlanCanceled":      LEAD_TRIP_CANCELLED,
	"Confirmed":         LEAD_TRIP_CONFIRMED,
	"Contacted":         LEAD_FOLLOWUP,
	"Qualified":         LEAD_FOLLOWUP,
	"Converted":         LEAD_TRIP_CONFIRMED,
	"Lost":              LEAD_NOT_INTERESTED,
}

var packageStatusLegacy = map[string]PackageStatus{
	"FollowUp":      PACKAGE_FOLLOWUP,
	"PlanPostponed": PACKAGE_FOLLOWUP,
	"PlanCanceled":  PACKAGE_TRIP_CANCELLED,
	"Confirmed":     PACKAGE_TRIP_CONFIRMED,
	"Draft":         PACKAGE_FOLLOWUP,
	"Quoted":        PACKAGE_PACKAGE_SENT,
	"InProgress":    PACKAGE_FOLLOWUP,
	"Completed":     PACKAGE_TRIP_CONFIRMED,
	"Cancelled":     PACKAGE_TRIP_CANCELLED,
}

var leadStatusNames = map[string]LeadStatus{
	"Matured":       LEAD_MATURED,
	"NotInterested": LEAD_NOT_INTERESTED,
	"NoResponse":    LEAD_NO_RESPONSE,
	"TripCancelled": LEAD_TRIP_CANCELLED,
	"TripConfirmed": LEAD_TRIP_CONFIRMED,
	"PackageSent":   LEAD_PACKAGE_SENT,
	"Followup":      LEAD_FOLLOWUP,
	"AlreadyBooked": LEAD_ALREADY_BOOKED,
	"New":           LEAD_NEW,
}

func ParseLeadStatus(value string) LeadStatus {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return LEAD_NEW
	}
	if s, ok := leadStatusNames[normalized]; ok {
		return s
	}
	if s, ok := leadStatusLegacy[normalized]; ok {
		return s
	}
	return LEAD_NEW
}

func ParsePackageStatus(value string) PackageStatus {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return PACKAGE_NEW
	}
	if s, ok := leadStatusNames[normalized]; ok {
		return PackageStatus(s)
	}
	if s, ok := packageStatusLegacy[normalized]; ok {
		return s
	}
	return PACKAGE_NEW
}

func (s LeadStatus) Value() (driver.Value, error) {
	return string(s), nil
}
func (s *LeadStatus) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		*s = ParseLeadStatus(string(v))
	case string:
		*s = ParseLeadStatus(v)
	case nil:
		*s = LEAD_NEW
	}
	return nil
}

func (s PackageStatus) Value() (driver.Value, error) {
	return string(s), nil
}
func (s *PackageStatus) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		*s = ParsePackageStatus(string(v))
	case string:
		*s = ParsePackageStatus(v)
	case nil:
		*s = PACKAGE_NEW
	}
	return nil
}
