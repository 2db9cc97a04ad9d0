package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadStatus(t *testing.T) {
	cases := map[string]LeadStatus{
		"New":           LEAD_NEW,
		"Matured":       LEAD_MATURED,
		"TripConfirmed": LEAD_TRIP_CONFIRMED,
		// Legacy names remap, they never round-trip as-is.
		"FollowUp":          LEAD_FOLLOWUP,
		"CallbackScheduled": LEAD_FOLLOWUP,
		"PlanPostponed":     LEAD_FOLLOWUP,
		"PlanCanceled":      LEAD_TRIP_CANCELLED,
		"Confirmed":         LEAD_TRIP_CONFIRMED,
		"Contacted":         LEAD_FOLLOWUP,
		"Qualified":         LEAD_FOLLOWUP,
		"Converted":         LEAD_TRIP_CONFIRMED,
		"Lost":              LEAD_NOT_INTERESTED,
		// Unknown and empty fall back to New.
		"":        LEAD_NEW,
		"   ":     LEAD_NEW,
		"Bogus":   LEAD_NEW,
		"matured": LEAD_NEW,
	}
	for in, want := range cases {
		assert.Equalf(t, want, ParseLeadStatus(in), "input %q", in)
	}
}

func TestParsePackageStatus(t *testing.T) {
	cases := map[string]PackageStatus{
		"New":           PACKAGE_NEW,
		"PackageSent":   PACKAGE_PACKAGE_SENT,
		"FollowUp":      PACKAGE_FOLLOWUP,
		"PlanPostponed": PACKAGE_FOLLOWUP,
		"PlanCanceled":  PACKAGE_TRIP_CANCELLED,
		"Confirmed":     PACKAGE_TRIP_CONFIRMED,
		"Draft":         PACKAGE_FOLLOWUP,
		"Quoted":        PACKAGE_PACKAGE_SENT,
		"InProgress":    PACKAGE_FOLLOWUP,
		"Completed":     PACKAGE_TRIP_CONFIRMED,
		"Cancelled":     PACKAGE_TRIP_CANCELLED,
		"":              PACKAGE_NEW,
		"Bogus":         PACKAGE_NEW,
	}
	for in, want := range cases {
		assert.Equalf(t, want, ParsePackageStatus(in), "input %q", in)
	}
}

func TestLeadStatusScanRemapsLegacy(t *testing.T) {
	var s LeadStatus
	assert.NoError(t, s.Scan("PlanPostponed"))
	assert.Equal(t, LEAD_FOLLOWUP, s)

	assert.NoError(t, s.Scan([]byte("Lost")))
	assert.Equal(t, LEAD_NOT_INTERESTED, s)

	// Historical follow-up rows carry this one.
	assert.NoError(t, s.Scan("CallbackScheduled"))
	assert.Equal(t, LEAD_FOLLOWUP, s)

	assert.NoError(t, s.Scan(nil))
	assert.Equal(t, LEAD_NEW, s)
}

func TestPackageStatusScanRemapsLegacy(t *testing.T) {
	var s PackageStatus
	assert.NoError(t, s.Scan("Quoted"))
	assert.Equal(t, PACKAGE_PACKAGE_SENT, s)

	assert.NoError(t, s.Scan(nil))
	assert.Equal(t, PACKAGE_NEW, s)
}

func TestStatusValuePersistsCanonicalName(t *testing.T) {
	v, err := LEAD_TRIP_CONFIRMED.Value()
	assert.NoError(t, err)
	assert.Equal(t, "TripConfirmed", v)

	pv, err := PACKAGE_FOLLOWUP.Value()
	assert.NoError(t, err)
	assert.Equal(t, "Followup", pv)
}

func TestMealPlanLabel(t *testing.T) {
	assert.Equal(t, "MAP (Breakfast + Dinner)", MEAL_PLAN_MAP.Label())
	assert.Equal(t, "–", MealPlan("").Label())
}
