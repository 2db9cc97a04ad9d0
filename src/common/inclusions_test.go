package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInclusionCatalogSize(t *testing.T) {
	assert.Len(t, InclusionCatalog, 12)
}

func TestInclusionLabelsPartition(t *testing.T) {
	selected := []string{"shikara_1hr", "toll_tax_driver", "health_insurance"}
	inc := InclusionLabels(selected)
	exc := ExclusionLabels(selected)

	assert.Len(t, inc, 3)
	assert.Len(t, exc, len(InclusionCatalog)-3)
	// Every catalog entry lands on exactly one side.
	assert.Len(t, append(inc, exc...), len(InclusionCatalog))
}

func TestInclusionLabelsCatalogOrder(t *testing.T) {
	// Selection order does not matter, catalog order wins.
	inc := InclusionLabels([]string{"gondola_phase1", "shikara_1hr"})
	assert.Equal(t, []string{
		"01 hour Shikara Ride; Complementary",
		"Gondola tickets for phase 1",
	}, inc)
}

func TestInclusionLabelsCaseInsensitive(t *testing.T) {
	inc := InclusionLabels([]string{"SHIKARA_1HR", "Gondola_Phase2"})
	assert.Len(t, inc, 2)
}

func TestInclusionLabelsUnknownIdsIgnored(t *testing.T) {
	inc := InclusionLabels([]string{"helicopter_ride", "shikara_1hr"})
	assert.Equal(t, []string{"01 hour Shikara Ride; Complementary"}, inc)
	// Unknown ids do not shrink the exclusion side either.
	assert.Len(t, ExclusionLabels([]string{"helicopter_ride"}), len(InclusionCatalog))
}

func TestInclusionLabelsEmptySelection(t *testing.T) {
	inc := InclusionLabels(nil)
	assert.NotNil(t, inc)
	assert.Empty(t, inc)
	assert.Len(t, ExclusionLabels(nil), len(InclusionCatalog))
}
