package common

import "strings"

// InclusionOption is one entry of the fixed inclusion catalog. Selected ids
// render as Inclusions in the proposal document, unselected as Excludes.
// Must match the frontend INCLUSION_OPTIONS list.
type InclusionOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var InclusionCatalog = []InclusionOption{
	{ID: "shikara_1hr", Label: "01 hour Shikara Ride; Complementary"},
	{ID: "toll_tax_driver", Label: "Toll tax diesel parking and driver allowances"},
	{ID: "gondola_phase1", Label: "Gondola tickets for phase 1"},
	{ID: "gondola_phase2", Label: "Gondola tickets for phase 2"},
	{ID: "mugal_gardens", Label: "Entry tickets of Srinagar Mughal Gardens"},
	{ID: "air_train_coolie", Label: "Air / Train Fare Coolie / Porter Charges / Camera charges"},
	{ID: "donations_temples", Label: "Donations at Temples"},
	{ID: "extended_stay", Label: "Extended stay or travelling due to any reason"},
	{ID: "meals_not_specified", Label: "Any meals other than those specified in Tour Cost"},
	{ID: "personal_expenses", Label: "Expenses of personal nature such as tips, telephone calls, laundry, liquor etc."},
	{ID: "union_cabs_pony", Label: "Union Cabs in Gulmarg, Sonmarg, Pahalgam and Pony rides"},
	{ID: "health_insurance", Label: "Health insurance"},
}

func selectedSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[strings.ToLower(id)] = true
	}
	return set
}

// InclusionLabels returns the labels of the selected catalog entries in
// catalog order. Unknown ids are ignored, comparison is case-insensitive.
func InclusionLabels(selectedIds []string) []string {
	set := selectedSet(selectedIds)
	labels := []string{}
	for _, opt := range InclusionCatalog {
		if set[opt.ID] {
			labels = append(labels, opt.Label)
		}
	}
	return labels
}

// ExclusionLabels returns the labels of the unselected catalog entries in
// catalog order.
func ExclusionLabels(selectedIds []string) []string {
	set := selectedSet(selectedIds)
	labels := []string{}
	for _, opt := range InclusionCatalog {
		if !set[opt.ID] {
			labels = append(labels, opt.Label)
		}
	}
	return labels
}
