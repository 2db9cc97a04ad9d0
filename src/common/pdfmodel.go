package common

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"tpw/src/models"
)

const pdfDateFormat = "02 Jan 2006"

// PackagePdfModel is the flattened, pre-formatted projection consumed only
// by the document renderer. Never persisted.
type PackagePdfModel struct {
	PackageName   string
	ClientName    string
	ClientPhone   string
	ClientEmail   string
	ClientAddress string

	StartDate string
	EndDate   string
	DaysLabel string

	PickUpLocation string
	DropLocation   string

	NumberOfAdults   int
	NumberOfChildren int
	MealPlanLabel    string
	FirstDayRooms    int
	TotalExtraBeds   int
	TotalCnbCount    int

	TotalAmount     string
	Discount        string
	FinalAmount     string
	PerPersonAmount string
	AdvanceAmount   string
	BalanceAmount   string

	Days            []PdfDayItem
	Hotels          []PdfHotelItem
	CoverImageUrls  []string
	InclusionLabels []string
	ExclusionLabels []string

	AgencyName           string
	AgencyPhone          string
	AgencyEmail          string
	ManagingDirectorName string
	GeneratedDate        string
}

type PdfDayItem struct {
	DayNumber     int
	Title         string
	Description   string
	ExtraBedCount int
	CnbCount      int
}

type PdfHotelItem struct {
	Name        string
	Location    string
	StarRating  int
	MealPlan    string
	Nights      int
	IsHouseboat bool
	Amenities   []string
	ImageUrls   []string
}

// BuildPackagePdfModel flattens a loaded package graph into the render model.
// Pure aside from clock reads; every missing field degrades to a documented
// placeholder instead of failing. Image URLs resolve against baseURL from
// configuration, never the request host.
func BuildPackagePdfModel(pkg *models.TourPackage, tenant *models.Tenant, baseURL string) PackagePdfModel {
	days := make([]models.DayItinerary, len(pkg.DayWiseItinerary))
	copy(days, pkg.DayWiseItinerary)
	sort.SliceStable(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })

	dayItems := make([]PdfDayItem, 0, len(days))
	for _, d := range days {
		title := ""
		if d.ItineraryTemplate != nil {
			title = strings.TrimSpace(d.ItineraryTemplate.Title)
		}
		if title == "" && d.Hotel != nil {
			title = strings.TrimSpace(d.Hotel.Name)
		}
		if title == "" {
			title = "Day activities"
		}
		dayItems = append(dayItems, PdfDayItem{
			DayNumber:     d.DayNumber,
			Title:         title,
			Description:   dayDescription(d),
			ExtraBedCount: d.ExtraBedCount,
			CnbCount:      d.CnbCount,
		})
	}

	hotels, coverImages := aggregateHotels(days, baseURL)

	numberOfDays := pkg.NumberOfDays
	if numberOfDays <= 0 {
		numberOfDays = len(days)
	}
	nights := numberOfDays - 1
	if nights < 0 {
		nights = 0
	}

	mealPlanLabel := "–"
	firstDayRooms := 1
	totalExtraBeds, totalCnb := 0, 0
	for i, d := range days {
		if i == 0 {
			mealPlanLabel = d.MealPlan.Label()
			if d.NumberOfRooms > 0 {
				firstDayRooms = d.NumberOfRooms
			}
		}
		totalExtraBeds += d.ExtraBedCount
		totalCnb += d.CnbCount
	}

	pricing := ComputePricing(pkg.TotalAmount, pkg.Discount, pkg.AdvanceAmount, pkg.NumberOfAdults, pkg.NumberOfChildren)
	perPerson := ""
	if pkg.NumberOfAdults+pkg.NumberOfChildren > 0 {
		perPerson = FormatAmount(pricing.PerPersonAmount)
	}

	clientAddress := joinNonEmpty(", ", pkg.ClientCity, pkg.ClientState)
	if clientAddress == "" {
		clientAddress = strings.TrimSpace(pkg.ClientPickupLocation)
	}

	m := PackagePdfModel{
		PackageName:   pkg.PackageName,
		ClientName:    pkg.ClientName,
		ClientPhone:   pkg.ClientPhone,
		ClientEmail:   pkg.ClientEmail,
		ClientAddress: clientAddress,

		StartDate: formatPdfDate(pkg.StartDate),
		EndDate:   formatPdfDate(pkg.EndDate),
		DaysLabel: fmt.Sprintf("%dN/%dD", nights, numberOfDays),

		PickUpLocation: pkg.ClientPickupLocation,
		DropLocation:   pkg.ClientDropLocation,

		NumberOfAdults:   pkg.NumberOfAdults,
		NumberOfChildren: pkg.NumberOfChildren,
		MealPlanLabel:    mealPlanLabel,
		FirstDayRooms:    firstDayRooms,
		TotalExtraBeds:   totalExtraBeds,
		TotalCnbCount:    totalCnb,

		TotalAmount:     FormatAmount(pricing.TotalWithCharge),
		Discount:        FormatAmount(pkg.Discount),
		FinalAmount:     FormatAmount(pricing.FinalAmount),
		PerPersonAmount: perPerson,
		AdvanceAmount:   FormatAmount(pkg.AdvanceAmount),
		BalanceAmount:   FormatAmount(pricing.BalanceAmount),

		Days:            dayItems,
		Hotels:          hotels,
		CoverImageUrls:  coverImages,
		InclusionLabels: InclusionLabels(pkg.InclusionIds),
		ExclusionLabels: ExclusionLabels(pkg.InclusionIds),

		GeneratedDate: time.Now().Format(pdfDateFormat),
	}
	if tenant != nil {
		m.AgencyName = tenant.Name
		m.AgencyPhone = tenant.Phone
		m.AgencyEmail = tenant.Email
		m.ManagingDirectorName = tenant.ContactPerson
	}
	return m
}

// aggregateHotels produces one summary row per distinct hotel in first-seen
// order: nights accumulate +1 per day referencing the hotel, the meal plan
// label is the first day's. Cover images pool up to 4 URLs across hotels.
func aggregateHotels(days []models.DayItinerary, baseURL string) ([]PdfHotelItem, []string) {
	order := []string{}
	byID := map[string]*PdfHotelItem{}
	for _, d := range days {
		if d.HotelID == nil || d.Hotel == nil {
			continue
		}
		key := d.HotelID.String()
		if item, ok := byID[key]; ok {
			item.Nights++
			continue
		}
		h := d.Hotel
		location := joinNonEmpty(", ", h.City, h.State)
		if location == "" {
			location = strings.TrimSpace(h.Address)
		}
		if location == "" {
			location = "–"
		}
		urls := make([]string, 0, len(h.ImageUrls))
		for _, u := range h.ImageUrls {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, resolveImageURL(u, baseURL))
			}
		}
		byID[key] = &PdfHotelItem{
			Name:        h.Name,
			Location:    location,
			StarRating:  h.StarRating,
			MealPlan:    d.MealPlan.Label(),
			Nights:      1,
			IsHouseboat: h.IsHouseboat,
			Amenities:   h.Amenities,
			ImageUrls:   urls,
		}
		order = append(order, key)
	}

	hotels := make([]PdfHotelItem, 0, len(order))
	cover := []string{}
	for _, key := range order {
		hotels = append(hotels, *byID[key])
		for _, u := range byID[key].ImageUrls {
			if len(cover) < 4 {
				cover = append(cover, u)
			}
		}
	}
	return hotels, cover
}

func dayDescription(d models.DayItinerary) string {
	parts := []string{}
	for _, a := range d.Activities {
		if a = strings.TrimSpace(a); a != "" {
			parts = append(parts, a)
		}
	}
	desc := strings.Join(parts, ". ")
	if notes := strings.TrimSpace(d.Notes); notes != "" {
		if desc != "" {
			desc += " " + notes
		} else {
			desc = notes
		}
	}
	if desc == "" {
		return "–"
	}
	return desc
}

func resolveImageURL(url, baseURL string) string {
	if strings.HasPrefix(url, "/") {
		return strings.TrimRight(baseURL, "/") + url
	}
	return url
}

func formatPdfDate(t time.Time) string {
	if t.IsZero() {
		return "–"
	}
	return t.Format(pdfDateFormat)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := []string{}
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
