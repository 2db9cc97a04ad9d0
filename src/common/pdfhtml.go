package common

import (
	"fmt"
	"html"
	"strings"
)

func h(s string) string {
	if s == "" {
		return ""
	}
	return html.EscapeString(s)
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

func isAllZeros(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	for _, c := range s {
		if c != '0' && c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

func renderStars(rating int) string {
	full, half := rating, 0
	if rating > 4 && rating < 5 {
		full, half = 4, 1
	}
	var sb strings.Builder
	for i := 0; i < full; i++ {
		sb.WriteString("★")
	}
	if half > 0 {
		sb.WriteString("☆")
	}
	for i := full + half; i < 5; i++ {
		sb.WriteString("☆")
	}
	return sb.String()
}

func infoRow(sb *strings.Builder, label, value string) {
	sb.WriteString(`<div class="info-row"><div class="info-tab"></div><div class="info-cell">`)
	sb.WriteString(label)
	sb.WriteString(`</div><div class="info-cell val">`)
	sb.WriteString(value)
	sb.WriteString(`</div><div class="info-tab-r"></div></div>`)
}

// BuildPackageHTML renders the proposal as a single self-contained document:
// inline CSS, system fonts only, no external resources. All user text is
// HTML-escaped except img src values, where escaping would corrupt data URIs
// (only quotes are replaced there).
func BuildPackageHTML(m PackagePdfModel) string {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"><meta name="viewport" content="width=device-width,initial-scale=1">`)
	sb.WriteString("<style>")
	sb.WriteString("*{box-sizing:border-box;} body{margin:0;font-family:Arial,Helvetica,sans-serif;font-size:10pt;line-height:1.5;color:#000;}")
	sb.WriteString(".page-1{padding:0;min-height:100vh;}")
	sb.WriteString(".cover-block{text-align:center;padding:1.25rem 0 1.5rem;border-bottom:2px solid #3366cc;margin-bottom:1.25rem;}")
	sb.WriteString(".cover-title{font-size:1.1rem;font-weight:700;color:#3366cc;letter-spacing:0.02em;margin:0 0 0.25rem;}")
	sb.WriteString(".cover-by{font-size:0.95rem;color:#475569;margin:0 0 0.6rem;font-style:italic;}")
	sb.WriteString(".cover-package{font-size:1.35rem;font-weight:700;color:#1e293b;margin:0 0 0.4rem;line-height:1.3;}")
	sb.WriteString(".cover-meta{font-size:0.9rem;color:#64748b;margin:0 0 0.35rem;}")
	sb.WriteString(".cover-for{font-size:0.95rem;color:#334155;margin:0.5rem 0 0;}")
	sb.WriteString(".cover-date{font-size:0.8rem;color:#94a3b8;margin-top:0.5rem;}")
	sb.WriteString(".itin-title{font-size:1.15rem;font-weight:700;margin:1.5rem 0 1rem;text-align:center;}")
	sb.WriteString(".itin-title span{border-bottom:2px dashed #333;padding-bottom:2px;}")
	sb.WriteString(".day-block{page-break-inside:avoid;margin-bottom:1rem;}")
	sb.WriteString(".day-bar{background:#3366cc;color:#fff;padding:0.5rem 1rem;display:flex;align-items:center;gap:0.6rem;}")
	sb.WriteString(".day-circle{width:36px;height:36px;background:#6699ff;border-radius:50%;display:flex;align-items:center;justify-content:center;font-weight:700;font-size:0.9rem;}")
	sb.WriteString(".day-bar-title{font-weight:700;}")
	sb.WriteString(".day-para{margin:0.5rem 0 0;padding:0.85rem 0.6rem;min-height:4rem;line-height:1.6;font-size:10pt;}")
	sb.WriteString(".acc-card{page-break-inside:avoid;margin-bottom:1.5rem;}")
	sb.WriteString(".acc-banner{background:#3366cc;color:#fff;text-align:center;padding:0.4rem;font-weight:700;font-size:0.95rem;}")
	sb.WriteString(".acc-name{font-size:1.2rem;font-weight:700;margin:0.5rem 0 0.25rem;}")
	sb.WriteString(".acc-loc{font-size:0.9rem;color:#333;}")
	sb.WriteString(".acc-meta{display:flex;align-items:center;gap:1rem;margin:0.5rem 0;flex-wrap:wrap;}")
	sb.WriteString(".acc-stars{color:#000;}")
	sb.WriteString(".acc-services{font-size:0.85rem;margin:0.5rem 0;}")
	sb.WriteString(".acc-imgs{display:grid;grid-template-columns:1fr 1fr;gap:10px;margin-top:0.75rem;}")
	sb.WriteString(".acc-imgs img{width:100%;height:220px;object-fit:cover;border-radius:8px;}")
	sb.WriteString(".section-head{font-size:1.05rem;font-weight:700;background:#3366cc;color:#fff;margin:1.25rem 0 0.5rem;padding:0.4rem 0.5rem;border:none;}")
	sb.WriteString(".info-row{display:flex;margin-bottom:4px;}")
	sb.WriteString(".info-tab{width:10px;background:#3366cc;border-radius:6px 0 0 6px;flex-shrink:0;}")
	sb.WriteString(".info-tab-r{width:10px;background:#3366cc;border-radius:0 6px 6px 0;flex-shrink:0;}")
	sb.WriteString(".info-cell{flex:1;background:#e5e7eb;padding:0.45rem 0.65rem;font-size:0.9rem;}")
	sb.WriteString(".info-cell.val{text-align:center;}")
	sb.WriteString(".info-header .info-cell{background:#3366cc;color:#fff;font-weight:600;}")
	sb.WriteString(".page-1-section{margin-bottom:1.25rem;}")
	sb.WriteString(".inc-bar{background:#3366cc;color:#fff;padding:0.5rem 0.75rem;font-weight:700;}")
	sb.WriteString(".inclusion-section{margin-top:2rem;}")
	sb.WriteString(".inc-sub{font-size:0.9rem;margin:0.35rem 0 0;}")
	sb.WriteString(".inc-list{margin:0.5rem 0;padding-left:1.25rem;} .inc-list li{margin:0.2rem 0;list-style-type:square;}")
	sb.WriteString(".exc-bar{background:#3366cc;color:#fff;padding:0.5rem 0.75rem;font-weight:700;}")
	sb.WriteString(".exc-box{background:#e5e7eb;padding:0.75rem 1rem;border-radius:6px;margin-top:0;}")
	sb.WriteString(".exc-box .inc-list{margin:0.25rem 0;}")
	sb.WriteString(".agency-grid{margin-top:0.5rem;border:1px solid #d1d5db;border-radius:6px;overflow:hidden;}")
	sb.WriteString(".agency-row{display:flex;}")
	sb.WriteString(".agency-cell{flex:1;padding:0.45rem 0.65rem;font-size:0.9rem;border-bottom:1px solid #e5e7eb;}")
	sb.WriteString(".agency-row:last-child .agency-cell{border-bottom:none;}")
	sb.WriteString(".agency-row.info-header .agency-cell{background:#3366cc;color:#fff;font-weight:600;}")
	sb.WriteString(".agency-row:not(.info-header) .agency-cell{background:#e5e7eb;}")
	sb.WriteString("@media print{.acc-card,.day-block{page-break-inside:avoid;}}")
	sb.WriteString("</style></head><body>")

	// Page 1: cover block + client, package and pricing sections
	showClientPhone := m.ClientPhone != "" && !isAllZeros(m.ClientPhone)
	sb.WriteString(`<div class="page-1">`)
	sb.WriteString(`<div class="cover-block">`)
	sb.WriteString(`<p class="cover-title">Kashmir Tour Package Proposal</p>`)
	if strings.TrimSpace(m.AgencyName) != "" {
		sb.WriteString(`<p class="cover-by">Presented by ` + h(strings.TrimSpace(m.AgencyName)) + `</p>`)
	}
	sb.WriteString(`<p class="cover-meta">` + h(m.DaysLabel) + ` &bull; ` + h(m.StartDate) + ` – ` + h(m.EndDate) + `</p>`)
	sb.WriteString(`<p class="cover-for">Prepared for ` + h(m.ClientName) + `</p>`)
	sb.WriteString(`<p class="cover-date">Proposal date: ` + h(m.GeneratedDate) + `</p>`)
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="page-1-section">`)
	sb.WriteString(`<h2 class="section-head">Client information</h2>`)
	sb.WriteString(`<div class="info-row info-header"><div class="info-tab"></div><div class="info-cell">Detail</div><div class="info-cell val">Value</div><div class="info-tab-r"></div></div>`)
	infoRow(&sb, "Client name", h(m.ClientName))
	if showClientPhone {
		infoRow(&sb, "Phone", h(m.ClientPhone))
	}
	if strings.TrimSpace(m.ClientAddress) != "" {
		infoRow(&sb, "Address", h(m.ClientAddress))
	}
	if strings.TrimSpace(m.ClientEmail) != "" {
		infoRow(&sb, "Email", h(m.ClientEmail))
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="page-1-section">`)
	sb.WriteString(`<h2 class="section-head">Package information</h2>`)
	sb.WriteString(`<div class="info-row info-header"><div class="info-tab"></div><div class="info-cell">Detail</div><div class="info-cell val">Value</div><div class="info-tab-r"></div></div>`)
	infoRow(&sb, "Package name", h(m.PackageName))
	infoRow(&sb, "Duration", h(m.DaysLabel))
	infoRow(&sb, "Arrival date", h(m.StartDate))
	infoRow(&sb, "Departure date", h(m.EndDate))
	infoRow(&sb, "Number of adults", pad2(m.NumberOfAdults))
	children := "NA"
	if m.NumberOfChildren > 0 {
		children = pad2(m.NumberOfChildren)
	}
	infoRow(&sb, "Number of children", children)
	if strings.TrimSpace(m.PickUpLocation) != "" {
		infoRow(&sb, "Pick Up Location", h(m.PickUpLocation))
	}
	if strings.TrimSpace(m.DropLocation) != "" {
		infoRow(&sb, "Drop Location", h(m.DropLocation))
	}
	infoRow(&sb, "No. of Rooms", pad2(m.FirstDayRooms))
	if m.TotalExtraBeds > 0 {
		infoRow(&sb, "Extra Beds", pad2(m.TotalExtraBeds))
	}
	if m.TotalCnbCount > 0 {
		infoRow(&sb, "CNB (Child No Bed)", pad2(m.TotalCnbCount))
	}
	infoRow(&sb, "Meal Plan", h(m.MealPlanLabel))
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="page-1-section">`)
	sb.WriteString(`<h2 class="section-head">Pricing</h2>`)
	infoRow(&sb, "Total", h(m.TotalAmount))
	infoRow(&sb, "Final amount", h(m.FinalAmount))
	if m.PerPersonAmount != "" {
		infoRow(&sb, "Per Person cost", h(m.PerPersonAmount))
	}
	infoRow(&sb, "Advance", h(m.AdvanceAmount))
	infoRow(&sb, "Balance", h(m.BalanceAmount))
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)

	// Itinerary: "XN/YD Itinerary - Day Wise"
	sb.WriteString(`<h2 class="itin-title">` + h(m.DaysLabel) + ` Itinerary - <span>Day Wise</span></h2>`)
	for _, d := range m.Days {
		sb.WriteString(`<div class="day-block">`)
		sb.WriteString(`<div class="day-bar"><span class="day-circle">` + pad2(d.DayNumber) + `</span><span class="day-bar-title">Day ` + pad2(d.DayNumber) + `: ` + h(d.Title) + `</span></div>`)
		sb.WriteString(`<p class="day-para">` + h(d.Description) + `</p></div>`)
	}

	// Accommodation, one card per property
	for _, hi := range m.Hotels {
		sb.WriteString(`<div class="acc-card">`)
		banner := "HOTEL"
		if hi.IsHouseboat {
			banner = "Houseboat"
		}
		sb.WriteString(`<div class="acc-banner">` + banner + `</div>`)
		sb.WriteString(`<div class="acc-name">` + h(hi.Name) + `</div>`)
		sb.WriteString(`<div class="acc-loc">` + h(hi.Location) + `</div>`)
		sb.WriteString(`<div class="acc-meta">`)
		if hi.StarRating > 0 {
			sb.WriteString(`<span class="acc-stars">` + renderStars(hi.StarRating) + `</span>`)
		}
		nights := ""
		if hi.Nights > 0 {
			nights = fmt.Sprintf(" &bull; %d night(s)", hi.Nights)
		}
		sb.WriteString(`<span>` + h(hi.MealPlan) + nights + `</span></div>`)
		sb.WriteString(`<div class="acc-services">Breakfast &amp; Dinner &bull; Wi-Fi Daily &bull; Housekeeping &bull; 24-hour Room Service</div>`)
		if len(hi.ImageUrls) > 0 {
			sb.WriteString(`<div class="acc-imgs">`)
			for i, url := range hi.ImageUrls {
				if i >= 4 {
					break
				}
				if url == "" {
					continue
				}
				// img src is not HTML-encoded: data URLs break (base64 uses
				// +/=), and http URLs need & and ?
				safeSrc := strings.ReplaceAll(url, `"`, "&quot;")
				sb.WriteString(`<img src="` + safeSrc + `" alt=""/>`)
			}
			sb.WriteString(`</div>`)
		}
		sb.WriteString(`</div>`)
	}

	// Night Stays
	sb.WriteString(`<h2 class="section-head">Night Stays</h2>`)
	sb.WriteString(`<div class="info-row info-header"><div class="info-tab"></div><div class="info-cell">Destination</div><div class="info-cell val">Nights</div><div class="info-tab-r"></div></div>`)
	for _, hi := range m.Hotels {
		infoRow(&sb, h(hi.Name), pad2(hi.Nights))
	}

	// Inclusion / Excludes
	sb.WriteString(`<div class="inclusion-section">`)
	sb.WriteString(`<div class="inc-bar">Inclusion</div>`)
	sb.WriteString(`<ul class="inc-list">`)
	for _, label := range m.InclusionLabels {
		sb.WriteString(`<li>` + h(label) + `</li>`)
	}
	if len(m.InclusionLabels) == 0 {
		sb.WriteString(`<li>—</li>`)
	}
	sb.WriteString(`</ul>`)
	sb.WriteString(`<div class="exc-bar">Excludes</div>`)
	sb.WriteString(`<div class="exc-box"><ul class="inc-list">`)
	for _, label := range m.ExclusionLabels {
		sb.WriteString(`<li>` + h(label) + `</li>`)
	}
	if len(m.ExclusionLabels) == 0 {
		sb.WriteString(`<li>—</li>`)
	}
	sb.WriteString(`</ul></div>`)
	sb.WriteString(`</div>`)

	// Travel Agency Details
	if strings.TrimSpace(m.ManagingDirectorName) != "" || strings.TrimSpace(m.AgencyName) != "" || strings.TrimSpace(m.AgencyPhone) != "" || strings.TrimSpace(m.AgencyEmail) != "" {
		mdName := "–"
		if strings.TrimSpace(m.ManagingDirectorName) != "" {
			mdName = "Mr. " + strings.TrimSpace(m.ManagingDirectorName)
		}
		sb.WriteString(`<h2 class="section-head">Travel Agency Details</h2>`)
		sb.WriteString(`<div class="agency-grid">`)
		sb.WriteString(`<div class="agency-row info-header"><div class="agency-cell">Managing Director</div><div class="agency-cell">Travel Agency</div><div class="agency-cell">Contact</div><div class="agency-cell">Email</div></div>`)
		sb.WriteString(`<div class="agency-row"><div class="agency-cell">` + h(mdName) + `</div><div class="agency-cell">` + h(orDash(m.AgencyName)) + `</div><div class="agency-cell">` + h(orDash(m.AgencyPhone)) + `</div><div class="agency-cell">` + h(orDash(m.AgencyEmail)) + `</div></div>`)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</body></html>`)
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "–"
	}
	return s
}
