package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxClientNameLen = 40
	maxLocationLen   = 30
)

const illegalFilenameChars = `<>:"/\|?*`

func sanitizeComponent(s string, maxLen int) string {
	var sb strings.Builder
	for _, c := range s {
		if strings.ContainsRune(illegalFilenameChars, c) {
			continue
		}
		sb.WriteRune(c)
	}
	cleaned := strings.Join(strings.Fields(sb.String()), "_")
	runes := []rune(cleaned)
	if len(runes) > maxLen {
		cleaned = string(runes[:maxLen])
	}
	return cleaned
}

// SanitizedPdfName joins the sanitized client name and pickup/drop locations
// with underscores. Illegal filename characters are stripped, whitespace
// collapses to underscores, the client name is capped at 40 runes and each
// location at 30. Falls back to "package" when every component is empty and
// always ends in .pdf.
func SanitizedPdfName(clientName, pickup, drop string) string {
	parts := []string{}
	if c := sanitizeComponent(clientName, maxClientNameLen); c != "" {
		parts = append(parts, c)
	}
	if p := sanitizeComponent(pickup, maxLocationLen); p != "" {
		parts = append(parts, p)
	}
	if d := sanitizeComponent(drop, maxLocationLen); d != "" {
		parts = append(parts, d)
	}
	name := strings.Join(parts, "_")
	if name == "" {
		name = "package"
	}
	return name + ".pdf"
}

// PackagePdfFilename is the content-disposition filename for a generated
// proposal: the sanitized base name plus the trip start date-time and the
// first 8 hex chars of the package id, for uniqueness without a collision
// check.
func PackagePdfFilename(clientName, pickup, drop string, startDate time.Time, packageID uuid.UUID) string {
	name := strings.TrimSuffix(SanitizedPdfName(clientName, pickup, drop), ".pdf")
	if !startDate.IsZero() {
		name += "_" + startDate.Format("2006-01-02_1504")
	}
	name += "_" + strings.ReplaceAll(packageID.String(), "-", "")[:8]
	return name + ".pdf"
}
