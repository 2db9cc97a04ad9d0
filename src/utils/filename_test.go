package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSanitizedPdfName(t *testing.T) {
	assert.Equal(t, "Arjun_Mehta_Srinagar_Pahalgam.pdf", SanitizedPdfName("Arjun Mehta", "Srinagar", "Pahalgam"))

	// Illegal filename characters are dropped, not replaced.
	assert.Equal(t, "AB.pdf", SanitizedPdfName(`A<>:"/\|?*B`, "", ""))

	// Runs of whitespace collapse to single underscores.
	assert.Equal(t, "a_b_c.pdf", SanitizedPdfName("a  b\tc", "", ""))

	assert.Equal(t, "package.pdf", SanitizedPdfName("", "", ""))
	assert.Equal(t, "package.pdf", SanitizedPdfName(`///`, "  ", "???"))

	// Missing middle component leaves no doubled separator.
	assert.Equal(t, "Arjun_Pahalgam.pdf", SanitizedPdfName("Arjun", "", "Pahalgam"))
}

func TestSanitizedPdfNameCaps(t *testing.T) {
	longName := strings.Repeat("n", 50)
	longLoc := strings.Repeat("l", 40)
	got := SanitizedPdfName(longName, longLoc, "")
	assert.Equal(t, strings.Repeat("n", 40)+"_"+strings.Repeat("l", 30)+".pdf", got)
}

func TestPackagePdfFilename(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")
	start := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)

	got := PackagePdfFilename("Arjun", "Srinagar", "", start, id)
	assert.Equal(t, "Arjun_Srinagar_2026-04-10_0930_a1b2c3d4.pdf", got)

	// Zero start date drops the date token but keeps the id suffix.
	got = PackagePdfFilename("", "", "", time.Time{}, id)
	assert.Equal(t, "package_a1b2c3d4.pdf", got)
}
