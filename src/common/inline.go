package common

import (
	"encoding/base64"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var imageMimeByExt = map[string]string{
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// InlineImageURL substitutes a base64 data URI for any image URL that points
// into the local uploads directory, so rendering never depends on network
// fetches. Only relative /uploads/ paths and absolute URLs under baseURL are
// eligible; data URIs, foreign-host URLs and unreadable files pass through
// unchanged. Never errors.
func InlineImageURL(url, uploadsRoot, baseURL string) string {
	if url == "" || strings.HasPrefix(url, "data:") {
		return url
	}
	local := url
	if base := strings.TrimSuffix(baseURL, "/"); base != "" && strings.HasPrefix(url, base+"/") {
		local = strings.TrimPrefix(url, base)
	}
	if !strings.HasPrefix(local, "/uploads/") {
		return url
	}
	rel := strings.TrimPrefix(local, "/uploads/")
	rel = filepath.Clean(filepath.FromSlash(rel))
	if rel == "." || strings.HasPrefix(rel, "..") {
		return url
	}
	path := filepath.Join(uploadsRoot, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[pdf] image not inlined, leaving URL as-is: %s\n", url)
		return url
	}
	mime, ok := imageMimeByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// InlineLocalImages runs the inlining pre-pass over every image URL in the
// view-model before HTML synthesis.
func InlineLocalImages(m *PackagePdfModel, uploadsRoot, baseURL string) {
	for i := range m.CoverImageUrls {
		m.CoverImageUrls[i] = InlineImageURL(m.CoverImageUrls[i], uploadsRoot, baseURL)
	}
	for i := range m.Hotels {
		for j := range m.Hotels[i].ImageUrls {
			m.Hotels[i].ImageUrls[j] = InlineImageURL(m.Hotels[i].ImageUrls[j], uploadsRoot, baseURL)
		}
	}
}
