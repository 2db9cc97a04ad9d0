package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
	"tpw/src/config"

	"github.com/google/uuid"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".bmp": true,
}

func safeFileName(name string) string {
	var sb strings.Builder
	for _, c := range name {
		if strings.ContainsRune(`<>:"/\|?*`, c) || c == 0 {
			sb.WriteRune('_')
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

func saveUpload(folder, fileName string, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	dst, err := os.Create(filepath.Join(folder, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return fileName, nil
}

// SaveHotelImage stores an uploaded image under the uploads root with a
// timestamped unique name and returns the /uploads/... URL served by the
// static files route.
func SaveHotelImage(tenantID, hotelID uuid.UUID, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(safeFileName(file.Filename)))
	if !imageExtensions[ext] {
		ext = ".jpg"
	}
	ts := strings.ReplaceAll(time.Now().UTC().Format("20060102150405.000"), ".", "")
	fileName := fmt.Sprintf("%s_%s%s", ts, strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	folder := filepath.Join(config.UploadsRoot(), "tenants", tenantID.String(), "hotels", hotelID.String(), "images")
	if _, err := saveUpload(folder, fileName, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/tenants/%s/hotels/%s/images/%s", tenantID, hotelID, fileName), nil
}

// SaveTenantFile stores a tenant-level upload (e.g. the agency logo) under a
// category folder, keeping a sanitized form of the original name.
func SaveTenantFile(tenantID uuid.UUID, category string, file *multipart.FileHeader) (string, error) {
	safeName := safeFileName(file.Filename)
	fileName := fmt.Sprintf("%s_%s_%s",
		time.Now().UTC().Format("20060102150405"),
		strings.ReplaceAll(uuid.NewString(), "-", ""),
		safeName,
	)
	folder := filepath.Join(config.UploadsRoot(), "tenants", tenantID.String(), category)
	if _, err := saveUpload(folder, fileName, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/tenants/%s/%s/%s", tenantID, category, fileName), nil
}
