package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

const TIME_PARSE_FORMAT = "2006-01-02 15:04:05 -07:00"
const DATE_PARSE_FORMAT = "2006-01-02"

// UploadsRoot backs the /uploads/... URL space. PDF image inlining reads
// files from here instead of fetching over the network.
func UploadsRoot() string {
	dir := os.Getenv("UPLOADS_DIR")
	if dir != "" {
		return dir
	}
	wd, _ := os.Getwd()
	return path.Join(wd, "wwwroot", "uploads")
}

// PublicBaseURL resolves relative image paths for the PDF view-model. Must
// come from configuration, never from the incoming request's Host header.
func PublicBaseURL() string {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base
}

const (
	pdfDefaultTimeout = 60 * time.Second
	pdfMaxTimeout     = 300 * time.Second
)

func PdfRenderTimeout() time.Duration {
	raw := os.Getenv("PDF_TIMEOUT_SECONDS")
	if raw == "" {
		return pdfDefaultTimeout
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return pdfDefaultTimeout
	}
	timeout := time.Duration(seconds) * time.Second
	if timeout > pdfMaxTimeout {
		return pdfMaxTimeout
	}
	return timeout
}

func PdfMaxConcurrentPages() int {
	raw := os.Getenv("PDF_MAX_CONCURRENT_PAGES")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 4
	}
	return n
}

func ChromeExecutablePath() string {
	return os.Getenv("CHROME_EXECUTABLE_PATH")
}

func DebugErrors() bool {
	debug, err := strconv.ParseBool(os.Getenv("API_DEBUG"))
	return err == nil && debug
}
