package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load(".env")
}

func Get(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetBool(key, defaultVal string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		v = defaultVal
	}
	return v == "1" || v == "true" || v == "yes"
}

func GetInt(key string, defaultVal int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

var (
	// DataDir holds the pre-built JSON documents from the fetch job.
	DataDir = firstNonEmpty(Get("DEALS_DATA_DIR"), "data")

	// DataBaseURL, when set, loads the documents over HTTP instead of disk.
	DataBaseURL = Get("DEALS_DATA_URL")

	// ArchivePath is the SQLite archive location; empty disables archiving.
	ArchivePath = Get("DEALS_ARCHIVE_PATH")

	DefaultPageSize = GetInt("DEALS_PAGE_SIZE", 25)

	TraceEnabled = GetBool("DEALS_TRACE", "false")

	AdminAPIKey = Get("ADMIN_API_KEY")
)

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
