package app

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/utils"
)

const appName = "SmartDiet"

// Config holds every startup setting for the backend. It is built once in
// main and passed down explicitly, nothing below it reads the environment.
type Config struct {
	Port         string
	DataDir      string
	DBPath       string
	CatalogPath  string
	AllowOrigins []string

	LogMode             string
	LogRedactionEnabled bool
	LogHashSalt         string
}

// LoadConfig resolves all settings from the environment with platform
// defaults for the data directory:
//
//	macOS:   ~/Library/Application Support/SmartDiet
//	Windows: %APPDATA%\SmartDiet
//	Linux:   ~/.local/share/SmartDiet
//
// SMARTDIET_DATA_DIR overrides the platform default. The directory is
// created if it does not exist.
func LoadConfig(log *logger.Logger) (Config, error) {
	dataDir := utils.GetEnv("SMARTDIET_DATA_DIR", "", log)
	if dataDir == "" {
		dataDir = platformDataDir()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return Config{}, err
	}

	catalogPath := utils.GetEnv("SMARTDIET_CATALOG_PATH", "", log)
	if catalogPath == "" {
		catalogPath = filepath.Join(dataDir, "sample_recipes.json")
	}

	origins := strings.Split(utils.GetEnv("ALLOW_ORIGINS", "http://localhost:5173", log), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return Config{
		Port:         utils.GetEnv("PORT", "8080", log),
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, "data.db"),
		CatalogPath:  catalogPath,
		AllowOrigins: origins,

		LogMode:             utils.GetEnv("LOG_MODE", "development", log),
		LogRedactionEnabled: utils.GetEnvAsBool("LOG_REDACTION_ENABLED", true, log),
		LogHashSalt:         utils.GetEnv("LOG_HASH_SALT", "", log),
	}, nil
}

func platformDataDir() string {
	switch runtime.GOOS {
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support", appName)
		}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	default:
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".local", "share", appName)
		}
	}
	return "."
}
