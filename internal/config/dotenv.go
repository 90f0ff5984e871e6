package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"table-reservations-go/pkg/logger"
)

const dotenvFilename = ".env"

// LoadDotEnv loads the nearest .env found walking up from the working
// directory. Variables already set in the environment win. A missing file is
// not an error.
func LoadDotEnv(log logger.Logger) error {
	path, ok := findDotEnv(dotenvFilename)
	if !ok {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return err
	}

	log.Info("dotenv: loaded", "path", path)
	return nil
}

func findDotEnv(filename string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
