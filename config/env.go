package config

import (
	"errors"
	"io/fs"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

// LoadENV loads variables from a .env file in the working directory.
// A missing file is fine: the process environment and defaults still apply.
func LoadENV() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("no .env file found, using process environment")
		return nil
	}
	return err
}
