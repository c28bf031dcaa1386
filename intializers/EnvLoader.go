package intializers

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnvVariables reads a .env file if one exists. Deployed environments
// set variables directly, so a missing file is not an error.
func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}
}
