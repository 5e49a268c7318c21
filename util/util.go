package util

import (
	"os"
)

func GetEnv(key string, fallback ...string) string {
	v := os.Getenv(key)
	if len(v) == 0 && len(fallback) > 0 {
		return fallback[0]
	}

	return v
}

func IsProduction() bool {
	e := GetEnv("ENVIRONMENT")

	return e == "PROD"
}
