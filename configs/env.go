package configs

import (
	"os"

	"github.com/joho/godotenv"
)

type Env struct {
	DatabaseURL    string
	RedisURL       string
	AllowedOrigins string
	SecretKey      string
	OriginURL      string
	AladhanBaseURL string
}

const defaultAladhanBaseURL = "https://api.aladhan.com/v1"

func LoadEnv(filenames ...string) (Env, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return Env{}, err
	}

	env := Env{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		OriginURL:      os.Getenv("ORIGIN_URL"),
		AladhanBaseURL: os.Getenv("ALADHAN_BASE_URL"),
	}

	if env.AladhanBaseURL == "" {
		env.AladhanBaseURL = defaultAladhanBaseURL
	}

	return env, nil
}
