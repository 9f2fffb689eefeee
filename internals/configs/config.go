package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret     string
	JWTExpiresIn  string
	UploadsDir    string
	MaxFileSizeMB int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No se encontró archivo .env, usando ENV del sistema")
	} else {
		log.Println("✅ Archivo .env cargado")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTExpiresIn = GetEnv("JWT_EXPIRES_IN", "7d")
	UploadsDir = GetEnv("UPLOADS_DIR", "./uploads")
	MaxFileSizeMB = GetEnvInt("MAX_FILE_SIZE_MB", 5)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET no está configurado!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
