package config

import "os"

type Config struct {
	Port          string
	Env           string
	PostgresUrl   string
	MongoURI      string
	JWTSecret     string
	UploadDir     string
	MediaBackend  string // "local" or "s3"
	S3Bucket      string
	S3Region      string
	S3Prefix      string
	S3PublicURL   string
	APIOrigin     string // base origin used by the admin submission client
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8000"),
		Env:           getEnv("ENV", "development"),
		PostgresUrl:   getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:      getEnv("MONGO_URI", ""),
		JWTSecret:     getEnv("JWT_SECRET", "supersecretjwtkey"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		MediaBackend:  getEnv("MEDIA_BACKEND", "local"),
		S3Bucket:      getEnv("S3_BUCKET", ""),
		S3Region:      getEnv("S3_REGION", "ap-south-1"),
		S3Prefix:      getEnv("S3_PREFIX", "media"),
		S3PublicURL:   getEnv("S3_PUBLIC_URL", ""),
		APIOrigin:     getEnv("API_ORIGIN", "http://localhost:8000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
