package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	MongoURI string
	DBName   string
	Port     string

	AWSRegion     string
	AWSBucketName string

	GeminiAPIKey      string
	GeminiVisionModel string
	GeminiImageModel  string
	GeminiEmbedModel  string

	JWTSecret string

	EssentialsPath string

	// Default coordinates for the live weather lookup.
	WeatherLatitude  float64
	WeatherLongitude float64
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	DBName = os.Getenv("DB_NAME")
	if DBName == "" {
		DBName = "wardrobe"
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "us-east-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	GeminiVisionModel = os.Getenv("GEMINI_VISION_MODEL")
	if GeminiVisionModel == "" {
		GeminiVisionModel = "gemini-2.5-flash"
	}
	GeminiImageModel = os.Getenv("GEMINI_IMAGE_MODEL")
	if GeminiImageModel == "" {
		GeminiImageModel = "gemini-2.5-flash-image"
	}
	GeminiEmbedModel = os.Getenv("GEMINI_EMBED_MODEL")
	if GeminiEmbedModel == "" {
		GeminiEmbedModel = "text-embedding-004"
	}

	JWTSecret = os.Getenv("JWT_SECRET")

	EssentialsPath = os.Getenv("ESSENTIALS_PATH")
	if EssentialsPath == "" {
		EssentialsPath = "data/essentials.json"
	}

	WeatherLatitude = parseFloatEnv("WEATHER_LATITUDE", 51.51)
	WeatherLongitude = parseFloatEnv("WEATHER_LONGITUDE", -0.13)
}

func parseFloatEnv(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default", key, v)
		return def
	}
	return f
}
