package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Catalog selects where the movie catalog is loaded from at startup.
// "static" uses the embedded seed, "postgres" loads the movies table once.
type Catalog struct {
	Source string
}

// Session selects the viewer-session cache backend.
type Session struct {
	Backend    string
	TTLMinutes int
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Catalog  Catalog
	Session  Session
}

const (
	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Catalog:  *newCatalog(),
		Session:  *newSession(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "pelis"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		Source: getenv("CATALOG_SOURCE", CatalogSourceStatic),
	}
}

func newSession() *Session {
	ttl, err := strconv.Atoi(getenv("SESSION_TTL_MINUTES", "240"))
	if err != nil {
		log.Printf("%s bad SESSION_TTL_MINUTES, keeping default", logtag)
		ttl = 240
	}
	return &Session{
		Backend:    getenv("SESSION_BACKEND", SessionBackendMemory),
		TTLMinutes: ttl,
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}
