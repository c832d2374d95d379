package main

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vendor-kyc.backend/internal/config"
	"vendor-kyc.backend/internal/metrics"
	plog "vendor-kyc.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origNewMetrics := newMetrics
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		newMetrics = origNewMetrics
		runServer = origRunServer
	})

	// Fresh registry per run so repeated boots do not collide
	newMetrics = func() *metrics.Metrics { return metrics.New(prometheus.NewRegistry()) }
}

func baseTestConfig(uploadDir string) func() *config.Config {
	return func() *config.Config {
		return &config.Config{
			Server: config.ServerConfig{
				Port: "18080",
				Env:  "development",
			},
			Database: config.DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "postgres",
				Password: "postgres",
				DBName:   "vendorkyc",
				SSLMode:  "disable",
			},
			Redis: config.RedisConfig{
				URL: "redis://localhost:6379",
			},
			JWT: config.JWTConfig{
				Secret:        "secret",
				AccessExpiry:  15 * time.Minute,
				RefreshExpiry: 24 * time.Hour,
			},
			Storage: config.StorageConfig{
				UploadDir:     uploadDir,
				SweepInterval: time.Hour,
			},
		}
	}
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig(t.TempDir())
	initLog = plog.Init
	initRedis = func(string, string) error { return errors.New("redis down") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected redis init error")
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig(t.TempDir())
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = func(string) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_StorageInitError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig("")
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:main_storage_err?mode=memory&cache=shared"), &gorm.Config{})
	}

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected storage init error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return errors.New("no env file") }
	loadCfg = baseTestConfig(t.TempDir())
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:main_run_err?mode=memory&cache=shared"), &gorm.Config{})
	}
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected server run error")
	}
}
