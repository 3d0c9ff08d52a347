// Package config provides centralized configuration for the gitdojo backend.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/ini.v1"
)

// Config holds application-wide configuration.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string
	// StoreBackend selects session persistence: memory, redis or bolt.
	StoreBackend string
	RedisAddr    string
	BoltPath     string
	// LessonsDir is the lesson pack directory; LessonsWatch hot-reloads it.
	LessonsDir   string
	LessonsWatch bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:   ":8080",
		StoreBackend: "memory",
		RedisAddr:    "localhost:6379",
		BoltPath:     ".gitdojo-data/sessions.db",
		LessonsDir:   "lessons",
		LessonsWatch: false,
	}
}

// Load builds the effective configuration: defaults, then the INI file named
// by GITDOJO_CONFIG when set, then GITDOJO_* environment variables. Later
// sources win.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if path := os.Getenv("GITDOJO_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.loadEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	Global = cfg
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	server := file.Section("server")
	if v := server.Key("addr").String(); v != "" {
		c.ListenAddr = v
	}

	store := file.Section("store")
	if v := store.Key("backend").String(); v != "" {
		c.StoreBackend = v
	}
	if v := store.Key("redis_addr").String(); v != "" {
		c.RedisAddr = v
	}
	if v := store.Key("bolt_path").String(); v != "" {
		c.BoltPath = v
	}

	lessons := file.Section("lessons")
	if v := lessons.Key("dir").String(); v != "" {
		c.LessonsDir = v
	}
	if lessons.HasKey("watch") {
		watch, err := lessons.Key("watch").Bool()
		if err != nil {
			return fmt.Errorf("load config %s: lessons.watch: %w", path, err)
		}
		c.LessonsWatch = watch
	}
	return nil
}

func (c *Config) loadEnv() {
	if v := os.Getenv("GITDOJO_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("GITDOJO_STORE_BACKEND"); v != "" {
		c.StoreBackend = v
	}
	if v := os.Getenv("GITDOJO_REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("GITDOJO_BOLT_PATH"); v != "" {
		c.BoltPath = v
	}
	if v := os.Getenv("GITDOJO_LESSONS_DIR"); v != "" {
		c.LessonsDir = v
	}
	if v := os.Getenv("GITDOJO_LESSONS_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LessonsWatch = b
		}
	}
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case "memory", "redis", "bolt":
		return nil
	}
	return fmt.Errorf("unknown store backend %q (want memory, redis or bolt)", c.StoreBackend)
}

// Global is the application-wide configuration instance. Load replaces it
// with the effective configuration at startup.
var Global = DefaultConfig()
