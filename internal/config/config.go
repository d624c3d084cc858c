package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/stavka/internal/model"
)

// Staff holds all configuration for the officer progression engine and the
// roster tool.
type Staff struct {
	LogLevel string `yaml:"log_level"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Progression rules
	Progression ProgressionConfig `yaml:"progression"`

	// Roster tool
	Roster RosterConfig `yaml:"roster"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// ProgressionConfig holds the tunable skill-tree rules.
// Гейты веток и политика respec вынесены в конфиг: точное правило гейта и
// возврат репутации при сбросе — policy-решения, а не константы движка.
type ProgressionConfig struct {
	GateRule               string `yaml:"gate_rule"` // "tier" | "count"
	DoctrineGateTier       int32  `yaml:"doctrine_gate_tier"`
	SpecializationGateTier int32  `yaml:"specialization_gate_tier"`
	RespecRefund           bool   `yaml:"respec_refund"`
}

// TreePolicy converts the config section to a model.TreePolicy.
func (p ProgressionConfig) TreePolicy() model.TreePolicy {
	rule := model.GateRuleTier
	if p.GateRule == string(model.GateRuleCount) {
		rule = model.GateRuleCount
	}
	return model.TreePolicy{
		GateRule:               rule,
		DoctrineGateTier:       p.DoctrineGateTier,
		SpecializationGateTier: p.SpecializationGateTier,
		RespecRefund:           p.RespecRefund,
	}
}

// RosterConfig holds knobs for the roster generation tool.
type RosterConfig struct {
	OfficerCount   int    `yaml:"officer_count"`
	Seed           uint64 `yaml:"seed"` // 0 = time-based
	SeedReputation int32  `yaml:"seed_reputation"`
	PDFOutput      string `yaml:"pdf_output"` // empty = skip PDF export
	RunMigrations  bool   `yaml:"run_migrations"`
}

// DefaultStaff returns Staff config with sensible defaults.
func DefaultStaff() Staff {
	return Staff{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			User:    "stavka",
			DBName:  "stavka",
			SSLMode: "disable",
		},
		Progression: ProgressionConfig{
			GateRule:               "tier",
			DoctrineGateTier:       1,
			SpecializationGateTier: 3,
		},
		Roster: RosterConfig{
			OfficerCount:   20,
			SeedReputation: 120,
			RunMigrations:  true,
		},
	}
}

// LoadStaff reads the config file, falling back to defaults if it is missing.
func LoadStaff(path string) (Staff, error) {
	cfg := DefaultStaff()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
