package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP      HTTPConfig       `yaml:"http"`
	Database  DatabaseConfig   `yaml:"database"`
	Redis     RedisConfig      `yaml:"redis"`
	Kafka     KafkaConfig      `yaml:"kafka"`
	Booking   BookingConfig    `yaml:"booking"`
	Reminder  ReminderConfig   `yaml:"reminder"`
	Worker    WorkerConfig     `yaml:"worker"`
	Operators []OperatorConfig `yaml:"operators"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers               []string `yaml:"brokers"`
	RegistrationsTopic    string   `yaml:"registrations_topic"`
	NotificationsTopic    string   `yaml:"notifications_topic"`
	GroupID               string   `yaml:"group_id"`
	HeartbeatSeconds      int      `yaml:"heartbeat_seconds"`
	SessionTimeoutSeconds int      `yaml:"session_timeout_seconds"`
}

type BookingConfig struct {
	SessionsCacheTTL     int `yaml:"sessions_cache_ttl_seconds"`
	AttendanceWindowDays int `yaml:"attendance_window_days"`
}

type ReminderConfig struct {
	LeadMinutes int `yaml:"lead_minutes"`
}

type WorkerConfig struct {
	ReminderSweepMinutes int `yaml:"reminder_sweep_minutes"`
}

// OperatorConfig is one allowlisted operator. Membership is configuration,
// not self-registration.
type OperatorConfig struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

func (c *Config) OperatorIDs() []int64 {
	ids := make([]int64, 0, len(c.Operators))
	for _, op := range c.Operators {
		ids = append(ids, op.ID)
	}
	return ids
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
