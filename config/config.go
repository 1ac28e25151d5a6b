package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// App is the configuration loaded at startup. Handlers and jobs read it directly.
var App = Default()

type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Logging    LoggingConfig    `yaml:"logging"`
	Auth       AuthConfig       `yaml:"auth"`
	Booking    BookingConfig    `yaml:"booking"`
	Vouchers   VoucherConfig    `yaml:"vouchers"`
	Stripe     StripeConfig     `yaml:"stripe"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Mail       MailConfig       `yaml:"mail"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
	BaseURL     string `yaml:"base_url"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	BodyLimitMB int    `yaml:"body_limit_mb"`
	CORSOrigins string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	Driver     string         `yaml:"driver"`
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
	Seed       bool           `yaml:"seed"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type RedisConfig struct {
	Address    string        `yaml:"address"`
	Password   string        `yaml:"password"`
	DB         int           `yaml:"db"`
	PoolSize   int           `yaml:"pool_size"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"`
	AdminKey         string        `yaml:"admin_key"`
	TempMemberToken  string        `yaml:"temp_member_token"`
	TempAdminToken   string        `yaml:"temp_admin_token"`
	TempAccountTTL   time.Duration `yaml:"temp_account_ttl"`
	LoginMaxAttempts int           `yaml:"login_max_attempts"`
	LoginWindow      time.Duration `yaml:"login_window"`
	TokenTTL         time.Duration `yaml:"token_ttl"`
	AdminEmail       string        `yaml:"admin_email"`
	AdminPassword    string        `yaml:"admin_password"`
}

type BookingConfig struct {
	DepositAmount  float64       `yaml:"deposit_amount"`
	MinLeadTime    time.Duration `yaml:"min_lead_time"`
	ClosedWeekdays []string      `yaml:"closed_weekdays"`
	Slots          []string      `yaml:"slots"`
	PageSize       int           `yaml:"page_size"`
	Timezone       string        `yaml:"timezone"`
}

type VoucherConfig struct {
	RedeemCost     int     `yaml:"redeem_cost"`
	DiscountAmount float64 `yaml:"discount_amount"`
	ValidityMonths int     `yaml:"validity_months"`
	CodeAttempts   int     `yaml:"code_attempts"`
}

type StripeConfig struct {
	SecretKey      string `yaml:"secret_key"`
	PublishableKey string `yaml:"publishable_key"`
	WebhookSecret  string `yaml:"webhook_secret"`
	Currency       string `yaml:"currency"`
	SuccessURL     string `yaml:"success_url"`
	CancelURL      string `yaml:"cancel_url"`
	AllowFallback  bool   `yaml:"allow_fallback"`
}

type SchedulerConfig struct {
	TempSweepInterval time.Duration `yaml:"temp_sweep_interval"`
	StalePaymentCron  string        `yaml:"stale_payment_cron"`
	StalePaymentAfter time.Duration `yaml:"stale_payment_after"`
}

type RateLimitConfig struct {
	RPS     float64       `yaml:"rps"`
	Burst   int           `yaml:"burst"`
	IdleTTL time.Duration `yaml:"idle_ttl"`
}

type MailConfig struct {
	From    string `yaml:"from"`
	Support string `yaml:"support"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
}

func Load(configPath string) (*Config, error) {
	// .env is optional, real environment variables win
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Default returns a config with every default applied. Used by tests and as the
// zero state of App.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("auth.jwt_secret is required")
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Booking.DepositAmount <= 0 {
		return errors.New("booking.deposit_amount must be positive")
	}
	if c.Scheduler.TempSweepInterval <= 0 {
		return errors.New("scheduler.temp_sweep_interval must be positive")
	}
	for _, day := range c.Booking.ClosedWeekdays {
		if _, ok := ParseWeekday(day); !ok {
			return fmt.Errorf("unknown weekday %q in booking.closed_weekdays", day)
		}
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("booking.timezone: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "pawfect-grooming"
	}
	if c.App.Environment == "" {
		c.App.Environment = "development"
	}
	if c.App.BaseURL == "" {
		c.App.BaseURL = "http://localhost:8002"
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8002
	}
	if c.Server.BodyLimitMB == 0 {
		c.Server.BodyLimitMB = 10
	}
	if c.Server.CORSOrigins == "" {
		c.Server.CORSOrigins = "http://localhost:5173"
	}

	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "pawfect.db"
	}
	if c.Database.Postgres.Port == 0 {
		c.Database.Postgres.Port = 5432
	}
	if c.Database.Postgres.SSLMode == "" {
		c.Database.Postgres.SSLMode = "disable"
	}

	if c.Redis.SessionTTL == 0 {
		c.Redis.SessionTTL = 2 * time.Hour
	}

	if c.Auth.AccessTokenTTL == 0 {
		c.Auth.AccessTokenTTL = 60 * time.Minute
	}
	if c.Auth.RefreshTokenTTL == 0 {
		c.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if c.Auth.TempAccountTTL == 0 {
		c.Auth.TempAccountTTL = time.Minute
	}
	if c.Auth.LoginMaxAttempts == 0 {
		c.Auth.LoginMaxAttempts = 3
	}
	if c.Auth.LoginWindow == 0 {
		c.Auth.LoginWindow = 5 * time.Minute
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 10 * time.Minute
	}
	if c.Auth.AdminEmail == "" {
		c.Auth.AdminEmail = "admin@pawfect.local"
	}

	if c.Booking.DepositAmount == 0 {
		c.Booking.DepositAmount = 20.00
	}
	if c.Booking.MinLeadTime == 0 {
		c.Booking.MinLeadTime = time.Hour
	}
	if c.Booking.ClosedWeekdays == nil {
		c.Booking.ClosedWeekdays = []string{"Sunday"}
	}
	if len(c.Booking.Slots) == 0 {
		c.Booking.Slots = []string{
			"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
			"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
		}
	}
	if c.Booking.PageSize == 0 {
		c.Booking.PageSize = 10
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "Local"
	}

	if c.Vouchers.RedeemCost == 0 {
		c.Vouchers.RedeemCost = 100
	}
	if c.Vouchers.DiscountAmount == 0 {
		c.Vouchers.DiscountAmount = 5.00
	}
	if c.Vouchers.ValidityMonths == 0 {
		c.Vouchers.ValidityMonths = 6
	}
	if c.Vouchers.CodeAttempts == 0 {
		c.Vouchers.CodeAttempts = 20
	}

	if c.Stripe.Currency == "" {
		c.Stripe.Currency = "myr"
	}
	if c.Stripe.SuccessURL == "" {
		c.Stripe.SuccessURL = c.App.BaseURL + "/api/v1/payments/stripe/success?session_id={CHECKOUT_SESSION_ID}"
	}
	if c.Stripe.CancelURL == "" {
		c.Stripe.CancelURL = c.App.BaseURL + "/api/v1/payments/stripe/cancel?session_id={CHECKOUT_SESSION_ID}"
	}

	if c.Scheduler.TempSweepInterval == 0 {
		c.Scheduler.TempSweepInterval = 60 * time.Second
	}
	if c.Scheduler.StalePaymentCron == "" {
		c.Scheduler.StalePaymentCron = "0 * * * *"
	}
	if c.Scheduler.StalePaymentAfter == 0 {
		c.Scheduler.StalePaymentAfter = 24 * time.Hour
	}

	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
	if c.RateLimit.IdleTTL == 0 {
		c.RateLimit.IdleTTL = 10 * time.Minute
	}

	if c.Mail.From == "" {
		c.Mail.From = "Pawfect Grooming <no-reply@pawfect.local>"
	}
	if c.Mail.Support == "" {
		c.Mail.Support = "support@pawfect.local"
	}
}

// Location returns the salon's time zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// IsClosed reports whether the salon is closed on the given weekday.
func (c *Config) IsClosed(day time.Weekday) bool {
	for _, name := range c.Booking.ClosedWeekdays {
		if wd, ok := ParseWeekday(name); ok && wd == day {
			return true
		}
	}
	return false
}

func ParseWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(name)) {
			return d, true
		}
	}
	return time.Sunday, false
}
