package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Admin   AdminConfig   `yaml:"admin"`
	Booking BookingConfig `yaml:"booking"`
	Baggage BaggageConfig `yaml:"baggage"`
	Airline AirlineConfig `yaml:"airline"`
	Seed    []SeedFlight  `yaml:"seed"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	TicketTopic        string   `yaml:"ticket_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// AdminConfig gates the admin surface of the presentation layer. The core
// has no notion of admin identity.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type BookingConfig struct {
	HoldTTLMinutes         int `yaml:"hold_ttl_minutes"`
	FlightsCacheTTLSeconds int `yaml:"flights_cache_ttl_seconds"`
}

type BaggageConfig struct {
	AllowanceKg float64 `yaml:"allowance_kg"`
	RatePerKg   float64 `yaml:"rate_per_kg"`
}

type AirlineConfig struct {
	Name      string `yaml:"name"`
	Country   string `yaml:"country"`
	FleetSize int    `yaml:"fleet_size"`
	IATACode  string `yaml:"iata_code"`
}

type SeedFlight struct {
	Number        int        `yaml:"number"`
	Origin        string     `yaml:"origin"`
	Destination   string     `yaml:"destination"`
	DepartureTime string     `yaml:"departure_time"`
	Seats         []SeedSeat `yaml:"seats"`
}

type SeedSeat struct {
	Number int     `yaml:"number"`
	Class  string  `yaml:"class"`
	Price  float64 `yaml:"price"`
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

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a config usable without a config file, seeded with the
// sample flight.
func Default() *Config {
	cfg := &Config{
		HTTP:  HTTPConfig{Address: ":8080"},
		Admin: AdminConfig{Username: "admin", Password: "admin123"},
		Seed: []SeedFlight{
			{
				Number: 8452, Origin: "Cairo", Destination: "New York", DepartureTime: "2am",
				Seats: []SeedSeat{
					{Number: 14, Class: "Economy", Price: 10000},
					{Number: 15, Class: "Economy", Price: 12000},
				},
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Baggage.AllowanceKg == 0 {
		c.Baggage.AllowanceKg = 23
	}
	if c.Baggage.RatePerKg == 0 {
		c.Baggage.RatePerKg = 10
	}
	if c.Booking.HoldTTLMinutes == 0 {
		c.Booking.HoldTTLMinutes = 15
	}
	if c.Booking.FlightsCacheTTLSeconds == 0 {
		c.Booking.FlightsCacheTTLSeconds = 30
	}
	if c.Airline == (AirlineConfig{}) {
		c.Airline = AirlineConfig{Name: "EgyptAir", Country: "Egypt", FleetSize: 67, IATACode: "MS"}
	}
}
