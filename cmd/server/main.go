package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airreserve/api"
	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/baggage"
	"github.com/Domenick1991/airreserve/internal/bootstrap"
	"github.com/Domenick1991/airreserve/internal/cache"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/kafka"
	"github.com/Domenick1991/airreserve/internal/service/directory"
	"github.com/Domenick1991/airreserve/internal/service/inventory"
	"github.com/Domenick1991/airreserve/internal/service/ledger"
	"github.com/Domenick1991/airreserve/internal/service/payment"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	directoryService := directory.NewDirectoryService()
	inventoryService := inventory.NewInventoryService()

	ledgerOpts := []ledger.LedgerServiceOption{
		ledger.WithBaggagePolicy(baggage.Policy{
			AllowanceKg: cfg.Baggage.AllowanceKg,
			RatePerKg:   cfg.Baggage.RatePerKg,
		}),
	}
	paymentOpts := []payment.PaymentServiceOption{}

	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		redisCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
		ledgerOpts = append(ledgerOpts, ledger.WithCache(redisCache, time.Duration(cfg.Booking.HoldTTLMinutes)*time.Minute))
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		ledgerOpts = append(ledgerOpts,
			ledger.WithProducer(producer, cfg.Kafka.TicketTopic),
			ledger.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
		paymentOpts = append(paymentOpts, payment.WithProducer(producer, cfg.Kafka.TicketTopic))
	}

	ledgerService := ledger.NewLedgerService(inventoryService, directoryService, ledgerOpts...)
	paymentService := payment.NewPaymentService(paymentOpts...)

	seedFlights(inventoryService, cfg.Seed)

	services := api.Services{
		Directory: directoryService,
		Inventory: inventoryService,
		Ledger:    ledgerService,
		Payments:  paymentService,
		Airline: domain.Airline{
			Name:      cfg.Airline.Name,
			Country:   cfg.Airline.Country,
			FleetSize: cfg.Airline.FleetSize,
			IATACode:  cfg.Airline.IATACode,
		},
	}
	if redisCache != nil {
		services.Cache = redisCache
	}

	router := api.NewRouter(cfg, services)
	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func seedFlights(inv *inventory.InventoryService, seed []config.SeedFlight) {
	for _, f := range seed {
		if _, err := inv.AddFlight(f.Number, f.Origin, f.Destination, f.DepartureTime); err != nil {
			log.Printf("seed flight %d: %v", f.Number, err)
			continue
		}
		for _, s := range f.Seats {
			if err := inv.AddSeat(f.Number, s.Number, domain.SeatClass(s.Class), s.Price); err != nil {
				log.Printf("seed seat %d on flight %d: %v", s.Number, f.Number, err)
			}
		}
	}
}
