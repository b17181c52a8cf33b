package api

import (
	"net/http"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/directory"
	"github.com/Domenick1991/airreserve/internal/service/inventory"
	"github.com/Domenick1991/airreserve/internal/service/ledger"
	"github.com/Domenick1991/airreserve/internal/service/payment"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Services struct {
	Directory directory.DirectoryUseCase
	Inventory inventory.InventoryUseCase
	Ledger    ledger.LedgerUseCase
	Payments  payment.PaymentUseCase
	Cache     FlightCache
	Airline   domain.Airline
}

// NewRouter assembles the public and admin surfaces. Admin routes sit behind
// BasicAuth with credentials from config; the core itself has no notion of
// admin identity.
func NewRouter(cfg *config.Config, svcs Services) *gin.Engine {
	engine := gin.Default()

	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/airline", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":       svcs.Airline.Name,
			"country":    svcs.Airline.Country,
			"fleet_size": svcs.Airline.FleetSize,
			"iata_code":  svcs.Airline.IATACode,
		})
	})

	passengerHandler := NewPassengerHandler(svcs.Directory)
	flightHandler := NewFlightHandler(svcs.Inventory, svcs.Cache)
	ticketHandler := NewTicketHandler(svcs.Ledger)
	paymentHandler := NewPaymentHandler(svcs.Payments, svcs.Ledger)

	passengers := engine.Group("/passengers")
	passengerHandler.Register(passengers)
	ticketHandler.RegisterPassenger(passengers)

	flights := engine.Group("/flights")
	flightHandler.Register(flights)

	tickets := engine.Group("/tickets")
	ticketHandler.Register(tickets)
	paymentHandler.Register(tickets)

	admin := engine.Group("/admin", gin.BasicAuth(gin.Accounts{
		cfg.Admin.Username: cfg.Admin.Password,
	}))
	flightHandler.RegisterAdmin(admin)
	ticketHandler.RegisterAdmin(admin)
	passengerHandler.RegisterAdmin(admin)

	if cfg.HTTP.SwaggerDir != "" {
		engine.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		engine.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/airreserve.swagger.json"),
		)))
	}

	return engine
}
