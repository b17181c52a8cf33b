package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/inventory"
	"github.com/gin-gonic/gin"
)

// FlightCache is an optional read-through cache for the flight list.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type FlightHandler struct {
	service inventory.InventoryUseCase
	cache   FlightCache
}

type addFlightRequest struct {
	Number        int    `json:"number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
}

type addSeatRequest struct {
	Number int     `json:"number"`
	Class  string  `json:"class"`
	Price  float64 `json:"price"`
}

type seatResponse struct {
	Number int     `json:"number"`
	Class  string  `json:"class"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

type flightResponse struct {
	Number        int            `json:"number"`
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	DepartureTime string         `json:"departure_time"`
	Seats         []seatResponse `json:"seats,omitempty"`
}

func NewFlightHandler(service inventory.InventoryUseCase, cache FlightCache) *FlightHandler {
	return &FlightHandler{service: service, cache: cache}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:number", h.get)
	router.GET("/:number/seats", h.availableSeats)
}

func (h *FlightHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.POST("/flights", h.addFlight)
	router.POST("/flights/:number/seats", h.addSeat)
}

func (h *FlightHandler) list(c *gin.Context) {
	if h.cache != nil {
		if cached, err := h.cache.GetFlights(c.Request.Context()); err == nil && cached != nil {
			c.JSON(http.StatusOK, toFlightResponses(cached))
			return
		}
	}

	flights := h.service.ListFlights()
	if h.cache != nil {
		_ = h.cache.SetFlights(c.Request.Context(), flights)
	}
	c.JSON(http.StatusOK, toFlightResponses(flights))
}

func (h *FlightHandler) get(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight number"})
		return
	}
	flight, err := h.service.GetFlight(number)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*flight))
}

func (h *FlightHandler) availableSeats(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight number"})
		return
	}
	seats, err := h.service.ListAvailableSeats(number)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	out := make([]seatResponse, 0, len(seats))
	for _, s := range seats {
		out = append(out, toSeatResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) addFlight(c *gin.Context) {
	var req addFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flight, err := h.service.AddFlight(req.Number, req.Origin, req.Destination, req.DepartureTime)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(*flight))
}

func (h *FlightHandler) addSeat(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight number"})
		return
	}
	var req addSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.AddSeat(number, req.Number, domain.SeatClass(req.Class), req.Price); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

func toSeatResponse(s domain.Seat) seatResponse {
	return seatResponse{
		Number: s.Number,
		Class:  string(s.Class),
		Price:  s.Price,
		Status: string(s.Status),
	}
}

func toFlightResponse(f domain.Flight) flightResponse {
	resp := flightResponse{
		Number:        f.Number,
		Origin:        f.Origin,
		Destination:   f.Destination,
		DepartureTime: f.DepartureTime,
	}
	for _, s := range f.Seats {
		resp.Seats = append(resp.Seats, toSeatResponse(s))
	}
	return resp
}

func toFlightResponses(flights []domain.Flight) []flightResponse {
	out := make([]flightResponse, 0, len(flights))
	for _, f := range flights {
		out = append(out, toFlightResponse(f))
	}
	return out
}
