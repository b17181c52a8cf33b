package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/ledger"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service ledger.LedgerUseCase
}

type bookSeatRequest struct {
	PassportNo   string `json:"passport_no"`
	FlightNumber int    `json:"flight_number"`
	SeatNumber   int    `json:"seat_number"`
}

type attachBaggageRequest struct {
	BaggageID int     `json:"baggage_id"`
	Weight    float64 `json:"weight"`
}

type baggageResponse struct {
	ID     int     `json:"id"`
	Weight float64 `json:"weight"`
	Status string  `json:"status"`
	Fee    float64 `json:"fee"`
}

type ticketResponse struct {
	Number       int64            `json:"number"`
	PassportNo   string           `json:"passport_no"`
	Passenger    string           `json:"passenger"`
	FlightNumber int              `json:"flight_number"`
	Seat         seatResponse     `json:"seat"`
	Status       string           `json:"status"`
	AmountDue    float64          `json:"amount_due"`
	Baggage      *baggageResponse `json:"baggage,omitempty"`
	CreatedAt    string           `json:"created_at"`
}

func NewTicketHandler(service ledger.LedgerUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.book)
	router.GET("/:number", h.get)
	router.DELETE("/:number", h.cancel)
	router.POST("/:number/baggage", h.attachBaggage)
}

func (h *TicketHandler) RegisterPassenger(router *gin.RouterGroup) {
	router.GET("/:passport/tickets", h.listByPassenger)
}

func (h *TicketHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/tickets", h.listAll)
	router.DELETE("/tickets/:number", h.adminCancel)
}

func (h *TicketHandler) book(c *gin.Context) {
	var req bookSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.BookSeat(c.Request.Context(), req.PassportNo, req.FlightNumber, req.SeatNumber)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toTicketResponse(ticket))
}

func (h *TicketHandler) get(c *gin.Context) {
	number, ok := ticketNumber(c)
	if !ok {
		return
	}
	ticket, err := h.service.GetTicket(number)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

// Self-service cancellation: the requesting passport must match the ticket's
// passenger.
func (h *TicketHandler) cancel(c *gin.Context) {
	number, ok := ticketNumber(c)
	if !ok {
		return
	}
	passport := c.Query("passport_no")
	if passport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passport_no is required"})
		return
	}
	if err := h.service.CancelTicket(c.Request.Context(), number, passport); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// Admin cancellation skips the ownership check.
func (h *TicketHandler) adminCancel(c *gin.Context) {
	number, ok := ticketNumber(c)
	if !ok {
		return
	}
	if err := h.service.CancelTicket(c.Request.Context(), number, ""); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *TicketHandler) attachBaggage(c *gin.Context) {
	number, ok := ticketNumber(c)
	if !ok {
		return
	}
	var req attachBaggageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.AttachBaggage(c.Request.Context(), number, req.BaggageID, req.Weight)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toBaggageResponse(b))
}

func (h *TicketHandler) listByPassenger(c *gin.Context) {
	tickets := h.service.ListTicketsByPassenger(c.Param("passport"))
	c.JSON(http.StatusOK, toTicketResponses(tickets))
}

func (h *TicketHandler) listAll(c *gin.Context) {
	c.JSON(http.StatusOK, toTicketResponses(h.service.ListAllTickets()))
}

func ticketNumber(c *gin.Context) (int64, bool) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket number"})
		return 0, false
	}
	return number, true
}

func toBaggageResponse(b *domain.Baggage) *baggageResponse {
	if b == nil {
		return nil
	}
	return &baggageResponse{ID: b.ID, Weight: b.Weight, Status: b.Status, Fee: b.Fee}
}

func toTicketResponse(t *domain.Ticket) ticketResponse {
	return ticketResponse{
		Number:       t.Number,
		PassportNo:   t.PassportNo,
		Passenger:    t.PassengerName,
		FlightNumber: t.FlightNumber,
		Seat:         toSeatResponse(t.Seat),
		Status:       string(t.Status()),
		AmountDue:    t.AmountDue(),
		Baggage:      toBaggageResponse(t.Baggage()),
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
}

func toTicketResponses(tickets []*domain.Ticket) []ticketResponse {
	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	return out
}
