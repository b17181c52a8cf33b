package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/ledger"
	"github.com/Domenick1991/airreserve/internal/service/payment"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments payment.PaymentUseCase
	tickets  ledger.LedgerUseCase
}

type payTicketRequest struct {
	CardNumber string `json:"card_number"`
}

type paymentResponse struct {
	ID           string  `json:"id"`
	TicketNumber int64   `json:"ticket_number"`
	Amount       float64 `json:"amount"`
	CardMask     string  `json:"card_mask"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

func NewPaymentHandler(payments payment.PaymentUseCase, tickets ledger.LedgerUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, tickets: tickets}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.POST("/:number/payment", h.pay)
	router.GET("/:number/payment", h.get)
}

// pay creates the ticket's payment (amount = seat price + baggage fee,
// computed here, not by the processor) and settles it. Retrying a paid
// ticket reports "already paid" without reprocessing.
func (h *PaymentHandler) pay(c *gin.Context) {
	number, ok := ticketNumber(c)
	if !ok {
		return
	}
	var req payTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.tickets.GetTicket(number)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	p, err := h.payments.CreatePayment(c.Request.Context(), ticket, ticket.AmountDue(), req.CardNumber)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if err := h.payments.Settle(c.Request.Context(), p); err != nil {
		if errors.Is(err, domain.ErrAlreadySettled) {
			c.JSON(http.StatusOK, gin.H{"message": "already paid", "payment": toPaymentResponse(p)})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toPaymentResponse(p))
}

func (h *PaymentHandler) get(c *gin.Context) {
	number, ok := ticketNumber(c)
	if !ok {
		return
	}
	p, err := h.payments.GetByTicket(number)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPaymentResponse(p))
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:           p.ID,
		TicketNumber: p.TicketNumber,
		Amount:       p.Amount,
		CardMask:     p.CardMask,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}
