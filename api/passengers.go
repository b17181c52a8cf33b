package api

import (
	"net/http"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/directory"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service directory.DirectoryUseCase
}

type registerRequest struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PassportNo string `json:"passport_no"`
}

type loginRequest struct {
	PassportNo string `json:"passport_no"`
}

type passengerResponse struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PassportNo string `json:"passport_no"`
}

func NewPassengerHandler(service directory.DirectoryUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.register)
	router.POST("/login", h.login)
	router.GET("/:passport", h.get)
}

func (h *PassengerHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/passengers", h.list)
}

func (h *PassengerHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.Register(req.Name, req.Age, req.Phone, req.Address, req.PassportNo)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toPassengerResponse(p))
}

func (h *PassengerHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.Login(req.PassportNo)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(p))
}

func (h *PassengerHandler) get(c *gin.Context) {
	p, err := h.service.Get(c.Param("passport"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(p))
}

func (h *PassengerHandler) list(c *gin.Context) {
	passengers := h.service.List()
	out := make([]passengerResponse, 0, len(passengers))
	for i := range passengers {
		out = append(out, toPassengerResponse(&passengers[i]))
	}
	c.JSON(http.StatusOK, out)
}

func toPassengerResponse(p *domain.Passenger) passengerResponse {
	return passengerResponse{
		Name:       p.Name,
		Age:        p.Age,
		Phone:      p.Phone,
		Address:    p.Address,
		PassportNo: p.PassportNo,
	}
}
