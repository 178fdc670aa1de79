package handler

import (
	"net/http"

	"github.com/InhotaEverton/Aromas-Caf/internal/apierror"
	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct{ svc service.CustomerService }

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// List godoc
// @Summary Lists customers, optionally filtered by name
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name filter (substring)"
// @Success 200 {array} dto.CustomerResponse
// @Router /v1/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Fetches one customer by id
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Registers a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SaveCustomerRequest true "New customer"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.SaveCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary Updates a customer's contact data
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param body body dto.SaveCustomerRequest true "Fields to change"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.SaveCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
