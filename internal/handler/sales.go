package handler

import (
	"net/http"

	"github.com/InhotaEverton/Aromas-Caf/internal/apierror"
	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/middleware"
	"github.com/InhotaEverton/Aromas-Caf/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SaleHandler struct{ svc service.SaleService }

func NewSaleHandler(svc service.SaleService) *SaleHandler { return &SaleHandler{svc: svc} }

// Checkout godoc
// @Summary Settles a cart against tendered payments
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CheckoutRequest true "Cart lines and payments"
// @Success 201 {object} dto.SaleResponse
// @Failure 409 {object} apierror.APIError "No open register session"
// @Failure 422 {object} apierror.APIError "Empty cart or insufficient payment"
// @Router /v1/sales/checkout [post]
func (h *SaleHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	operatorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid user ID"))
		return
	}
	resp, err := h.svc.Checkout(c.Request.Context(), operatorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Lists settled sales for a calendar day (default today)
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} dto.SaleListResponse
// @Router /v1/sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid query: "+err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Invalid pagination"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Fetches one sale with its items and payments
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
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

// Receipt godoc
// @Summary Downloads the PDF receipt of a sale
// @Tags sales
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /v1/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	path, err := h.svc.Receipt(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.FileAttachment(path, "receipt.pdf")
}
