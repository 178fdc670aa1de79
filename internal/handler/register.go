package handler

import (
	"net/http"
	"strconv"

	"github.com/InhotaEverton/Aromas-Caf/internal/apierror"
	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/middleware"
	"github.com/InhotaEverton/Aromas-Caf/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegisterHandler struct{ svc service.RegisterService }

func NewRegisterHandler(svc service.RegisterService) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// Open godoc
// @Summary Opens a new register session
// @Tags register
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.OpenRegisterRequest true "Opening balance"
// @Success 201 {object} dto.SessionResponse
// @Failure 409 {object} apierror.APIError "A session is already open"
// @Router /v1/register/open [post]
func (h *RegisterHandler) Open(c *gin.Context) {
	var req dto.OpenRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	operatorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid user ID"))
		return
	}
	resp, err := h.svc.Open(c.Request.Context(), operatorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Close godoc
// @Summary Closes the open register session and reconciles the balance
// @Tags register
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CloseRegisterRequest true "Optional counted balance and observations"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} apierror.APIError "No open session"
// @Router /v1/register/close [post]
func (h *RegisterHandler) Close(c *gin.Context) {
	var req dto.CloseRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Close(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Current godoc
// @Summary Returns the currently open register session
// @Tags register
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} apierror.APIError "No open session"
// @Router /v1/register/current [get]
func (h *RegisterHandler) Current(c *gin.Context) {
	resp, err := h.svc.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("No open register session"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary godoc
// @Summary Returns the per-method cash position of a session
// @Tags register
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionSummaryResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/register/{id}/summary [get]
func (h *RegisterHandler) Summary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History godoc
// @Summary Lists register sessions, most recent first (the open one included)
// @Tags register
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} dto.SessionListResponse
// @Router /v1/register/history [get]
func (h *RegisterHandler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	resp, err := h.svc.History(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
