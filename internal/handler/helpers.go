package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/InhotaEverton/Aromas-Caf/internal/apierror"
	"github.com/InhotaEverton/Aromas-Caf/internal/pos"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps domain errors to HTTP statuses. Anything unrecognized is a
// plain 400 with the error text — domain errors carry client-safe messages.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, pos.ErrRegisterAlreadyOpen),
		errors.Is(err, pos.ErrRegisterClosed):
		status = http.StatusConflict
	case errors.Is(err, pos.ErrInsufficientPayment),
		errors.Is(err, pos.ErrEmptyCart),
		errors.Is(err, pos.ErrInvalidAmount):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, pos.ErrPersistence):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, apierror.New(err.Error()))
}
