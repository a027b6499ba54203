package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"restopanel/internal/apierror"
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
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewFields(fields))
		return false
	}
	return true
}

// writeError maps the typed service errors onto HTTP statuses. Anything not
// in the taxonomy is queued for the ErrorHandler middleware, which logs it
// and answers 500 without leaking details.
func writeError(c *gin.Context, err error) {
	var (
		authErr     *apierror.AuthError
		notFound    *apierror.NotFoundError
		validation  *apierror.ValidationError
		conflict    *apierror.ConflictError
		transition  *apierror.TransitionError
		unavailable *apierror.BackendUnavailableError
	)
	switch {
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &unavailable):
		c.JSON(http.StatusServiceUnavailable, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}
