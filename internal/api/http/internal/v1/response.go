package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

func validationErrorResponse(c *gin.Context, status int, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.AbortWithStatusJSON(status, ValidationErrorStruct{
			ErrorCode:    6000,
			ErrorMessage: "Validation error",
		})
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
	}
	response := ValidationErrorStruct{
		ErrorCode:    6000,
		ErrorMessage: "Validation error",
	}
	response.Errors = out
	c.AbortWithStatusJSON(status, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "oneof":
		return fmt.Sprintf("Value must be one of: %v", value)
	case "datetime":
		return fmt.Sprintf("Date must match format %v", value)
	case "min":
		return fmt.Sprintf("Minimum allowed value/length is %v", value)
	case "max":
		return fmt.Sprintf("Maximum allowed value/length is %v", value)
	case "phonenumber":
		return "Phone number must be 10 digits"
	}
	return tag
}
