// Package validation validates request DTOs with go-playground/validator
// struct tags and converts failures into *errors.AppError values.
//
//	type Request struct {
//	    URL  string `json:"url" validate:"required"`
//	    Mode string `json:"mode" validate:"omitempty,oneof=native auto generate"`
//	}
//	if err := validation.Validate(req); err != nil {
//	    // err is an *errors.AppError with code MISSING_FIELD or INVALID_INPUT
//	}
package validation
