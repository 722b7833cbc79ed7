package validators

import (
	"context"

	"github.com/MKhiriev/go-sample-api/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the item name (1 to 100 characters).
	FieldName = "name"

	// FieldDescription targets the optional item description (up to 500 characters).
	FieldDescription = "description"

	// FieldPrice targets the item unit price (strictly positive).
	FieldPrice = "price"

	// FieldQuantity targets the item quantity (non-negative).
	FieldQuantity = "quantity"
)

// Bounds applied to item payload fields.
const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

type ItemValidator struct {
}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemPayload:
		return v.validateItemPayload(ctx, value, fields...)
	case *models.ItemPayload:
		return v.validateItemPayload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItemPayload(_ context.Context, payload models.ItemPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldPrice, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if len(payload.Name) < 1 || len(payload.Name) > maxNameLength {
				return ErrInvalidName
			}
		case FieldDescription:
			if len(payload.Description) > maxDescriptionLength {
				return ErrDescriptionTooLong
			}
		case FieldPrice:
			if payload.Price <= 0 {
				return ErrInvalidPrice
			}
		case FieldQuantity:
			if payload.Quantity < 0 {
				return ErrInvalidQuantity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
