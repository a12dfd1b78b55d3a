package dashboard

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"opsboard/m/domain"
)

// ErrInvalidInput is wrapped by every ValidationError.
var ErrInvalidInput = errors.New("invalid input")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects a form submission. The store is left untouched.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("invalid input: %s", strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Raw form submissions, one field per input element.

type InventoryForm struct {
	Code        string
	Description string
	Category    string
	Stock       string
	MinStock    string
}

type ShipmentForm struct {
	Destination string
	Date        string
	Notes       string
}

type OrderForm struct {
	Product  string
	Line     string
	Quantity string
	Priority string
}

type MaintenanceForm struct {
	Equipment   string
	Date        string
	Type        string
	Description string
}

type inventoryInput struct {
	Code        string `form:"code" validate:"required"`
	Description string `form:"description" validate:"required"`
	Category    string `form:"category" validate:"required,oneof=raw-material finished-good tooling equipment"`
	Stock       int64  `form:"stock" validate:"min=0"`
	MinStock    int64  `form:"min_stock" validate:"min=0"`
}

type shipmentInput struct {
	Destination string `form:"destination" validate:"required"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
	Notes       string `form:"notes"`
}

type orderInput struct {
	Product  string `form:"product" validate:"required"`
	Line     string `form:"line" validate:"required,oneof=A B C"`
	Quantity int64  `form:"quantity" validate:"min=1"`
	Priority string `form:"priority" validate:"required,oneof=normal high urgent"`
}

type maintenanceInput struct {
	Equipment   string `form:"equipment" validate:"required"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
	Type        string `form:"type" validate:"required,oneof=preventive corrective predictive"`
	Description string `form:"description" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

// formParser collects conversion failures before validation runs.
type formParser struct {
	fields []FieldError
}

func (p *formParser) int(field, raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		p.fields = append(p.fields, FieldError{Field: field, Message: "debe ser un número entero"})
		return 0
	}
	return n
}

func (p *formParser) check(v *validator.Validate, input any) error {
	if err := v.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			if p.has(fe.Field()) {
				continue
			}
			p.fields = append(p.fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
	}
	if len(p.fields) > 0 {
		return &ValidationError{Fields: p.fields}
	}
	return nil
}

func (p *formParser) has(field string) bool {
	for _, f := range p.fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obligatorio"
	case "oneof":
		return "valor no permitido"
	case "min":
		return "debe ser mayor o igual a " + fe.Param()
	case "datetime":
		return "fecha inválida, use AAAA-MM-DD"
	}
	return "valor inválido"
}

func parseInventoryForm(v *validator.Validate, f InventoryForm) (inventoryInput, error) {
	var p formParser
	in := inventoryInput{
		Code:        strings.TrimSpace(f.Code),
		Description: strings.TrimSpace(f.Description),
		Category:    strings.TrimSpace(f.Category),
		Stock:       p.int("stock", f.Stock),
		MinStock:    p.int("min_stock", f.MinStock),
	}
	return in, p.check(v, in)
}

func parseShipmentForm(v *validator.Validate, f ShipmentForm) (shipmentInput, error) {
	var p formParser
	in := shipmentInput{
		Destination: strings.TrimSpace(f.Destination),
		Date:        strings.TrimSpace(f.Date),
		Notes:       strings.TrimSpace(f.Notes),
	}
	return in, p.check(v, in)
}

func parseOrderForm(v *validator.Validate, f OrderForm) (orderInput, error) {
	var p formParser
	in := orderInput{
		Product:  strings.TrimSpace(f.Product),
		Line:     strings.TrimSpace(f.Line),
		Quantity: p.int("quantity", f.Quantity),
		Priority: strings.TrimSpace(f.Priority),
	}
	if in.Priority == "" {
		in.Priority = string(domain.PriorityNormal)
	}
	return in, p.check(v, in)
}

func parseMaintenanceForm(v *validator.Validate, f MaintenanceForm) (maintenanceInput, error) {
	var p formParser
	in := maintenanceInput{
		Equipment:   strings.TrimSpace(f.Equipment),
		Date:        strings.TrimSpace(f.Date),
		Type:        strings.TrimSpace(f.Type),
		Description: strings.TrimSpace(f.Description),
	}
	return in, p.check(v, in)
}
