package helper

import (
	"errors"
	"log"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptBRTranslations "github.com/go-playground/validator/v10/translations/pt_BR"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	translator   ut.Translator
)

// ValidationError carrega os erros por campo; o ErrorHandler global responde 422.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, field+": "+strings.Join(msgs, "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

// Validator devolve a instância compartilhada com mensagens em português.
func Validator() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form", "query"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		locale := pt_BR.New()
		uni := ut.New(locale, locale)
		translator, _ = uni.GetTranslator("pt_BR")
		if err := ptBRTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
			log.Printf("[WARN] tradução pt_BR do validator não registrada: %v", err)
		}
	})
	return validate, translator
}

// ValidateStruct devolve nil quando s é válido.
func ValidateStruct(s any) *ValidationError {
	v, trans := Validator()
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidationError("body", err.Error())
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], fe.Translate(trans))
	}
	return &ValidationError{Fields: out}
}

// Normalizer é implementado pelos DTOs que limpam texto antes da validação.
type Normalizer interface {
	Normalize()
}

// ParseBody faz BodyParser (JSON ou form) + Normalize + validação.
func ParseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return NewValidationError("body", "Corpo da requisição inválido: "+err.Error())
	}
	if ft, ok := dst.(FieldTracker); ok {
		ft.SetFields(BodyFields(c))
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	if verr := ValidateStruct(dst); verr != nil {
		return verr
	}
	return nil
}

// ParseUUIDParam lê um path param UUID; inválido → 422.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewValidationError(name, "UUID inválido: "+raw)
	}
	return id, nil
}

// ParseUUIDQuery lê um query param UUID opcional.
func ParseUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, NewValidationError(name, "UUID inválido: "+raw)
	}
	return &id, nil
}
