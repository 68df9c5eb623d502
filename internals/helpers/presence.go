package helper

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// FieldTracker recebe as chaves presentes no corpo da requisição.
type FieldTracker interface {
	SetFields(fields map[string]bool)
}

// Presence é embutido nos DTOs de update para separar "campo ausente" de
// "campo enviado como null ou vazio" (que limpa colunas opcionais).
type Presence struct {
	fields map[string]bool
}

func (p *Presence) SetFields(fields map[string]bool) { p.fields = fields }

// Has: a chave veio no corpo, mesmo com valor null.
func (p Presence) Has(name string) bool { return p.fields[name] }

// BodyFields lista as chaves de primeiro nível do corpo JSON ou form.
func BodyFields(c *fiber.Ctx) map[string]bool {
	fields := map[string]bool{}
	ct := strings.ToLower(string(c.Request().Header.ContentType()))

	switch {
	case strings.HasPrefix(ct, fiber.MIMEApplicationJSON):
		var raw map[string]any
		if err := sonic.Unmarshal(c.Body(), &raw); err == nil {
			for k := range raw {
				fields[k] = true
			}
		}
	case strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		c.Request().PostArgs().VisitAll(func(k, _ []byte) {
			fields[string(k)] = true
		})
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		if form, err := c.MultipartForm(); err == nil {
			for k := range form.Value {
				fields[k] = true
			}
		}
	}
	return fields
}
