package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer   abc.def.ghi  ", "abc.def.ghi", true},
		{`Bearer "abc.def.ghi"`, "abc.def.ghi", true},
		{"", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearer", "", false},
		{"Bearer a b", "", false},
	}

	for _, tc := range cases {
		app := fiber.New()
		var (
			got string
			err error
		)
		app.Get("/", func(c *fiber.Ctx) error {
			got, err = extractBearerToken(c)
			return nil
		})

		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set(fiber.HeaderAuthorization, tc.header)
		}
		_, testErr := app.Test(req, -1)
		require.NoError(t, testErr)

		if tc.ok {
			assert.NoError(t, err, tc.header)
			assert.Equal(t, tc.want, got, tc.header)
		} else {
			assert.Error(t, err, tc.header)
		}
	}
}
