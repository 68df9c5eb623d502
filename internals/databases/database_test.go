package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLiteDSN(t *testing.T) {
	cases := map[string]string{
		"":                            "file:gestao_tarefas.db?_foreign_keys=1",
		"file::memory:":               "file::memory:?_foreign_keys=1",
		"sqlite://dev.db":             "dev.db?_foreign_keys=1",
		"file:x.db?cache=shared":      "file:x.db?cache=shared&_foreign_keys=1",
		"file:x.db?_foreign_keys=0":   "file:x.db?_foreign_keys=0",
		"file:x.db?_fk=1&mode=memory": "file:x.db?_fk=1&mode=memory",
	}
	for in, want := range cases {
		assert.Equal(t, want, SQLiteDSN(in), in)
	}
}

func TestStartKeepAliveDisabled(t *testing.T) {
	for _, spec := range []string{"", "off", " OFF "} {
		c, err := StartKeepAlive(nil, spec)
		assert.NoError(t, err, spec)
		assert.Nil(t, c, spec)
	}
}

func TestStartKeepAliveInvalidSpec(t *testing.T) {
	_, err := StartKeepAlive(nil, "não é cron")
	assert.Error(t, err)
}
