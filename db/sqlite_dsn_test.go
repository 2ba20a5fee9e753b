package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "crm.db?_foreign_keys=on", sqliteDSN("crm.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "crm.db?_fk=1", sqliteDSN("crm.db?_fk=1"))
}
