package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsAreIdempotent(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Migrations() {
		assert.False(t, seen[m.Name], "duplicate migration %s", m.Name)
		seen[m.Name] = true
		assert.Contains(t, m.SQL, "IF NOT EXISTS", m.Name)
	}
	assert.True(t, strings.Contains(Migrations()[0].SQL, "owner_id UUID NOT NULL"))
}
