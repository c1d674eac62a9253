package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorCodes(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "agent_responses_incident_id_fkey"})
	unique := &pgconn.PgError{Code: "23505"}

	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isForeignKeyViolation(unique))
	assert.False(t, isForeignKeyViolation(errors.New("connection reset")))

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(fk))
}
