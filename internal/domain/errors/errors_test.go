package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leengari/wrangle/internal/domain/errors"
)

func TestKeyColumnNotFoundError(t *testing.T) {
	err := errors.NewKeyColumnNotFound("users", "ghost")
	assert.EqualError(t, err, "key column 'ghost' not found in table 'users'")
}

func TestColumnCollisionError(t *testing.T) {
	err := errors.NewColumnCollision("note", "members", "instruments")
	assert.EqualError(t, err, "column 'note' exists in both 'members' and 'instruments' and cannot be disambiguated")
}
