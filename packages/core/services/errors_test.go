package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"

	"github.com/stretchr/testify/assert"
)

func TestStoreErrorClassification(t *testing.T) {
	log := logger.Discard()

	cases := []struct {
		name string
		err  error
		kind error
	}{
		{"not found", fmt.Errorf("get edition: %w", store.ErrNotFound), ErrNotFound},
		{"duplicate", fmt.Errorf("insert: %w", store.ErrDuplicate), ErrConflict},
		{"invalid field", fmt.Errorf("update: %w", store.ErrInvalidField), ErrValidation},
		{"other", errors.New("connection reset"), ErrPersistence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := storeError(log, "op", tc.err)
			assert.ErrorIs(t, err, tc.kind)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	assert.NoError(t, storeError(log, "op", nil))

	first := validationError("inner", "bad input")
	assert.Same(t, first, storeError(log, "outer", first))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "edition not found", Message(notFoundError("op", "edition not found")))
	assert.Equal(t, "wildcard already used", Message(validationError("op", "wildcard already used")))
	assert.Equal(t, "Internal server error", Message(storeError(logger.Discard(), "op", errors.New("disk full"))))
	assert.Equal(t, "Internal server error", Message(errors.New("plain")))

	wrapped := fmt.Errorf("handler: %w", conflictError("op", "edition %d already exists", 2024))
	assert.ErrorIs(t, wrapped, ErrConflict)
	assert.Equal(t, "edition 2024 already exists", Message(wrapped))
}

func TestParsePointsSign(t *testing.T) {
	assert.Equal(t, -10, ParsePoints("-10"))
	assert.Equal(t, 10, ParsePoints("+10 points"))
}
