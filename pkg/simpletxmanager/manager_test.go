package simpletxmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}

	assert.False(t, isRetryable(errors.New("something broke")))
	assert.True(t, isRetryable(serialization))
	assert.True(t, isRetryable(&pq.Error{Code: "40P01"}))
	assert.False(t, isRetryable(&pq.Error{Code: "23505"}))

	// Обёрнутая репозиторием драйверная ошибка остаётся распознаваемой
	wrapped := fmt.Errorf("booking: %w: execute query: %w", errors.New("exec"), serialization)
	assert.True(t, isRetryable(wrapped))
}
