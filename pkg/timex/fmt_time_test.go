package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeFormat(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-01-02 11:04:05", TimeFormat(ts))
	assert.Equal(t, "2024-01-02T03:04:05.000Z", ISO8601(ts))
}
