package helpers

import (
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		offset     uint64
		limit      int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"zero page", 0, 5, 0, 5},
		{"oversized", 2, 1000, uint64(DefaultPageSize), DefaultPageSize},
		{"negative size", 1, -1, 0, DefaultPageSize},
		{"huge page", 1 << 62, 20, uint64(math.MaxInt64 / 20 * 20), 20},
		{"max page", math.MaxInt, 1, uint64(math.MaxInt - 1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset > math.MaxInt64 {
				t.Fatalf("offset %d overflows int64", offset)
			}
			if offset != tt.offset || limit != tt.limit {
				t.Errorf("got (%d, %d) want (%d, %d)", offset, limit, tt.offset, tt.limit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)
	if info.TotalPages != 3 || info.CurrentPage != 2 || info.PageSize != 20 || info.TotalItems != 45 {
		t.Errorf("unexpected pagination %+v", info)
	}

	empty := NewPaginationInfo(0, 1, 20)
	if empty.TotalPages != 1 {
		t.Errorf("empty result: got %d pages want 1", empty.TotalPages)
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/users?page=4&size=abc", nil)

	page, size := ParsePaginationParams(c)
	if page != 4 || size != DefaultPageSize {
		t.Errorf("got (%d, %d) want (4, %d)", page, size, DefaultPageSize)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("got %v want 90m", got)
	}
	if got := ParseDuration("soon", time.Hour); got != time.Hour {
		t.Errorf("got %v want fallback", got)
	}
	if got := ParseDuration("", time.Minute); got != time.Minute {
		t.Errorf("got %v want fallback", got)
	}
}
