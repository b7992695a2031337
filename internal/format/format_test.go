package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	assert.Equal(t, "05 Mar 2026", Date("2026-03-05"))
	assert.Equal(t, "not-a-date", Date("not-a-date"))
	assert.Equal(t, "", Date(""))
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "05 Mar 2026, 02:30 PM", DateTime(ts))
}

func TestAmount(t *testing.T) {
	assert.Equal(t, 249.99, Amount("249.99"))
	assert.Equal(t, 100.0, Amount(" 100 "))
	assert.Equal(t, 0.0, Amount(""))
	assert.Equal(t, 0.0, Amount("abc"))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", Currency(0))
	assert.Equal(t, "$150.00", Currency(150))
	assert.Equal(t, "$1,249.50", Currency(1249.5))
	assert.Equal(t, "$1,234,567.89", Currency(1234567.89))
	assert.Equal(t, "-$42.00", Currency(-42))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "82.5%", Percent(82.5))
	assert.Equal(t, "0.0%", Percent(0))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "#22C55E", StatusColor("occupied"))
	assert.Equal(t, "#22C55E", StatusColor("Paid"))
	assert.Equal(t, "#F59E0B", StatusColor("pending"))
	assert.Equal(t, "#EF4444", StatusColor("failed"))
	assert.Equal(t, "#6B7280", StatusColor("whatever"))
}

func TestStatusRGB(t *testing.T) {
	r, g, b := StatusRGB("failed")
	assert.Equal(t, 0xEF, r)
	assert.Equal(t, 0x44, g)
	assert.Equal(t, 0x44, b)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a long n...", Truncate("a long name indeed", 11))
}
