package mtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromDDHHMM(t *testing.T) {
	tm, ok := FromDDHHMM("121230")
	assert.True(t, ok)
	assert.Equal(t, 12, *tm.Day)
	assert.Equal(t, 12, tm.Hour)
	assert.Equal(t, 30, tm.Minute)

	_, ok = FromDDHHMM("1212")
	assert.False(t, ok, "too short")

	_, ok = FromDDHHMM("329930")
	assert.False(t, ok, "out of range day/hour")
}

func TestFromDDHH(t *testing.T) {
	tm, ok := FromDDHH("2418")
	assert.True(t, ok)
	assert.Equal(t, 24, *tm.Day)
	assert.Equal(t, 18, tm.Hour)
	assert.Equal(t, 0, tm.Minute)

	_, ok = FromDDHH("2425")
	assert.False(t, ok, "hour out of range")
}

func TestFromHHMM(t *testing.T) {
	tm, ok := FromHHMM("1445")
	assert.True(t, ok)
	assert.Nil(t, tm.Day)
	assert.Equal(t, 14, tm.Hour)
	assert.Equal(t, 45, tm.Minute)

	_, ok = FromHHMM("2560")
	assert.False(t, ok, "minute out of range")
}

func TestAfter(t *testing.T) {
	from, _ := FromDDHH("1212")
	until, _ := FromDDHH("1218")
	assert.True(t, After(from, until))
	assert.False(t, After(until, from))

	wrapFrom, _ := FromDDHH("3012")
	wrapUntil, _ := FromDDHH("0100")
	assert.True(t, After(wrapFrom, wrapUntil), "month-boundary wrap counts as later")
}
