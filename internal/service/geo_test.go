package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, HaversineMeters(55.7558, 37.6173, 55.7558, 37.6173))
}

func TestHaversineMeters_KnownDistance(t *testing.T) {
	// Москва - Санкт-Петербург, около 634 км
	distance := HaversineMeters(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634000, distance, 5000)
}

func TestHaversineMeters_Symmetric(t *testing.T) {
	forward := HaversineMeters(55.7558, 37.6173, 59.9343, 30.3351)
	backward := HaversineMeters(59.9343, 30.3351, 55.7558, 37.6173)
	assert.InDelta(t, forward, backward, 0.001)
}

func TestHaversineMeters_ShortDistance(t *testing.T) {
	// Примерно 111 метров на один промилле градуса широты
	distance := HaversineMeters(55.0, 37.0, 55.001, 37.0)
	assert.InDelta(t, 111, distance, 2)
}
