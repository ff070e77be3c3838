package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecayedIntensity_NoConfirmations(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 0.0, DecayedIntensity(0, nil, now))
	assert.Equal(t, 0.0, DecayedIntensity(10, nil, now))
}

func TestDecayedIntensity_FreshConfirmation(t *testing.T) {
	now := time.Now()

	// 5 подтверждений только что - максимальная интенсивность
	assert.InDelta(t, 100.0, DecayedIntensity(5, &now, now), 0.001)

	// 1 подтверждение только что - пятая часть максимума
	assert.InDelta(t, 20.0, DecayedIntensity(1, &now, now), 0.001)

	// Базовый уровень не превышает 100 даже при большом количестве
	assert.InDelta(t, 100.0, DecayedIntensity(50, &now, now), 0.001)
}

func TestDecayedIntensity_LinearDecay(t *testing.T) {
	now := time.Now()
	hourAgo := now.Add(-time.Hour)

	// Половина окна затухания - половина базового уровня
	assert.InDelta(t, 50.0, DecayedIntensity(5, &hourAgo, now), 0.001)
}

// Метка последнего подтверждения из бд может опережать часы приложения
func TestDecayedIntensity_FutureTimestampClamped(t *testing.T) {
	now := time.Now()
	future := now.Add(30 * time.Minute)

	assert.InDelta(t, 100.0, DecayedIntensity(10, &future, now), 0.001)
	assert.LessOrEqual(t, DecayedIntensity(10, &future, now), 100.0)
	assert.InDelta(t, 20.0, DecayedIntensity(1, &future, now), 0.001)
}

func TestDecayedIntensity_WindowExpired(t *testing.T) {
	now := time.Now()
	twoHoursAgo := now.Add(-2 * time.Hour)
	threeHoursAgo := now.Add(-3 * time.Hour)

	assert.Equal(t, 0.0, DecayedIntensity(5, &twoHoursAgo, now))
	assert.Equal(t, 0.0, DecayedIntensity(100, &threeHoursAgo, now))
}

// Интенсивность не растет со временем при неизменных подтверждениях
func TestDecayedIntensity_MonotoneNonIncreasing(t *testing.T) {
	lastConfirmation := time.Now()

	previous := 1000.0
	for minutes := 0; minutes <= 150; minutes += 10 {
		now := lastConfirmation.Add(time.Duration(minutes) * time.Minute)
		current := DecayedIntensity(3, &lastConfirmation, now)
		assert.LessOrEqual(t, current, previous, "intensity grew at %d minutes", minutes)
		assert.GreaterOrEqual(t, current, 0.0)
		assert.LessOrEqual(t, current, 100.0)
		previous = current
	}
}

func TestMaterialIntensityChange(t *testing.T) {
	assert.False(t, MaterialIntensityChange(50, 50))
	assert.False(t, MaterialIntensityChange(50, 65))
	assert.False(t, MaterialIntensityChange(50, 30))
	assert.True(t, MaterialIntensityChange(50, 75))
	assert.True(t, MaterialIntensityChange(50, 20))
}

func TestCrossedSignificantThreshold(t *testing.T) {
	assert.True(t, CrossedSignificantThreshold(60, 70))
	assert.True(t, CrossedSignificantThreshold(0, 100))

	// Уже выше порога - пересечения нет
	assert.False(t, CrossedSignificantThreshold(70, 80))
	assert.False(t, CrossedSignificantThreshold(90, 95))

	// Движение вниз - пересечения нет
	assert.False(t, CrossedSignificantThreshold(80, 60))
	assert.False(t, CrossedSignificantThreshold(60, 65))
}
