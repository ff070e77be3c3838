package service

import (
	"math"
	"time"
)

const (
	// decayWindow - фиксированное окно затухания интенсивности
	decayWindow = 2 * time.Hour

	// confirmationsForMaxIntensity - количество подтверждений, дающее 100
	confirmationsForMaxIntensity = 5.0

	// intensityMaterialDelta - порог существенности изменения для записи в бд
	intensityMaterialDelta = 20.0

	// significantIntensity - уровень, пересечение которого снизу вверх
	// запускает рассылку об обновлении инцидента
	significantIntensity = 70.0
)

// DecayedIntensity вычисляет интенсивность инцидента [0,100] по количеству
// подтверждений и времени с последнего подтверждения. Чистая функция:
// без последнего подтверждения или после окна затухания интенсивность 0,
// внутри окна - линейное затухание от базового уровня.
func DecayedIntensity(confirmationCount int, lastConfirmationAt *time.Time, now time.Time) float64 {
	if lastConfirmationAt == nil {
		return 0
	}

	elapsed := now.Sub(*lastConfirmationAt)
	if elapsed >= decayWindow {
		return 0
	}
	// Метка из бд может опережать часы приложения, отрицательный
	// интервал не должен выводить результат за пределы [0,100]
	if elapsed < 0 {
		elapsed = 0
	}

	base := math.Min(100, float64(confirmationCount)/confirmationsForMaxIntensity*100)
	decay := 1 - elapsed.Hours()/decayWindow.Hours()
	return base * decay
}

// MaterialIntensityChange сообщает, достаточно ли велико изменение
// интенсивности, чтобы записывать его в бд
func MaterialIntensityChange(old, new float64) bool {
	return math.Abs(old-new) > intensityMaterialDelta
}

// CrossedSignificantThreshold сообщает, пересекла ли интенсивность
// значимый порог снизу вверх. Проверка пересечения отделена от пересчета,
// чтобы рассылка срабатывала один раз на каждое пересечение
func CrossedSignificantThreshold(old, new float64) bool {
	return old < significantIntensity && new >= significantIntensity
}
