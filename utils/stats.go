package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Population           int
	TotalGenerations     int
	GlidersInjected      int
	GlidersSkipped       int
	LastStepDuration     time.Duration
	StartTime            time.Time
}

// NewStats starts the clock that GenerationsPerSecond is measured against
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one finished generation and how long computing it took
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.LastStepDuration = duration
	if elapsed := time.Since(s.StartTime); elapsed > 0 {
		s.GenerationsPerSecond = float64(generation) / elapsed.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// RecordGlider counts one glider injection attempt
func (s *Stats) RecordGlider(placed bool) {
	if placed {
		s.GlidersInjected++
		return
	}
	s.GlidersSkipped++
}
