package usecases

import (
	"errors"

	"home-monitor/repositories"
)

// monthBucketCap limits the month view to the most recent week buckets.
const monthBucketCap = 4

type ReadingUseCase struct {
	readings repositories.ReadingRepository
}

func NewReadingUseCase(readings repositories.ReadingRepository) *ReadingUseCase {
	return &ReadingUseCase{readings: readings}
}

// Live returns the latest value of each stream. A stream with no data yields
// a nil field rather than an error.
func (uc *ReadingUseCase) Live(deviceID string) (*repositories.LiveReading, error) {
	if deviceID == "" {
		return nil, errors.New("device id is required")
	}
	return uc.readings.Latest(deviceID)
}

// Historical returns bucketed min/max aggregates for the window. The month
// window is capped to the four most recent week buckets, returned
// chronologically.
func (uc *ReadingUseCase) Historical(deviceID string, window repositories.Window) ([]repositories.HistoricalBucket, error) {
	if deviceID == "" {
		return nil, errors.New("device id is required")
	}
	switch window {
	case repositories.WindowDay, repositories.WindowWeek, repositories.WindowMonth:
	default:
		return nil, errors.New("window must be one of day, week, month")
	}

	rows, err := uc.readings.Historical(deviceID, window)
	if err != nil {
		return nil, err
	}

	if window == repositories.WindowMonth {
		// rows arrive newest-first for the month window
		if len(rows) > monthBucketCap {
			rows = rows[:monthBucketCap]
		}
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows, nil
}

func (uc *ReadingUseCase) HistoricalAlarm(deviceID string) ([]repositories.AlarmEvent, error) {
	if deviceID == "" {
		return nil, errors.New("device id is required")
	}
	return uc.readings.HistoricalAlarm(deviceID)
}

// Ingest appends a reported batch of samples to the reading tables.
func (uc *ReadingUseCase) Ingest(deviceID string, samples []repositories.Sample) error {
	if deviceID == "" {
		return errors.New("device id is required")
	}
	return uc.readings.AppendBatch(deviceID, samples)
}
