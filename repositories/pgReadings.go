package repositories

import (
	"errors"
	"fmt"

	"home-monitor/db"
	"home-monitor/entities"

	"gorm.io/gorm"
)

type readingPgRepository struct {
	db db.Database
}

func NewReadingPgRepository(database db.Database) ReadingRepository {
	return &readingPgRepository{db: database}
}

// Latest resolves the most recent value of each stream independently. The
// three streams arrive asynchronously, so a single latest-row-overall query
// would mix stale and fresh values. Ties on created_at break on the highest
// insertion id. A stream with no rows leaves its field nil.
func (r *readingPgRepository) Latest(deviceID string) (*LiveReading, error) {
	live := &LiveReading{}

	var temp entities.Temperature
	err := r.latestRow(deviceID, &temp)
	if err == nil {
		live.Temperature = &temp.Temperature
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var humid entities.Humidity
	err = r.latestRow(deviceID, &humid)
	if err == nil {
		live.Humidity = &humid.Humidity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var alarm entities.Alarm
	err = r.latestRow(deviceID, &alarm)
	if err == nil {
		live.Alarm = &alarm.IsAlarm
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return live, nil
}

func (r *readingPgRepository) latestRow(deviceID string, dest interface{}) error {
	return r.db.GetDB().Where("device_id = ?", deviceID).
		Order("created_at DESC, id DESC").First(dest).Error
}

// Historical buckets temperature and humidity min/max over a trailing range:
// hourly over one day, daily over one week, ISO-week over four weeks. The
// month window is read newest-first; the caller caps it to four buckets.
func (r *readingPgRepository) Historical(deviceID string, window Window) ([]HistoricalBucket, error) {
	var bucketExpr, interval, order string
	switch window {
	case WindowDay:
		bucketExpr = "TO_CHAR(a.created_at, 'YYYY/MM/DD HH24:00:00')"
		interval = "1 day"
		order = "ASC"
	case WindowWeek:
		bucketExpr = "TO_CHAR(a.created_at, 'YYYY/MM/DD')"
		interval = "1 week"
		order = "ASC"
	case WindowMonth:
		bucketExpr = "TO_CHAR(DATE_TRUNC('week', a.created_at), 'YYYY/MM/DD')"
		interval = "4 weeks"
		order = "DESC"
	default:
		return nil, fmt.Errorf("unknown historical window: %s", window)
	}

	query := fmt.Sprintf(`
		SELECT
			MIN(a.temperature) AS min_temp,
			MAX(a.temperature) AS max_temp,
			MIN(b.humidity) AS min_humid,
			MAX(b.humidity) AS max_humid,
			%s AS bucket
		FROM temperature a
		INNER JOIN humidity b
			ON a.created_at = b.created_at
			AND a.device_id = b.device_id
		WHERE
			a.created_at BETWEEN now() - INTERVAL '%s' AND now()
			AND a.device_id = ?
		GROUP BY bucket
		ORDER BY bucket %s`, bucketExpr, interval, order)

	var rows []HistoricalBucket
	err := r.db.GetDB().Raw(query, deviceID).Scan(&rows).Error
	return rows, err
}

// HistoricalAlarm returns every moment the alarm stream recorded true,
// chronologically.
func (r *readingPgRepository) HistoricalAlarm(deviceID string) ([]AlarmEvent, error) {
	var rows []AlarmEvent
	err := r.db.GetDB().Raw(`
		SELECT
			TO_CHAR(created_at, 'YYYY/MM/DD') AS date,
			TO_CHAR(created_at, 'HH24:MI') AS hour
		FROM alarm
		WHERE device_id = ? AND is_alarm = TRUE
		ORDER BY date, hour`, deviceID).Scan(&rows).Error
	return rows, err
}

// AppendBatch fans one batch of device samples out to the five reading
// tables in a single transaction.
func (r *readingPgRepository) AppendBatch(deviceID string, samples []Sample) error {
	if len(samples) == 0 {
		return nil
	}

	temps := make([]entities.Temperature, 0, len(samples))
	humids := make([]entities.Humidity, 0, len(samples))
	motions := make([]entities.Motion, 0, len(samples))
	alarms := make([]entities.Alarm, 0, len(samples))
	buttons := make([]entities.Button, 0, len(samples))

	for _, s := range samples {
		temps = append(temps, entities.Temperature{Temperature: s.TemperatureC, CreatedAt: s.CreatedAt, DeviceID: deviceID})
		humids = append(humids, entities.Humidity{Humidity: s.Humidity, CreatedAt: s.CreatedAt, DeviceID: deviceID})
		motions = append(motions, entities.Motion{Motion: s.Motion, CreatedAt: s.CreatedAt, DeviceID: deviceID})
		alarms = append(alarms, entities.Alarm{IsAlarm: s.Alarm, CreatedAt: s.CreatedAt, DeviceID: deviceID})
		buttons = append(buttons, entities.Button{DeviceListening: s.Button, CreatedAt: s.CreatedAt, DeviceID: deviceID})
	}

	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&temps).Error; err != nil {
			return err
		}
		if err := tx.Create(&humids).Error; err != nil {
			return err
		}
		if err := tx.Create(&motions).Error; err != nil {
			return err
		}
		if err := tx.Create(&alarms).Error; err != nil {
			return err
		}
		return tx.Create(&buttons).Error
	})
}
