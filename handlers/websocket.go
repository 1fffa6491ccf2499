package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"home-monitor/repositories"
	"home-monitor/usecases"
	"home-monitor/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket message envelopes
type incomingMessage struct {
	Type string `json:"type"` // sensor_data | alarm | heartbeat
}

type sensorSample struct {
	Timestamp   string  `json:"timestamp"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Motion      bool    `json:"motion"`
	Alarm       bool    `json:"alarm"`
	Button      bool    `json:"button"`
}

type sensorDataPayload struct {
	Type     string         `json:"type"`
	DeviceID string         `json:"device_id"`
	Samples  []sensorSample `json:"samples"`
}

type alarmPayload struct {
	Type     string `json:"type"`
	DeviceID string `json:"device_id"`
	Message  string `json:"message"`
}

// WSHandler groups dependencies for websocket flows
type WSHandler struct {
	mgr           *ws.Manager
	readings      *usecases.ReadingUseCase
	notifications *usecases.NotificationUseCase
}

func NewWSHandler(mgr *ws.Manager, readings *usecases.ReadingUseCase, notifications *usecases.NotificationUseCase) *WSHandler {
	return &WSHandler{mgr: mgr, readings: readings, notifications: notifications}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleDeviceWS upgrades to websocket and reads messages from device
// GET /ws?id=<device_id>
func (h *WSHandler) HandleDeviceWS(c *gin.Context) {
	deviceID := c.Query("id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "missing device id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	// Register connection
	h.mgr.Register(deviceID, conn)
	log.Printf("device connected: %s", deviceID)

	// Ensure cleanup on exit
	defer func() {
		h.mgr.Unregister(deviceID)
		log.Printf("device disconnected: %s", deviceID)
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("device %s closed connection", deviceID)
			} else {
				log.Printf("read error from %s: %v", deviceID, err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		// Peek type
		var base incomingMessage
		if err := json.Unmarshal(message, &base); err != nil {
			log.Printf("invalid json from %s: %v", deviceID, err)
			continue
		}

		switch base.Type {
		case "sensor_data":
			var payload sensorDataPayload
			if err := json.Unmarshal(message, &payload); err != nil {
				log.Printf("invalid sensor_data payload from %s: %v", deviceID, err)
				continue
			}
			samples := make([]repositories.Sample, 0, len(payload.Samples))
			for _, s := range payload.Samples {
				at, err := time.Parse(time.RFC3339, s.Timestamp)
				if err != nil {
					at = time.Now().UTC()
				}
				samples = append(samples, repositories.Sample{
					TemperatureC: s.Temperature,
					Humidity:     s.Humidity,
					Motion:       s.Motion,
					Alarm:        s.Alarm,
					Button:       s.Button,
					CreatedAt:    at,
				})
			}
			if err := h.readings.Ingest(deviceID, samples); err != nil {
				log.Printf("failed to store sensor batch from %s: %v", deviceID, err)
			}
		case "alarm":
			var payload alarmPayload
			if err := json.Unmarshal(message, &payload); err != nil {
				log.Printf("invalid alarm payload from %s: %v", deviceID, err)
				continue
			}
			if payload.Message == "" {
				payload.Message = "Alarm triggered"
			}
			if err := h.notifications.RecordAlarm(deviceID, payload.Message); err != nil {
				log.Printf("failed to record alarm from %s: %v", deviceID, err)
			}
		case "heartbeat":
			// No-op, the read itself keeps the connection registered
		default:
			log.Printf("unknown message type from %s: %s", deviceID, base.Type)
		}
	}
}
