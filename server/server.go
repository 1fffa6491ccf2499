package server

import (
	"home-monitor/auth"
	"home-monitor/confs"
	"home-monitor/db"
	"home-monitor/handlers"
	httpHandler "home-monitor/handlers/http"
	"home-monitor/repositories"
	"home-monitor/services"
	"home-monitor/usecases"
	"home-monitor/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	conf := confs.Get()

	// Setup CORS middleware
	corsConf := cors.DefaultConfig()
	corsConf.AllowAllOrigins = true
	corsConf.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConf.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(corsConf))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	accountRepo := repositories.NewAccountPgRepository(s.db)
	deviceRepo := repositories.NewDevicePgRepository(s.db)
	readingRepo := repositories.NewReadingPgRepository(s.db)
	notificationRepo := repositories.NewNotificationPgRepository(s.db)

	// Outbound service clients
	geocoder := services.NewGeocoder(conf.OpenWeatherAppID)
	weather := services.NewWeatherClient(conf.OpenWeatherAppID)
	sms := services.NewSMSClient(conf.TwilioSID, conf.TwilioAuthToken, conf.TwilioVirtualNumber, conf.TwilioVerifiedNumber)
	tokens := auth.NewTokenIssuer(conf.JWTSecretKey, conf.JWTRefreshKey, conf.AccessTokenTTL, conf.RefreshTokenTTL)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(accountRepo, geocoder, tokens)
	userUseCase := usecases.NewUserUseCase(accountRepo, deviceRepo)
	readingUseCase := usecases.NewReadingUseCase(readingRepo)
	notificationUseCase := usecases.NewNotificationUseCase(notificationRepo, sms)

	// WebSocket manager and handler
	manager := ws.NewManager()
	wsHandler := handlers.NewWSHandler(manager, readingUseCase, notificationUseCase)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	settingsHandler := httpHandler.NewSettingsHandler(userUseCase)
	deviceDataHandler := httpHandler.NewDeviceDataHandler(readingUseCase)
	notificationHandler := httpHandler.NewNotificationHandler(notificationUseCase)
	alarmHandler := httpHandler.NewAlarmHandler(manager)
	weatherHandler := httpHandler.NewWeatherHandler(userUseCase, weather)

	// Public auth routes
	s.app.POST("/signup", authHandler.Signup)
	s.app.POST("/login", authHandler.Login)

	// Authenticated routes
	api := s.app.Group("", httpHandler.AuthRequired(authUseCase))
	{
		settings := api.Group("/settings")
		{
			settings.GET("/user", settingsHandler.Get)
			settings.PUT("/user", settingsHandler.Update)
		}

		api.GET("/user/devices", settingsHandler.Devices)

		deviceData := api.Group("/device-data")
		{
			deviceData.GET("/:device_id/live", deviceDataHandler.Live)
			deviceData.GET("/:device_id/historical/:window", deviceDataHandler.Historical)
			deviceData.GET("/:device_id/historical-alarm", deviceDataHandler.HistoricalAlarm)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.PUT("/:notification_id", notificationHandler.Acknowledge)
		}

		devices := api.Group("/devices")
		{
			devices.GET("/connected", alarmHandler.Connected)
			devices.POST("/:device_id/alarm/on", notificationHandler.AlarmOn)
			devices.GET("/:device_id/alarm/off", alarmHandler.AlarmOff)
		}

		api.GET("/weather-info/:lang/:device_id", weatherHandler.Get)
	}

	s.app.GET("/ws", wsHandler.HandleDeviceWS)

	if err := s.app.Run(conf.Addr); err != nil {
		panic(err)
	}
}
