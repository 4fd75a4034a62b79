package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gymdesk/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("TOKEN_TTL", "168h")
	viper.SetDefault("COOKIE_SECURE", false)
	viper.AutomaticEnv() // Load environment variables

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set; refusing to start with a default signing key")
	}
	dsn := viper.GetString("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN must be set")
	}

	// --- Database ---
	// Opened exactly once here and injected; the pool is shared safely across
	// requests without any lazy reconnect flag.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Domain events are best-effort; without a broker URL the service runs
	// with event publication disabled.
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		// Notification worker draining the domain-event queue.
		go func() {
			log.Println("Starting RabbitMQ consumer for gym events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received %s event (tag %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- App ---
	app, _, err := NewApp(Config{
		JWTSecret:    jwtSecret,
		TokenTTL:     viper.GetDuration("TOKEN_TTL"),
		CookieSecure: viper.GetBool("COOKIE_SECURE"),
	}, db, mqClient)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// --- Start HTTP Server ---
	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
