package domain

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Device classes a generation can produce
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
)

// GenerationMessage is published by the image pipeline when a job finishes
type GenerationMessage struct {
	JobID  string           `json:"job_id"`
	Prompt string           `json:"prompt"`
	Images []GeneratedImage `json:"images"`
}

// GeneratedImage is one rendered variant of a job
type GeneratedImage struct {
	Device   string `json:"device"`
	ImageURL string `json:"image_url"`
}

// Generation is a validated message ready to be stored
type Generation struct {
	JobID     string
	Prompt    string
	Images    []GeneratedImage
	CreatedAt time.Time
}

// Task pairs a decoded message with the delivery it must settle
type Task struct {
	Message  GenerationMessage
	Delivery amqp.Delivery
}
