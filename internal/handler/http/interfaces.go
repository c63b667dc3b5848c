package http

import "github.com/mirunaCalugar/Home-Assistant-Frontend/models"

// Device is the device state the handlers operate on.
type Device interface {
	ReadSensors() (models.SensorsResponse, error)
	Control(action string) (models.ActuatorAction, error)
	AddMessage(msg string) error
	Messages() []string
	Events() []models.Event
	DeleteEvent(index int) error
}
