package models

// StatusSuccess is the acknowledgment value of a successful mutation.
const StatusSuccess = "success"

// StatusError is the acknowledgment value the device uses for rejected requests.
const StatusError = "error"

// SensorsResponse is the body of GET /sensors.
type SensorsResponse struct {
	Temperature Reading `json:"temperature"`
	Humidity    Reading `json:"humidity"`
	WaterLevel  Reading `json:"waterLevel"`
}

// Snapshot converts the wire readings into a [SensorSnapshot].
func (r SensorsResponse) Snapshot() SensorSnapshot {
	return SensorSnapshot{
		Temperature: r.Temperature.Ptr(),
		Humidity:    r.Humidity.Ptr(),
		WaterLevel:  r.WaterLevel.Ptr(),
	}
}

// EventsResponse is the body of GET /events. A nil Events means the key was
// missing from the payload.
type EventsResponse struct {
	Events *[]Event `json:"events"`
}

// MessagesResponse is the body of GET /messages. A nil Messages means the
// key was missing from the payload.
type MessagesResponse struct {
	Messages *[]string `json:"messages"`
}

// SendMessageRequest is the body of POST /send-message.
type SendMessageRequest struct {
	Message string `json:"message"`
}

// StatusResponse is the acknowledgment returned by every mutation endpoint.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Action  string `json:"action,omitempty"`
	Index   *int   `json:"index,omitempty"`
}

// Succeeded reports whether the device acknowledged the mutation.
func (r StatusResponse) Succeeded() bool {
	return r.Status == StatusSuccess
}
