package http

import (
	"errors"
	"net/http"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/app"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/simulator"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/utils"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

// errorStyle tells which body shape the device uses for an error.
type errorStyle int

const (
	// styleError answers {"error": "..."}.
	styleError errorStyle = iota
	// styleStatus answers {"status": "error", "message": "..."}.
	styleStatus
)

type errorResponse struct {
	status  int
	message string
	style   errorStyle
}

var errorResponseMap = map[error]errorResponse{
	simulator.ErrSensorRead:        {http.StatusInternalServerError, app.MsgSensorReadFailed, styleError},
	simulator.ErrInvalidAction:     {http.StatusBadRequest, app.MsgInvalidAction, styleError},
	simulator.ErrEmptyMessage:      {http.StatusBadRequest, app.MsgNoMessageProvided, styleStatus},
	simulator.ErrInvalidEventIndex: {http.StatusBadRequest, app.MsgInvalidEventIndex, styleStatus},
	ErrInvalidIndexParam:           {http.StatusBadRequest, app.MsgInvalidEventIndex, styleStatus},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError, styleError}
}

// writeError answers with the body shape the device uses for err.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)

	var body any = models.ErrorResponse{Error: resp.message}
	if resp.style == styleStatus {
		body = models.StatusResponse{Status: models.StatusError, Message: resp.message}
	}

	_, _ = utils.WriteJSON(w, body, resp.status)
}
