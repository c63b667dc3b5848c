// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/simulator"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/utils"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

func (h *Handler) getSensors(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	readings, err := h.device.ReadSensors()
	if err != nil {
		log.Err(err).Msg("error reading sensor data")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, readings, http.StatusOK)
}

func (h *Handler) control(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	action, err := h.device.Control(chi.URLParam(r, "action"))
	if err != nil {
		log.Err(err).Str("action", chi.URLParam(r, "action")).Msg("rejected control action")
		writeError(w, err)
		return
	}

	log.Info().Str("action", string(action)).Msg("actuator switched")
	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: models.StatusSuccess, Action: string(action)}, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("undecodable message body")
		req.Message = ""
	}

	if err := h.device.AddMessage(req.Message); err != nil {
		log.Err(err).Msg("message rejected")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: models.StatusSuccess, Message: req.Message}, http.StatusOK)
}

func (h *Handler) getMessages(w http.ResponseWriter, r *http.Request) {
	messages := h.device.Messages()
	_, _ = utils.WriteJSON(w, models.MessagesResponse{Messages: &messages}, http.StatusOK)
}

func (h *Handler) getEvents(w http.ResponseWriter, r *http.Request) {
	events := h.device.Events()
	_, _ = utils.WriteJSON(w, models.EventsResponse{Events: &events}, http.StatusOK)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	index, err := parseIndex(r.URL.Query().Get("index"))
	if err != nil {
		log.Err(err).Msg("bad delete request")
		writeError(w, err)
		return
	}

	if err = h.device.DeleteEvent(index); err != nil {
		log.Err(err).Int("index", index).Msg("event not deleted")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: models.StatusSuccess, Index: &index}, http.StatusOK)
}

// parseIndex accepts only plain decimal digits, so signs and spaces are
// rejected.
func parseIndex(raw string) (int, error) {
	if raw == "" {
		return 0, ErrInvalidIndexParam
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidIndexParam, raw)
		}
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		// too large to be a position in a ten-entry log
		return 0, fmt.Errorf("%w: %w", simulator.ErrInvalidEventIndex, err)
	}
	return index, nil
}
