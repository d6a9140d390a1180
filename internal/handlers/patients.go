package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salman-gigabit/PatientQueueBackend/internal/service"
)

// PatientHandler handles patient queue HTTP requests.
type PatientHandler struct {
	queueService service.QueueService
}

// NewPatientHandler creates a new PatientHandler instance.
func NewPatientHandler(queueService service.QueueService) *PatientHandler {
	return &PatientHandler{queueService: queueService}
}

// EnqueueRequest represents the patient registration payload.
type EnqueueRequest struct {
	Name     string `json:"name" binding:"required"`
	Problem  string `json:"problem" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,oneof=Normal Emergency"`
}

// Enqueue godoc
// @Summary Register a patient
// @Description Add a patient to the waiting queue
// @Tags patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EnqueueRequest true "Patient data"
// @Success 201 {object} models.Patient
// @Failure 400 {object} map[string]string
// @Router /patients [post]
func (h *PatientHandler) Enqueue(c *gin.Context) {
	var req EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	patient, err := h.queueService.Enqueue(c.Request.Context(), req.Name, req.Problem, req.Priority)
	if err != nil {
		RespondStorageError(c, err, "failed to register patient")
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// ListWaiting godoc
// @Summary List the waiting queue
// @Description Waiting patients in service order (Emergency first, then arrival)
// @Tags patients
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Patient
// @Router /patients [get]
func (h *PatientHandler) ListWaiting(c *gin.Context) {
	patients, err := h.queueService.ListWaiting(c.Request.Context())
	if err != nil {
		RespondStorageError(c, err, "failed to list queue")
		return
	}

	c.JSON(http.StatusOK, patients)
}

// MarkVisited godoc
// @Summary Mark a patient visited
// @Description Transition a waiting patient to Visited
// @Tags patients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} models.Patient
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /patients/{id}/visit [patch]
func (h *PatientHandler) MarkVisited(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid patient id")
		return
	}

	patient, err := h.queueService.MarkVisited(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPatientNotFound):
			RespondError(c, http.StatusNotFound, "patient not found")
		case errors.Is(err, service.ErrAlreadyVisited):
			RespondError(c, http.StatusConflict, "patient already visited")
		default:
			RespondStorageError(c, err, "failed to mark patient visited")
		}
		return
	}

	c.JSON(http.StatusOK, patient)
}

// Stats godoc
// @Summary Queue statistics
// @Description Aggregate waiting/emergency/visited counts
// @Tags patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} repository.QueueCounts
// @Router /patients/stats [get]
func (h *PatientHandler) Stats(c *gin.Context) {
	counts, err := h.queueService.Stats(c.Request.Context())
	if err != nil {
		RespondStorageError(c, err, "failed to compute stats")
		return
	}

	c.JSON(http.StatusOK, counts)
}
