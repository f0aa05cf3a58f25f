package handlers

import (
	"net/http"

	"quiroclinic-backend/internal/auth"
	"quiroclinic-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatientHandler handles HTTP requests for patients
type PatientHandler struct {
	service service.PatientServiceInterface
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(service service.PatientServiceInterface) *PatientHandler {
	return &PatientHandler{service: service}
}

// ListPatients handles GET /api/v1/patients
// @Summary List patients
// @Description List the patients of the caller's organization
// @Tags patients
// @Produce json
// @Success 200 {array} service.PatientResponse "Successfully retrieved patients"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /patients [get]
func (h *PatientHandler) ListPatients(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	patients, err := h.service.List(caller)
	if err != nil {
		respondError(c, err, "Failed to list patients")
		return
	}

	c.JSON(http.StatusOK, patients)
}

// CreatePatient handles POST /api/v1/patients
// @Summary Create a patient
// @Description Create a patient owned by the caller
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body service.CreatePatientRequest true "Patient data"
// @Success 201 {object} service.PatientResponse "Successfully created patient"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	patient, err := h.service.Create(caller, &req)
	if err != nil {
		respondError(c, err, "Failed to create patient")
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// GetPatient handles GET /api/v1/patients/:id
// @Summary Get patient by ID
// @Description Get a patient with its measures, newest first
// @Tags patients
// @Produce json
// @Param id path string true "Patient ID (UUID)"
// @Success 200 {object} service.PatientDetailResponse "Successfully retrieved patient"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 403 {object} map[string]interface{} "Patient belongs to another organization"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Security BearerAuth
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID: invalid UUID format"})
		return
	}

	patient, err := h.service.GetByID(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get patient")
		return
	}

	c.JSON(http.StatusOK, patient)
}

// UpdatePatient handles PUT /api/v1/patients/:id
// @Summary Update patient
// @Description Update a patient of the caller's organization
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID (UUID)"
// @Param patient body service.UpdatePatientRequest true "Updated patient data"
// @Success 200 {object} service.PatientResponse "Successfully updated patient"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Patient belongs to another organization"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Security BearerAuth
// @Router /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID: invalid UUID format"})
		return
	}

	var req service.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	patient, err := h.service.Update(caller, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update patient")
		return
	}

	c.JSON(http.StatusOK, patient)
}

// DeletePatient handles DELETE /api/v1/patients/:id
// @Summary Delete patient
// @Description Delete a patient and its measures
// @Tags patients
// @Produce json
// @Param id path string true "Patient ID (UUID)"
// @Success 204 "Successfully deleted patient"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Security BearerAuth
// @Router /patients/{id} [delete]
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(caller, id); err != nil {
		respondError(c, err, "Failed to delete patient")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPatientMeasures handles GET /api/v1/patients/:id/measures
// @Summary List a patient's measures
// @Description List the measures of one patient, newest first
// @Tags patients
// @Produce json
// @Param id path string true "Patient ID (UUID)"
// @Success 200 {array} service.MeasureResponse "Successfully retrieved measures"
// @Failure 400 {object} map[string]interface{} "Invalid patient ID"
// @Failure 403 {object} map[string]interface{} "Patient belongs to another organization"
// @Failure 404 {object} map[string]interface{} "Patient not found"
// @Security BearerAuth
// @Router /patients/{id}/measures [get]
func (h *PatientHandler) GetPatientMeasures(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID: invalid UUID format"})
		return
	}

	measures, err := h.service.Measures(caller, id)
	if err != nil {
		respondError(c, err, "Failed to list patient measures")
		return
	}

	c.JSON(http.StatusOK, measures)
}
