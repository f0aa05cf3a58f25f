package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"quiroclinic-backend/internal/auth"
	"quiroclinic-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MeasureHandler handles HTTP requests for measures
type MeasureHandler struct {
	service service.MeasureServiceInterface
}

// NewMeasureHandler creates a new measure handler
func NewMeasureHandler(service service.MeasureServiceInterface) *MeasureHandler {
	return &MeasureHandler{service: service}
}

// ListMeasures handles GET /api/v1/measures
// @Summary List measures
// @Description List the measures of the caller's organization with patient names
// @Tags measures
// @Produce json
// @Success 200 {array} service.MeasureResponse "Successfully retrieved measures"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /measures [get]
func (h *MeasureHandler) ListMeasures(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	measures, err := h.service.List(caller)
	if err != nil {
		respondError(c, err, "Failed to list measures")
		return
	}

	c.JSON(http.StatusOK, measures)
}

// CreateMeasure handles POST /api/v1/measures
// @Summary Create a measure
// @Description Create a measure, optionally with an image attachment (multipart form)
// @Tags measures
// @Accept json
// @Accept mpfd
// @Produce json
// @Param measure body service.CreateMeasureRequest true "Measure data"
// @Success 201 {object} service.MeasureResponse "Successfully created measure"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /measures [post]
func (h *MeasureHandler) CreateMeasure(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	req, image, ok := bindMeasureRequest(c)
	if !ok {
		return
	}
	if image != nil {
		defer image.close()
	}

	measure, err := h.service.Create(caller, req, image.upload())
	if err != nil {
		respondError(c, err, "Failed to create measure")
		return
	}

	c.JSON(http.StatusCreated, measure)
}

// GetMeasure handles GET /api/v1/measures/:id
// @Summary Get measure by ID
// @Description Get a measure of the caller's organization
// @Tags measures
// @Produce json
// @Param id path string true "Measure ID (UUID)"
// @Success 200 {object} service.MeasureResponse "Successfully retrieved measure"
// @Failure 400 {object} map[string]interface{} "Invalid measure ID"
// @Failure 403 {object} map[string]interface{} "Measure belongs to another organization"
// @Failure 404 {object} map[string]interface{} "Measure not found"
// @Security BearerAuth
// @Router /measures/{id} [get]
func (h *MeasureHandler) GetMeasure(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid measure ID: invalid UUID format"})
		return
	}

	measure, err := h.service.GetByID(caller, id)
	if err != nil {
		respondError(c, err, "Failed to get measure")
		return
	}

	c.JSON(http.StatusOK, measure)
}

// UpdateMeasure handles PUT /api/v1/measures/:id
// @Summary Update measure
// @Description Update a measure; a new image replaces the stored one
// @Tags measures
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "Measure ID (UUID)"
// @Param measure body service.UpdateMeasureRequest true "Updated measure data"
// @Success 200 {object} service.MeasureResponse "Successfully updated measure"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Measure belongs to another organization"
// @Failure 404 {object} map[string]interface{} "Measure not found"
// @Security BearerAuth
// @Router /measures/{id} [put]
func (h *MeasureHandler) UpdateMeasure(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid measure ID: invalid UUID format"})
		return
	}

	req, image, ok := bindMeasureRequest(c)
	if !ok {
		return
	}
	if image != nil {
		defer image.close()
	}

	measure, err := h.service.Update(caller, id, (*service.UpdateMeasureRequest)(req), image.upload())
	if err != nil {
		respondError(c, err, "Failed to update measure")
		return
	}

	c.JSON(http.StatusOK, measure)
}

// DeleteMeasure handles DELETE /api/v1/measures/:id
// @Summary Delete measure
// @Description Delete a measure and its stored image
// @Tags measures
// @Produce json
// @Param id path string true "Measure ID (UUID)"
// @Success 204 "Successfully deleted measure"
// @Failure 400 {object} map[string]interface{} "Invalid measure ID"
// @Failure 403 {object} map[string]interface{} "Measure belongs to another organization"
// @Failure 404 {object} map[string]interface{} "Measure not found"
// @Security BearerAuth
// @Router /measures/{id} [delete]
func (h *MeasureHandler) DeleteMeasure(c *gin.Context) {
	caller, ok := auth.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid measure ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(caller, id); err != nil {
		respondError(c, err, "Failed to delete measure")
		return
	}

	c.Status(http.StatusNoContent)
}

// openedImage pairs an upload with the multipart file it reads from so the
// handler can close it after the service is done.
type openedImage struct {
	file   multipart.File
	header *multipart.FileHeader
}

func (o *openedImage) upload() *service.ImageUpload {
	if o == nil {
		return nil
	}
	return &service.ImageUpload{
		Filename: o.header.Filename,
		Size:     o.header.Size,
		Content:  o.file,
	}
}

func (o *openedImage) close() {
	o.file.Close()
}

// bindMeasureRequest reads a measure payload from either a JSON body or a
// multipart form with an optional "image" file part. Form fields are parsed
// explicitly so a non-numeric value fails here, before anything is stored.
// On failure it writes the 400 response and returns ok=false.
func bindMeasureRequest(c *gin.Context) (*service.CreateMeasureRequest, *openedImage, bool) {
	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req service.CreateMeasureRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return nil, nil, false
		}
		return &req, nil, true
	}

	req := &service.CreateMeasureRequest{
		Name:        c.PostForm("name"),
		BodyZone:    c.PostForm("body_zone"),
		Unit:        c.PostForm("unit"),
		Description: c.PostForm("description"),
	}

	// A missing value stays nil and is rejected by the service's required
	// check before anything is stored.
	if raw := c.PostForm("value"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": "value must be numeric"})
			return nil, nil, false
		}
		req.Value = &value
	}
	if raw := c.PostForm("patient_id"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": "patient_id must be a UUID"})
			return nil, nil, false
		}
		req.PatientID = patientID
	}

	header, err := c.FormFile("image")
	if err == http.ErrMissingFile {
		return req, nil, true
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return nil, nil, false
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return nil, nil, false
	}
	return req, &openedImage{file: file, header: header}, true
}
