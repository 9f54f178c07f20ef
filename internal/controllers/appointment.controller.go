package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"petkey/internal/models"
	"petkey/internal/repository"
	"petkey/internal/utils"
)

const (
	slotGridStart = 9 * 60     // 09:00, in minutes from midnight
	slotGridEnd   = 17*60 + 30 // 17:30, inclusive
	slotGridStep  = 30
)

// slotGrid returns every bookable HH:MM value for one day.
func slotGrid() []string {
	var slots []string
	for m := slotGridStart; m <= slotGridEnd; m += slotGridStep {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

type AppointmentController struct {
	repo repository.AppointmentRepository
	mail utils.MailConfig
}

func NewAppointmentController(repo repository.AppointmentRepository, mail utils.MailConfig) *AppointmentController {
	return &AppointmentController{repo: repo, mail: mail}
}

func (ac *AppointmentController) presentAppointment(appointment *models.Appointment) {
	if appointment.Veterinarian != nil {
		appointment.VeterinarianName = appointment.Veterinarian.Name
	}
}

// CreateAppointment godoc
// @Summary Create a new appointment
// @Description Creates the record and sends a confirmation email to the owner; mail failures never fail the request
// @Tags appointment
// @Accept json
// @Produce json
// @Param appointment body models.Appointment true "Appointment data"
// @Success 201 {object} map[string]interface{} "Appointment created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /appointments [post]
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	appointment.ID = 0
	if appointment.Status == "" {
		appointment.Status = models.AppointmentStatusPending
	}

	if err := ac.repo.Create(&appointment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create appointment",
			"error":   err.Error(),
		})
		return
	}

	utils.SendAppointmentConfirmation(ac.mail, &appointment)

	if full, err := ac.repo.FindByID(appointment.ID); err == nil {
		appointment = *full
	}
	ac.presentAppointment(&appointment)
	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Appointment created successfully",
		"data":    appointment,
	})
}

// GetAllAppointments godoc
// @Summary Get all appointments
// @Description Filters: veterinarian, status, date_from, date_to, upcoming
// @Tags appointment
// @Produce json
// @Param veterinarian query int false "Veterinarian ID"
// @Param status query string false "Status"
// @Param date_from query string false "Inclusive lower date bound (yyyy-mm-dd)"
// @Param date_to query string false "Inclusive upper date bound (yyyy-mm-dd)"
// @Param upcoming query bool false "Only dates from today on"
// @Success 200 {object} map[string]interface{} "Appointments retrieved successfully"
// @Router /appointments [get]
func (ac *AppointmentController) GetAllAppointments(c *gin.Context) {
	filter := repository.AppointmentFilter{
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}
	if vet := c.Query("veterinarian"); vet != "" {
		if id, err := strconv.ParseUint(vet, 10, 32); err == nil {
			filter.VeterinarianID = uint(id)
		}
	}
	if c.Query("upcoming") == "true" {
		filter.UpcomingFrom = time.Now().Format("2006-01-02")
	}

	appointments, err := ac.repo.FindAll(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve appointments",
			"error":   err.Error(),
		})
		return
	}

	for i := range appointments {
		ac.presentAppointment(&appointments[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointments retrieved successfully",
		"data":    appointments,
	})
}

// GetAppointmentByID godoc
// @Summary Get an appointment by ID
// @Tags appointment
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} map[string]interface{} "Appointment retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Router /appointments/{id} [get]
func (ac *AppointmentController) GetAppointmentByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid appointment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	appointment, err := ac.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Appointment not found",
			"error":   "No appointment exists with the provided ID",
		})
		return
	}

	ac.presentAppointment(appointment)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointment retrieved successfully",
		"data":    appointment,
	})
}

// UpdateAppointment godoc
// @Summary Update an appointment
// @Tags appointment
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param appointment body models.Appointment true "Appointment data"
// @Success 200 {object} map[string]interface{} "Appointment updated successfully"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Router /appointments/{id} [put]
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid appointment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := ac.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Appointment not found",
			"error":   "No appointment exists with the provided ID",
		})
		return
	}

	// Bind over a copy of the stored record so partial bodies
	// leave unsupplied fields untouched.
	input := *existing
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	input.ID = existing.ID
	input.CreatedAt = existing.CreatedAt
	input.Veterinarian = nil
	if input.Status != "" && !models.IsValidAppointmentStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid status value",
			"error":   "Status must be one of: pending, confirmed, completed, cancelled",
		})
		return
	}

	if err := ac.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update appointment",
			"error":   err.Error(),
		})
		return
	}

	ac.presentAppointment(&input)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointment updated successfully",
		"data":    input,
	})
}

// UpdateAppointmentStatus godoc
// @Summary Update an appointment's status
// @Description Rejects values outside pending|confirmed|completed|cancelled
// @Tags appointment
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} map[string]interface{} "Appointment status updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid status value"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Router /appointments/{id}/update_status [patch]
func (ac *AppointmentController) UpdateAppointmentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid appointment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	if !models.IsValidAppointmentStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid status value",
			"error":   "Status must be one of: pending, confirmed, completed, cancelled",
		})
		return
	}

	appointment, err := ac.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Appointment not found",
			"error":   "No appointment exists with the provided ID",
		})
		return
	}

	appointment.Status = input.Status
	if err := ac.repo.Update(appointment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update appointment",
			"error":   err.Error(),
		})
		return
	}

	ac.presentAppointment(appointment)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointment status updated successfully",
		"data":    appointment,
	})
}

// DeleteAppointment godoc
// @Summary Delete an appointment
// @Tags appointment
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} map[string]interface{} "Appointment deleted successfully"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Router /appointments/{id} [delete]
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid appointment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := ac.repo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Appointment not found",
			"error":   "No appointment exists with the provided ID",
		})
		return
	}

	if err := ac.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete appointment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointment deleted successfully",
		"data":    nil,
	})
}

// GetAvailableSlots godoc
// @Summary Get available appointment slots
// @Description 30-minute grid from 09:00 to 17:30 minus slots taken by pending or confirmed appointments
// @Tags appointment
// @Produce json
// @Param date query string true "Date (yyyy-mm-dd)"
// @Param veterinarian query int true "Veterinarian ID"
// @Success 200 {object} map[string]interface{} "Available slots retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Missing date or veterinarian"
// @Router /appointments/available_slots [get]
func (ac *AppointmentController) GetAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	vet := c.Query("veterinarian")
	if date == "" || vet == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Both date and veterinarian are required",
			"error":   "Provide date=yyyy-mm-dd and veterinarian=<id>",
		})
		return
	}
	vetID, err := strconv.ParseUint(vet, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid veterinarian ID",
			"error":   "Veterinarian must be a valid positive integer",
		})
		return
	}

	booked, err := ac.repo.FindBookedTimes(date, uint(vetID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve booked slots",
			"error":   err.Error(),
		})
		return
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}
	available := make([]string, 0)
	for _, slot := range slotGrid() {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Available slots retrieved successfully",
		"data": gin.H{
			"date":            date,
			"veterinarian":    uint(vetID),
			"available_slots": available,
		},
	})
}
