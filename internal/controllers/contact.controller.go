package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"petkey/internal/models"
	"petkey/internal/repository"
	"petkey/internal/utils"
)

type ContactController struct {
	repo repository.ContactMessageRepository
	mail utils.MailConfig
}

func NewContactController(repo repository.ContactMessageRepository, mail utils.MailConfig) *ContactController {
	return &ContactController{repo: repo, mail: mail}
}

func (cc *ContactController) findMessage(c *gin.Context) (*models.ContactMessage, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid message ID",
			"error":   "ID must be a valid positive integer",
		})
		return nil, false
	}

	message, err := cc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Message not found",
			"error":   "No message exists with the provided ID",
		})
		return nil, false
	}
	return message, true
}

// CreateContactMessage godoc
// @Summary Create a new contact message
// @Description Stores the message and sends an auto-reply to the sender; mail failures never fail the request
// @Tags contact
// @Accept json
// @Produce json
// @Param message body models.ContactMessage true "Contact message data"
// @Success 201 {object} map[string]interface{} "Message created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /contact [post]
func (cc *ContactController) CreateContactMessage(c *gin.Context) {
	var message models.ContactMessage
	if err := c.ShouldBindJSON(&message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	message.ID = 0
	message.Status = models.ContactStatusNew
	message.IsDeleted = false
	message.DeletedAt = nil

	if err := cc.repo.Create(&message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create message",
			"error":   err.Error(),
		})
		return
	}

	utils.SendContactConfirmation(cc.mail, &message)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Message created successfully",
		"data":    message,
	})
}

// GetAllContactMessages godoc
// @Summary Get all contact messages
// @Description Soft-deleted messages are hidden unless deleted=true; status filter optional
// @Tags contact
// @Produce json
// @Param deleted query bool false "Show only soft-deleted messages"
// @Param status query string false "Status (new|read|replied)"
// @Success 200 {object} map[string]interface{} "Messages retrieved successfully"
// @Router /contact [get]
func (cc *ContactController) GetAllContactMessages(c *gin.Context) {
	filter := repository.ContactMessageFilter{
		Deleted: c.Query("deleted") == "true",
		Status:  c.Query("status"),
	}

	messages, err := cc.repo.FindAll(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve messages",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Messages retrieved successfully",
		"data":    messages,
	})
}

// GetContactMessageByID godoc
// @Summary Get a contact message by ID
// @Tags contact
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]interface{} "Message retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Router /contact/{id} [get]
func (cc *ContactController) GetContactMessageByID(c *gin.Context) {
	message, ok := cc.findMessage(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message retrieved successfully",
		"data":    message,
	})
}

// UpdateContactMessage godoc
// @Summary Update a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param message body models.ContactMessage true "Contact message data"
// @Success 200 {object} map[string]interface{} "Message updated successfully"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Router /contact/{id} [put]
func (cc *ContactController) UpdateContactMessage(c *gin.Context) {
	existing, ok := cc.findMessage(c)
	if !ok {
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
	// The deletion flag only moves through delete/restore
	input.IsDeleted = existing.IsDeleted
	input.DeletedAt = existing.DeletedAt

	if err := cc.repo.Update(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message updated successfully",
		"data":    input,
	})
}

// DeleteContactMessage godoc
// @Summary Soft-delete a contact message
// @Description The row is kept and excluded from default listings; restore undoes it
// @Tags contact
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]interface{} "Message deleted successfully"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Router /contact/{id} [delete]
func (cc *ContactController) DeleteContactMessage(c *gin.Context) {
	message, ok := cc.findMessage(c)
	if !ok {
		return
	}

	if err := cc.repo.SoftDelete(message.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message deleted successfully",
		"data":    nil,
	})
}

// RestoreContactMessage godoc
// @Summary Restore a soft-deleted contact message
// @Tags contact
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]interface{} "Message restored successfully"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Router /contact/{id}/restore [post]
func (cc *ContactController) RestoreContactMessage(c *gin.Context) {
	message, ok := cc.findMessage(c)
	if !ok {
		return
	}

	if err := cc.repo.Restore(message.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to restore message",
			"error":   err.Error(),
		})
		return
	}

	message.IsDeleted = false
	message.DeletedAt = nil
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message restored successfully",
		"data":    message,
	})
}

// PermanentDeleteContactMessage godoc
// @Summary Permanently delete a contact message
// @Description Removes the row irreversibly; the only hard delete on this entity
// @Tags contact
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]interface{} "Message permanently deleted"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Router /contact/{id}/permanent_delete [delete]
func (cc *ContactController) PermanentDeleteContactMessage(c *gin.Context) {
	message, ok := cc.findMessage(c)
	if !ok {
		return
	}

	if err := cc.repo.PermanentDelete(message.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message permanently deleted",
		"data":    nil,
	})
}

// MarkContactMessageRead godoc
// @Summary Mark a contact message as read
// @Tags contact
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]interface{} "Message marked as read"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Router /contact/{id}/mark_read [post]
func (cc *ContactController) MarkContactMessageRead(c *gin.Context) {
	message, ok := cc.findMessage(c)
	if !ok {
		return
	}

	message.Status = models.ContactStatusRead
	if err := cc.repo.Update(message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Message marked as read",
		"data":    message,
	})
}

// ReplyContactMessage godoc
// @Summary Reply to a contact message
// @Description Stores the reply text and flips the status to replied; empty replies are rejected
// @Tags contact
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]interface{} "Reply saved successfully"
// @Failure 400 {object} map[string]interface{} "Reply text is required"
// @Failure 404 {object} map[string]interface{} "Message not found"
// @Router /contact/{id}/reply [post]
func (cc *ContactController) ReplyContactMessage(c *gin.Context) {
	message, ok := cc.findMessage(c)
	if !ok {
		return
	}

	var input struct {
		Reply string `json:"reply"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Reply) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Reply text is required",
			"error":   "Provide a non-empty reply field",
		})
		return
	}

	message.AdminReply = input.Reply
	message.Status = models.ContactStatusReplied
	if err := cc.repo.Update(message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update message",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reply saved successfully",
		"data":    message,
	})
}
