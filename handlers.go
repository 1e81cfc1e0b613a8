package main

import (
	"errors"
	"log"
	"net/http"

	"chequetrack/models"
	"chequetrack/pkg/alert"
	"chequetrack/pkg/assistant"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func setupRoutes(r *gin.Engine, bot *assistant.Client, alerts *alert.Dispatcher) {
	r.GET("/api/cheques", listChequesHandler)
	r.POST("/api/cheques", createChequeHandler(alerts))
	r.POST("/api/chat", chatHandler(bot))
}

// listChequesHandler returns all cheques matching the optional query
// parameters, ordered by cheque id. Every supplied parameter narrows the
// result (AND); date ranges are inclusive on both ends.
func listChequesHandler(c *gin.Context) {
	q := db.Model(&models.Cheque{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if v := c.Query("issueStart"); v != "" {
		q = q.Where("issued_date >= ?", v)
	}
	if v := c.Query("issueEnd"); v != "" {
		q = q.Where("issued_date <= ?", v)
	}
	if v := c.Query("dueStart"); v != "" {
		q = q.Where("due_date >= ?", v)
	}
	if v := c.Query("dueEnd"); v != "" {
		q = q.Where("due_date <= ?", v)
	}

	cheques := []models.Cheque{}
	if err := q.Order("cheque_id asc").Find(&cheques).Error; err != nil {
		log.Printf("failed to fetch cheques: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cheques"})
		return
	}
	c.JSON(http.StatusOK, cheques)
}

func createChequeHandler(alerts *alert.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID       string          `json:"userId" binding:"required"`
			ChequeNumber int             `json:"chequeNumber" binding:"required,gt=0"`
			ToPayee      string          `json:"toPayee" binding:"required"`
			IssuedDate   string          `json:"issuedDate" binding:"required,datetime=2006-01-02"`
			DueDate      string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
			Amount       decimal.Decimal `json:"amount"`
			Status       string          `json:"status" binding:"required,oneof=past today upcoming cancelled"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data", "details": err.Error()})
			return
		}
		if !req.Amount.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data", "details": "amount must be greater than zero"})
			return
		}

		cheque := models.Cheque{
			UserID:       req.UserID,
			ChequeNumber: req.ChequeNumber,
			ToPayee:      req.ToPayee,
			IssuedDate:   req.IssuedDate,
			DueDate:      req.DueDate,
			Amount:       req.Amount.Round(2),
			Status:       req.Status,
		}
		if err := db.Create(&cheque).Error; err != nil {
			log.Printf("failed to create cheque: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cheque"})
			return
		}

		// Fire-and-forget: the alert outcome is observable only via logs and
		// must never delay or fail the create response.
		go alerts.Notify(cheque)

		c.JSON(http.StatusCreated, cheque)
	}
}

func chatHandler(bot *assistant.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Query string `json:"query" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
			return
		}

		cheques := []models.Cheque{}
		if err := db.Model(&models.Cheque{}).Order("cheque_id asc").Find(&cheques).Error; err != nil {
			log.Printf("failed to load cheques for chat: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process your query. Please try again."})
			return
		}

		response, err := bot.QueryCheques(req.Query, cheques)
		if err != nil {
			if errors.Is(err, assistant.ErrNotConfigured) {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"error": "Chatbot service is currently unavailable. Please contact the administrator to configure GEMINI_API_KEY.",
				})
				return
			}
			log.Printf("chat query failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process your query. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": response})
	}
}
