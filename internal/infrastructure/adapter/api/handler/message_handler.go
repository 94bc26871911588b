package handler

import (
	"net/http"
	"time"

	domainerr "github.com/amirhossein-jamali/point-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/point-exchange/internal/domain/port/core"
	messageUseCase "github.com/amirhossein-jamali/point-exchange/internal/domain/usecase/message"
	"github.com/amirhossein-jamali/point-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// MessageHandler handles announcement settlement HTTP requests
type MessageHandler struct {
	processor *messageUseCase.Processor
	logger    coreport.Logger
}

// NewMessageHandler creates a new message handler instance
func NewMessageHandler(processor *messageUseCase.Processor, logger coreport.Logger) *MessageHandler {
	return &MessageHandler{
		processor: processor,
		logger:    logger,
	}
}

// ProcessMessage handles the POST /messages endpoint
func (h *MessageHandler) ProcessMessage(c *gin.Context) {
	var req dto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid message request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	timestamp, err := time.Parse(time.RFC3339Nano, req.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid timestamp, expected RFC 3339 format",
		})
		return
	}

	result, err := h.processor.ProcessMessage(c.Request.Context(), req.Text, timestamp)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case domainerr.IsParseError(err):
			statusCode = http.StatusUnprocessableEntity
		case domainerr.IsConfigurationError(err):
			statusCode = http.StatusInternalServerError
		}

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	resp := dto.MessageResponse{
		RunID:       result.RunID,
		MessageType: string(result.MessageType),
		Game:        result.Game,
		Players:     result.Players,
		Duplicate:   result.Duplicate,
	}
	if !result.Duplicate {
		resp.Amount = result.Amount.String()
	}

	c.JSON(http.StatusOK, resp)
}
