package aiControllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lcvaldiviag/STREAMIX-sub000/gemini"
)

// Assistant is the upstream AI capability the gateway dispatches to.
type Assistant interface {
	Chat(ctx context.Context, history []gemini.Turn, newMessage string) (string, error)
	Suggest(ctx context.Context, interest string) (string, error)
	GroundedSearch(ctx context.Context, query string) (string, []gemini.Source, error)
	EditImage(ctx context.Context, base64ImageData, mimeType, prompt string) (string, error)
}

// GatewayRequest is the wire envelope: an action name plus an action-specific
// payload.
type GatewayRequest struct {
	Action  string          `json:"action" binding:"required"`
	Payload json.RawMessage `json:"payload"`
}

type chatPayload struct {
	History    []gemini.Turn `json:"history"`
	NewMessage string        `json:"newMessage"`
}

type suggestPayload struct {
	Interest string `json:"interest"`
}

type searchPayload struct {
	Query string `json:"query"`
}

type editImagePayload struct {
	Base64ImageData string `json:"base64ImageData"`
	MimeType        string `json:"mimeType"`
	Prompt          string `json:"prompt"`
}

// HandleAction is the single AI endpoint. It dispatches on the action name
// and normalizes every upstream outcome into {text, sources?} or {error}.
// Upstream errors are logged with the action and never forwarded verbatim.
func HandleAction(assistant Assistant, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if assistant == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service is not configured"})
			return
		}

		var req GatewayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		switch req.Action {
		case "chat":
			var p chatPayload
			if !bindPayload(c, req.Payload, &p) {
				return
			}
			text, err := assistant.Chat(c.Request.Context(), p.History, p.NewMessage)
			if err != nil {
				failUpstream(c, log, req.Action, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"text": text})

		case "suggest":
			var p suggestPayload
			if !bindPayload(c, req.Payload, &p) {
				return
			}
			text, err := assistant.Suggest(c.Request.Context(), p.Interest)
			if err != nil {
				failUpstream(c, log, req.Action, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"text": text})

		case "groundedSearch":
			var p searchPayload
			if !bindPayload(c, req.Payload, &p) {
				return
			}
			text, sources, err := assistant.GroundedSearch(c.Request.Context(), p.Query)
			if err != nil {
				failUpstream(c, log, req.Action, err)
				return
			}
			if sources == nil {
				sources = []gemini.Source{}
			}
			c.JSON(http.StatusOK, gin.H{"text": text, "sources": sources})

		case "editImage":
			var p editImagePayload
			if !bindPayload(c, req.Payload, &p) {
				return
			}
			text, err := assistant.EditImage(c.Request.Context(), p.Base64ImageData, p.MimeType, p.Prompt)
			if err != nil {
				failUpstream(c, log, req.Action, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"text": text})

		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action: " + req.Action})
		}
	}
}

func bindPayload(c *gin.Context, raw json.RawMessage, dst any) bool {
	if len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payload"})
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return false
	}
	return true
}

// failUpstream converts any upstream error into the stable external contract:
// an opaque message with HTTP 500. The real error only goes to the log.
func failUpstream(c *gin.Context, log *logrus.Logger, action string, err error) {
	log.WithField("action", action).WithError(err).Error("AI request failed")
	if errors.Is(err, gemini.ErrNoImage) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "The model did not return an edited image"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "The assistant is unavailable right now"})
}
