package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// webhookPayload mirrors the slice of the Meta webhook envelope the engine
// cares about: inbound text messages. Everything else (statuses, media,
// reactions) is deserialized to nothing and ignored.
type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []inboundMessage `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type inboundMessage struct {
	From string `json:"from"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
}

// handleVerifyWebhook answers Meta's subscription handshake: echo the
// challenge when the token matches, refuse otherwise.
func (s *Server) handleVerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == s.verifyToken {
		c.String(http.StatusOK, challenge)
		return
	}
	c.Status(http.StatusForbidden)
}

// handleWebhook processes inbound messages. It always answers 200: Meta
// retries non-2xx responses, and a redelivered message would just hit the
// same day-keyed upsert again.
func (s *Server) handleWebhook(c *gin.Context) {
	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		s.logger.WarnContext(c.Request.Context(), "webhook_unparseable", "error", err)
		c.Status(http.StatusOK)
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				s.processMessage(c, msg)
			}
		}
	}
	c.Status(http.StatusOK)
}

func (s *Server) processMessage(c *gin.Context, msg inboundMessage) {
	ctx := c.Request.Context()
	if msg.From == "" || msg.Text.Body == "" {
		return
	}

	reply, ok := s.inbound.ProcessInbound(ctx, msg.From, msg.Text.Body)
	if !ok {
		return
	}
	if err := s.sender.Send(ctx, msg.From, reply); err != nil {
		// The log write already committed; losing the reply is recoverable,
		// losing the ack is not.
		s.logger.ErrorContext(ctx, "reply_send_failed", "to", msg.From, "error", err)
	}
}
