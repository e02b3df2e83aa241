package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hwangtab/artcontract/pkg/logger"
)

// RequestID assigns each request a trace id. An inbound X-Request-ID is
// honored so the wizard frontend can correlate the evaluation it
// triggered with the server logs; otherwise a fresh uuid is issued. The
// id rides on the response header and in the request context, where the
// logger picks it up.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID gets the request ID from gin context
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		return requestID.(string)
	}
	return ""
}

// WithSessionID stamps the wizard session id into the request context
// once a handler has resolved it, so every later log line on this
// request (access log, panic recovery) carries the session without each
// call site attaching it by hand.
func WithSessionID(c *gin.Context, sessionID string) {
	ctx := context.WithValue(c.Request.Context(), logger.SessionIDKey, sessionID)
	c.Request = c.Request.WithContext(ctx)
}
