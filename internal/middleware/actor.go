package middleware

import "github.com/gin-gonic/gin"

// actorIDKey is the key used to store the acting user's ID in the Gin context.
const actorIDKey = contextKey("actorID")

// ActorHeader names the header carrying the acting user's identifier.
// Authentication is handled upstream of this service; the header is what the
// gateway forwards after it has authenticated the caller.
const ActorHeader = "X-Actor-ID"

// defaultActorID is recorded on audit fields when no actor header is present.
const defaultActorID = "system"

// ActorMiddleware captures the acting user's ID from the request headers so
// services can stamp audit fields.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(ActorHeader)
		if actorID == "" {
			actorID = defaultActorID
		}
		c.Set(string(actorIDKey), actorID)
		c.Next()
	}
}

// GetActorIDFromContext retrieves the acting user ID from the Gin context.
func GetActorIDFromContext(c *gin.Context) string {
	actorIDVal, exists := c.Get(string(actorIDKey))
	if !exists {
		return defaultActorID
	}
	actorID, ok := actorIDVal.(string)
	if !ok {
		return defaultActorID
	}
	return actorID
}
