package controllers

import (
	"github.com/gin-gonic/gin"

	"offcampus/internal/services"
)

// actorFrom reads the identity placed in the context by the JWT middleware.
// Routes behind the middleware always have both values set.
func actorFrom(c *gin.Context) services.Actor {
	actor := services.Actor{}
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok {
			actor.UserID = s
		}
	}
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			actor.Role = s
		}
	}
	return actor
}
