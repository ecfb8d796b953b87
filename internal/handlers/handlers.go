package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// subjectID extracts the authenticated principal's ID set by the auth
// middleware.
func subjectID(c *gin.Context) (primitive.ObjectID, error) {
	raw, ok := c.Get("subjectID")
	if !ok {
		return primitive.NilObjectID, errors.New("no authenticated subject")
	}
	hex, ok := raw.(string)
	if !ok {
		return primitive.NilObjectID, errors.New("invalid subject claim")
	}
	return primitive.ObjectIDFromHex(hex)
}
