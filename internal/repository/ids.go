package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts a client-supplied identifier into a document id,
// reporting ErrInvalidID for anything that is not a well-formed ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// IsValidID reports whether id would be accepted by ParseID.
func IsValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

func ownerObjectID(id string) (primitive.ObjectID, error) {
	return ParseID(id)
}
