package models

// Write results mirror the document-store acknowledgements the original API
// handed straight back to its callers.

// InsertResult reports a completed insert and the generated document id.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId,omitempty"`
}

// UpdateResult reports a completed update or upsert.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

// DeleteResult reports how many documents a delete matched. Deleting an id
// that matches nothing is not an error; DeletedCount is simply zero.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
