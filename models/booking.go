package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Guest identifies who made a booking.
type Guest struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// Booking is a confirmed reservation. It links a guest, a host and a room to
// the payment transaction id returned by the gateway. The record is created
// once after the client confirms its charge; no field validation is enforced
// beyond what the orchestration reads, so absent fields stay absent.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RoomID        string             `bson:"roomId,omitempty" json:"roomId,omitempty"`
	Guest         Guest              `bson:"guest,omitempty" json:"guest,omitempty"`
	Host          string             `bson:"host,omitempty" json:"host,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Title         string             `bson:"title,omitempty" json:"title,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	From          string             `bson:"from,omitempty" json:"from,omitempty"`
	To            string             `bson:"to,omitempty" json:"to,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}
