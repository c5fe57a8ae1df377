package routes

import (
	"net/http"
	"time"

	"aircnc/handlers"
	"aircnc/middleware"
	"aircnc/services/auth"
	"aircnc/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the route handlers and the token service the guarded
// routes depend on.
type HandlerBundle struct {
	Tokens   auth.TokenService
	Auth     *handlers.AuthHandler
	Payments *handlers.PaymentHandler
	Users    *handlers.UserHandler
	Rooms    *handlers.RoomHandler
	Bookings *handlers.BookingHandler
}

// RegisterAuthRoutes registers the token endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/jwt", hb.Auth.IssueToken)
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/create-payment-intent", middleware.RequireAuth(hb.Tokens), hb.Payments.CreatePaymentIntent)
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.PUT("/users/:email", hb.Users.SaveUser)
	r.GET("/users/:email", hb.Users.GetUser)
}

// RegisterRoomRoutes registers room listing endpoints. Rooms-by-host is the
// one host-scoped read and carries both guards.
func RegisterRoomRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/rooms", hb.Rooms.GetRooms)
	r.POST("/rooms", hb.Rooms.CreateRoom)
	r.GET("/room/:id", hb.Rooms.GetRoom)
	r.DELETE("/rooms/:id", hb.Rooms.DeleteRoom)
	r.PUT("/rooms/:id", middleware.RequireAuth(hb.Tokens), hb.Rooms.UpdateRoom)
	r.GET("/rooms/:email", middleware.RequireAuth(hb.Tokens), middleware.RequireOwner("email"), hb.Rooms.GetRoomsByHost)
	r.PATCH("/rooms/status/:id", hb.Bookings.UpdateRoomStatus)
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/bookings", hb.Bookings.GetGuestBookings)
	r.GET("/bookings/host", hb.Bookings.GetHostBookings)
	r.POST("/bookings", hb.Bookings.CreateBooking)
	r.DELETE("/bookings/:id", hb.Bookings.DeleteBooking)
}

// RegisterHealthRoutes registers liveness and dependency-health endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "AirCNC Server is running.."})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterAuthRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
