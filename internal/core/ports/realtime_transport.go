package ports

// Room names used for order fan-out. A client joins the rooms its identity
// grants: every authenticated user joins their user room, riders
// additionally join the rider broadcast, shop staff join their shop room.
const (
	// RoomRiders is the broadcast room every connected rider joins.
	RoomRiders = "role:riders"
)

// UserRoom returns the per-user room name.
func UserRoom(userID string) string {
	return "user:" + userID
}

// ShopRoom returns the per-shop room name.
func ShopRoom(shopID string) string {
	return "shop:" + shopID
}

// RealtimeTransport delivers named events to rooms of connected clients.
// Delivery is best effort: the transport drops events for empty rooms and
// slow clients rather than blocking the caller.
type RealtimeTransport interface {
	// Emit sends the event with its payload to every client in the room.
	Emit(room string, event string, payload any) error
}
