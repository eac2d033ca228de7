package domain

// SaleMarker is the substring that turns an inbound message into a sale command.
const SaleMarker = "#sale"

type Route string

const (
	RouteSale  Route = "sale"
	RouteQuery Route = "query"
)

type InboundMessage struct {
	SenderPhone string `json:"sender_phone"`
	Body        string `json:"body"`
	MessageSID  string `json:"message_sid,omitempty"`
}
