// Package eventing implements the real-time fan-out of order state
// changes. After every successful mutation the dispatcher publishes an
// order snapshot to each interested party: the owning customer, the
// assigned rider, the serving shop and the rider broadcast room.
//
// Fan-out is best effort. A failed emit is logged and never fails the
// mutation that triggered it; the store write has already committed.
package eventing

import (
	"laundromart/internal/core/domain/model/order"
	"laundromart/internal/core/ports"
	"laundromart/internal/pkg/errs"

	"go.uber.org/zap"
)

// EventOrderUpdate is the event name carried by every order fan-out.
const EventOrderUpdate = "order:update"

// Dispatcher publishes order snapshots over the realtime transport.
type Dispatcher struct {
	transport ports.RealtimeTransport
	logger    *zap.Logger
}

// NewDispatcher creates a Dispatcher bound to a transport.
func NewDispatcher(transport ports.RealtimeTransport, logger *zap.Logger) (*Dispatcher, error) {
	if transport == nil {
		return nil, errs.NewValueIsRequiredError("transport")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	return &Dispatcher{transport: transport, logger: logger}, nil
}

// OrderUpdated fans the order's current state out to every interested
// room:
//
//   - the owning customer, always
//   - the assigned rider, when one is set
//   - the serving shop, when one is set
//   - the rider broadcast room, always, so available-work lists refresh
func (d *Dispatcher) OrderUpdated(o *order.Order) {
	if err := o.Validate(); err != nil {
		d.logger.Warn("skipping fan-out of invalid order", zap.Error(err))
		return
	}

	payload := NewOrderEvent(o)

	rooms := []string{ports.UserRoom(o.CustomerID().String())}
	if riderID := o.RiderID(); riderID != nil {
		rooms = append(rooms, ports.UserRoom(riderID.String()))
	}
	if shopID := o.ShopID(); shopID != nil {
		rooms = append(rooms, ports.ShopRoom(shopID.String()))
	}
	rooms = append(rooms, ports.RoomRiders)

	for _, room := range rooms {
		if err := d.transport.Emit(room, EventOrderUpdate, payload); err != nil {
			d.logger.Warn("order fan-out failed",
				zap.String("order_id", o.ID().String()),
				zap.String("room", room),
				zap.Error(err))
		}
	}
}
