// Package shop implements the Shop aggregate.
//
// A shop is the processing side of the marketplace: it owns a pool of
// washing machines and receives laundry handovers from riders. Orders in
// at_shop, washing or drying status each occupy one machine; the capacity
// gate in the services package uses the pool size tracked here.
//
// Shops go through admin review: a new registration is pending and only
// approved shops may be selected for handovers.
package shop
