// Package order provides the Order aggregate, its line items and the order status
// state machine.
//
// The package includes:
//   - Order: the aggregate root holding delivery details, status and line items
//   - LineItem: a dish snapshot with the ordered quantity
//   - Status: the state machine guarding updates and deletions
//   - Event: the change notification emitted after an order is created, updated or deleted
//
// Key business rules:
//   - Delivery address and mobile number are non-empty
//   - An order has at least one line item, each with a quantity greater than 0
//   - New orders start as pending unless another valid status is supplied
//   - A delivered order can no longer change
//   - Only pending orders can be deleted
package order
