// Package dish provides the Dish aggregate: an item on the menu that orders refer to.
//
// Key business rules:
//   - A dish has an immutable identifier assigned at creation
//   - Name, description and image URL are non-empty
//   - Price is a whole number strictly greater than zero
//   - Dishes are never deleted; every field but the identifier can be updated
package dish
