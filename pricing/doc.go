// Package pricing computes trip fares via interchangeable pricing
// strategies.
//
// A Strategy turns one (duration, distance) pair into a cost in euros;
// Fares applies a strategy across whole columns at once. Three concrete
// strategies exist:
//
//   - Casual:   €1.00 unlock + €0.15/min + €0.10/km
//   - Member:   €0.08/min + €0.05/km, no unlock fee
//   - PeakHour: 1.5× the casual fare
//
// ForUser selects the strategy for a user type, so callers never branch
// on concrete types themselves.
//
// All strategies are stateless values; every function is pure.
package pricing
