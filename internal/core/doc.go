// Package core provides fundamental types and utilities shared by the game
// and the platform layers. It has no external dependencies (especially no
// Bubble Tea) so game logic stays pure and testable.
package core
