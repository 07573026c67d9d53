package domain

import "errors"

// Ошибки кошелька и наград
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownReward     = errors.New("unknown reward")
)

// Ошибки маркетплейса
var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrListingNotAvailable = errors.New("listing is no longer available")
	ErrOwnListing          = errors.New("cannot purchase own listing")
	ErrNotSellerListing    = errors.New("listing belongs to another seller")
)

// Ошибки возвратной упаковки
var (
	ErrPackageNotFound     = errors.New("package not found")
	ErrInvalidPackageState = errors.New("invalid package state for this transition")
)

// Ошибки персистентности
var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
