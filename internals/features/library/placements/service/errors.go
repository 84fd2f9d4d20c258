// file: internals/features/library/placements/service/errors.go
package service

import "errors"

// Kelas error placement — hasil validasi deterministik, bukan fault transien,
// jadi tidak pernah di-retry internal; langsung dipulangkan ke caller.
var (
	// ErrSlotOccupied: slot sudah diisi item lain (tidak ada silent overwrite).
	ErrSlotOccupied = errors.New("placement: slot sudah terisi item lain")

	// ErrItemAlreadyPlaced: item sudah punya placement aktif di tempat lain;
	// caller harus Unassign dulu.
	ErrItemAlreadyPlaced = errors.New("placement: item sudah ditempatkan di tempat lain")

	// ErrPlacementNotFound: placement id tidak dikenal.
	ErrPlacementNotFound = errors.New("placement: tidak ditemukan")
)
