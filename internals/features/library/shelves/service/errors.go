// file: internals/features/library/shelves/service/errors.go
package service

import "errors"

var (
	// ErrShelfNotFound: shelf id tidak dikenal / sudah dihapus.
	ErrShelfNotFound = errors.New("shelf: tidak ditemukan")

	// ErrSlotNotFound: slot id bukan milik shelf tsb (atau sudah hilang
	// karena layout diganti).
	ErrSlotNotFound = errors.New("shelf: slot tidak ditemukan")
)
