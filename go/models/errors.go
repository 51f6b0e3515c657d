package models

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidPointer is returned when a pointer path steps below the
	// emulated address space, usually by following a null pointer.
	ErrInvalidPointer = errors.New("attempt to dereference an invalid pointer")
	// ErrInvalidData is returned when bytes read from memory are not a legal
	// value of the requested type.
	ErrInvalidData = errors.New("invalid data")
	// ErrUnhooked marks a lost connection to the target process. Only errors
	// matching ErrUnhooked cause a provider to drop its hook.
	ErrUnhooked = errors.New("interface became unhooked")

	ErrProcessNotFound = errors.New("emulator process not found")
	ErrRegionNotFound  = errors.New("emulated memory region not found; make sure the game is running")
	ErrWrongGame       = errors.New("emulator is running a different game")
	ErrUnsupported     = errors.New("process hooking is not supported on this platform")
)

// UnhookedError wraps an OS-level memory access failure.
type UnhookedError struct {
	Op   string
	Addr uint64
	Err  error
}

func (e *UnhookedError) Error() string {
	return fmt.Sprintf("%s at %#x: %v", e.Op, e.Addr, e.Err)
}

func (e *UnhookedError) Unwrap() error { return e.Err }

func (e *UnhookedError) Is(target error) bool { return target == ErrUnhooked }

// Unhooked wraps err as a connectivity failure. Translation and decode
// errors are passed through untouched.
func Unhooked(op string, addr uint64, err error) error {
	if err == nil || IsConnectivity(err) || isLogic(err) {
		return err
	}
	return &UnhookedError{Op: op, Addr: addr, Err: err}
}

// IsConnectivity reports whether err means the target process is gone.
func IsConnectivity(err error) bool {
	return errors.Is(err, ErrUnhooked)
}

func isLogic(err error) bool {
	return errors.Is(err, ErrInvalidPointer) || errors.Is(err, ErrInvalidData)
}
