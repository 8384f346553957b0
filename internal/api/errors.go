package api

import "fmt"

// ErrNetwork indicates a transport failure or a non-2xx response from the
// backend. The UI offers a retry; the client never retries on its own.
type ErrNetwork struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ErrNetwork) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: backend returned HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ErrNetwork) Unwrap() error { return e.Err }

// ErrFormat indicates the response body does not match the expected contract.
// Non-recoverable for that fetch attempt; surfaced the same way as ErrNetwork.
type ErrFormat struct {
	Op  string
	Err error
}

func (e *ErrFormat) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *ErrFormat) Unwrap() error { return e.Err }

// ErrUnauthorized indicates the stored credential was rejected by the backend.
type ErrUnauthorized struct {
	Op string
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("%s: not authorized", e.Op)
}
