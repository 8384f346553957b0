package screen

import "github.com/roadprep/roadprep/internal/account"

// ViewerChangedMsg announces a new resolved viewer (startup, login, logout).
// The router broadcasts it to every screen on the stack so listings beneath
// a login screen re-annotate when it pops.
type ViewerChangedMsg struct {
	Viewer account.Viewer
}
