package cli

import (
	"fmt"
	"io"
	"sync"
)

// Navigator tracks the screen route the session controller points the user
// at. In the CLI a route change is a prompt change plus a printed line.
type Navigator struct {
	mu    sync.Mutex
	out   io.Writer
	route string
}

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out, route: "/"}
}

func (n *Navigator) Redirect(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.route == route {
		return
	}
	n.route = route
	fmt.Fprintf(n.out, "-- %s --\n", route)
}

func (n *Navigator) Route() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.route
}
