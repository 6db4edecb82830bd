package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/avolkov/chargecli/internal/client/session"
)

// Notifier renders session notifications on the terminal. Transient
// notifications print a single tagged line; alerts print prominently and
// block until the user acknowledges with Enter.
type Notifier struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewNotifier(reader *bufio.Reader, out io.Writer) *Notifier {
	return &Notifier{reader: reader, out: out}
}

func (n *Notifier) Notify(message string, kind session.NotifyKind) {
	fmt.Fprintf(n.out, "[%s] %s\n", kind, message)
}

func (n *Notifier) Alert(message string) {
	fmt.Fprintf(n.out, "\n*** %s ***\n", message)
	fmt.Fprint(n.out, "Press Enter to continue...")
	_, _ = n.reader.ReadString('\n')
	fmt.Fprintln(n.out)
}
