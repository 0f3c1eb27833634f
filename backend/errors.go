package backend

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrConfigRequired is returned by Build when no config is supplied.
	ErrConfigRequired = errors.New("eventflow: backend config is required")

	// ErrQueueClosed is returned by Publish on a backend whose underlying
	// queue has been closed.
	ErrQueueClosed = errors.New("eventflow: queue is closed")
)

// ConfigurationError reports a request for a backend name that no registered
// builder serves. It is fatal at construction time; the message names the
// available alternatives so the operator can correct QUEUE_BACKEND or import
// the missing backend package.
type ConfigurationError struct {
	Name      string
	Available []string
}

func (e *ConfigurationError) Error() string {
	available := append([]string(nil), e.Available...)
	sort.Strings(available)

	var b strings.Builder
	fmt.Fprintf(&b, "eventflow: unknown queue backend %q", e.Name)
	if len(available) == 0 {
		b.WriteString(" (no backends registered; import a backend package such as " +
			"github.com/relaymq/eventflow/backend/memory)")
		return b.String()
	}
	fmt.Fprintf(&b, " (registered: %s); set QUEUE_BACKEND to one of the registered names "+
		"or blank-import github.com/relaymq/eventflow/backend/%s",
		strings.Join(available, ", "), e.Name)
	return b.String()
}
