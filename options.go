package edit

// Option configures an Editor at construction time.
type Option interface {
	apply(e *Editor)
}

type searcherOption struct {
	s Searcher
}

func (o searcherOption) apply(e *Editor) { e.search = o.s }

// WithSearcher attaches the host's search/run/persist collaborator. Without
// one, n, N, ^I and ^W fail rather than panic.
func WithSearcher(s Searcher) Option {
	return searcherOption{s: s}
}

type debugOption struct{}

func (debugOption) apply(e *Editor) { e.dbg = &debugger{} }

// WithDebug enables trace logging to the file named by EDIT_DEBUG, opened
// lazily on first use.
func WithDebug() Option {
	return debugOption{}
}
