package calc

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Session owns the variable snapshot across Evaluate calls within one
// interactive session. A failed evaluation leaves the snapshot exactly as it
// was. It is not safe to use a Session concurrently; independent sessions
// share nothing and may run in parallel.
type Session struct {
	vars map[string]float64
	log  *logrus.Entry
}

// SessionOption is an option used when creating a session.
type SessionOption interface {
	sessionOption(*Session)
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	logopt  struct {
		log *logrus.Entry
	}
)

func (o varopt) sessionOption(s *Session)  { s.vars[o.name] = o.val }
func (o varsopt) sessionOption(s *Session) {
	for k, v := range o {
		s.vars[k] = v
	}
}
func (o logopt) sessionOption(s *Session) { s.log = o.log }

// WithVar seeds the value of one variable in the session.
func WithVar(name string, val float64) SessionOption {
	return varopt{name, val}
}

// WithVars seeds the values of any number of variables in the session.
func WithVars(vars map[string]float64) SessionOption {
	return varsopt(vars)
}

// WithLogger sets the logger the session traces evaluations with. The
// default discards everything.
func WithLogger(log *logrus.Entry) SessionOption {
	return logopt{log}
}

var discard = func() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}()

// NewSession creates a session with an empty snapshot, then applies the
// options in order.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{vars: make(map[string]float64), log: discard}
	for _, opt := range opts {
		opt.sessionOption(s)
	}
	return s
}

// Eval evaluates src against the session's snapshot. On success the snapshot
// is replaced with the final variable set; on failure it is unchanged.
func (s *Session) Eval(src string) (float64, error) {
	r, vars, err := Evaluate(src, s.vars)
	if err != nil {
		s.log.WithError(err).Debug("evaluation failed")
		return 0, err
	}
	s.vars = vars
	s.log.WithFields(logrus.Fields{"result": r, "vars": len(vars)}).Debug("evaluated")
	return r, nil
}

// Set sets the value of a variable in the snapshot.
func (s *Session) Set(name string, val float64) {
	s.vars[name] = val
}

// Lookup returns the value of a variable and whether it is defined.
func (s *Session) Lookup(name string) (float64, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Vars returns a copy of the snapshot.
func (s *Session) Vars() map[string]float64 {
	m := make(map[string]float64, len(s.vars))
	for k, v := range s.vars {
		m[k] = v
	}
	return m
}

// Clear drops every variable from the snapshot.
func (s *Session) Clear() {
	s.vars = make(map[string]float64)
	s.log.Debug("variables cleared")
}
