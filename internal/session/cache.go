package session

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/dshills/fuzzyfeed/internal/feedback"
	"github.com/dshills/fuzzyfeed/internal/log"
)

// ErrProducer indicates the producer command could not be run or exited
// nonzero.
var ErrProducer = errors.New("producer command failed")

// Options configures a Cache.
type Options struct {
	// Command is the producer argument vector.
	Command []string

	// Store persists documents per session token.
	Store *Store

	// Var is the variable name under which the session token is injected
	// into produced documents.
	Var string

	// Token is the externally supplied session token. Empty means this is
	// a new session and a token is minted from the process id.
	Token string

	// Logger receives diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

// Cache owns the generate-or-reuse decision for one session.
type Cache struct {
	cmd     []string
	store   *Store
	sidVar  string
	sid     string
	resumed bool
	logger  *log.Logger
}

// NewCache creates a cache for the given options, resolving the session
// state immediately: a supplied token resumes an existing session, an empty
// one starts a new session under a freshly minted token.
//
// Token minting is process-identity-derived; uniqueness across concurrently
// started new sessions is not guaranteed (see Store on write races).
func NewCache(opts Options) *Cache {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	sid := opts.Token
	resumed := sid != ""
	if !resumed {
		sid = strconv.Itoa(os.Getpid())
	}

	return &Cache{
		cmd:     opts.Command,
		store:   opts.Store,
		sidVar:  opts.Var,
		sid:     sid,
		resumed: resumed,
		logger:  logger,
	}
}

// SessionID returns the session token, minted or supplied.
func (c *Cache) SessionID() string {
	return c.sid
}

// Resumed reports whether the token was supplied externally.
func (c *Cache) Resumed() bool {
	return c.resumed
}

// Load returns the session's feedback document.
//
// A resumed session with a cache entry returns the cached document
// unchanged; the producer is not invoked. Otherwise the producer runs, the
// session token is injected into the document's variables, and the result
// is cached under the token before being returned. Parse, producer, and
// storage failures are fatal; no partial document is ever synthesized.
func (c *Cache) Load() (*feedback.Document, error) {
	if c.resumed {
		data, ok, err := c.store.Get(c.sid)
		if err != nil {
			return nil, err
		}
		if ok {
			c.logger.Debug("loading cached items for session %s", c.sid)
			doc, err := feedback.Parse(data)
			if err != nil {
				return nil, err
			}
			c.logger.Debug("loaded %d item(s)", doc.Len())
			return doc, nil
		}
	}

	out, err := c.produce()
	if err != nil {
		return nil, err
	}

	doc, err := feedback.Parse(out)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("loaded %d item(s)", doc.Len())

	if err := doc.SetVariable(c.sidVar, c.sid); err != nil {
		return nil, err
	}
	c.logger.Debug("added session id %s to results", c.sid)

	if err := c.store.Put(c.sid, doc.JSON()); err != nil {
		return nil, err
	}
	c.logger.Debug("cached results to %s", c.store.path(c.sid))

	return doc, nil
}

// Clear deletes every cached session file.
func (c *Cache) Clear() error {
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.logger.Debug("cleared session cache files")
	return nil
}

// produce runs the producer command and returns its standard output.
// The call blocks until the child exits; the producer's stderr passes
// through to this process's stderr.
func (c *Cache) produce() ([]byte, error) {
	if len(c.cmd) == 0 {
		return nil, fmt.Errorf("%w: no command given", ErrProducer)
	}

	c.logger.Debug("running command %q", c.cmd)
	cmd := exec.Command(c.cmd[0], c.cmd[1:]...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrProducer, c.cmd, err)
	}
	return out, nil
}
