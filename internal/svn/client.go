package svn

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/unijfdev/lazysvn/internal/log"
	"github.com/unijfdev/lazysvn/internal/models"
)

// Commit precondition failures. Both are checked locally before any
// process is spawned.
var (
	ErrEmptyCommitMessage = errors.New("commit message is empty")
	ErrNoFilesSelected    = errors.New("no files selected for commit")
)

// CommitError reports a commit command that ran but failed. Output carries
// the command's diagnostic text for display.
type CommitError struct {
	Output string
}

func (e *CommitError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("commit failed: %s", e.Output)
	}
	return "commit failed"
}

// NotifyFn receives best-effort failure notifications for the UI.
type NotifyFn func(message string, severity string)

// Client orchestrates svn commands against a single working copy and owns
// the status list it rebuilds after every mutating action.
type Client struct {
	runner      Runner
	bin         string
	workingCopy string
	notify      NotifyFn
	status      *StatusList
}

// NewClient constructs a Client for the given working copy. notify may be
// nil when no UI is attached.
func NewClient(workingCopy string, notify NotifyFn) *Client {
	if notify == nil {
		notify = func(string, string) {}
	}
	return &Client{
		runner:      NewExecRunner(),
		bin:         "svn",
		workingCopy: workingCopy,
		notify:      notify,
		status:      NewStatusList(nil),
	}
}

// SetRunner replaces the command runner. Used by tests to avoid spawning
// real processes.
func (c *Client) SetRunner(r Runner) {
	c.runner = r
}

// SetBinary overrides the svn binary path.
func (c *Client) SetBinary(bin string) {
	bin = strings.TrimSpace(bin)
	if bin != "" {
		c.bin = bin
	}
}

// WorkingCopy returns the working copy path the client operates against.
func (c *Client) WorkingCopy() string {
	return c.workingCopy
}

// Status returns the current status list.
func (c *Client) Status() *StatusList {
	return c.status
}

// QueryStatus runs svn status and parses the output into sorted entries.
// Command failure is reported through the debug log and the notify channel
// and yields an empty result; status refresh is best-effort.
func (c *Client) QueryStatus(ctx context.Context) []models.StatusEntry {
	out, err := c.runner.Run(ctx, c.bin, []string{"status"}, c.workingCopy)
	if err != nil {
		log.Printf("status query failed: %v", err)
		c.notify(fmt.Sprintf("svn status failed: %v", err), "error")
		return nil
	}
	return parseStatus(out)
}

// Initialize performs the first status population with an empty selection
// and an empty commit message.
func (c *Client) Initialize(ctx context.Context) {
	c.status = NewStatusList(c.QueryStatus(ctx))
}

// Refresh rebuilds the status list from fresh svn state while preserving
// the selection by path identity and carrying the commit message across
// the rebuild. A file stays selected iff it still appears in the new
// status; files that disappeared are implicitly deselected.
func (c *Client) Refresh(ctx context.Context) {
	entries := c.QueryStatus(ctx)
	selectedPaths := c.status.SelectedPaths()
	message := c.status.CommitMessage()

	next := NewStatusList(entries)
	for _, path := range selectedPaths {
		next.selectPath(path)
	}
	next.SetCommitMessage(message)
	c.status = next
}

// Add schedules the file at index for addition. Failures are swallowed;
// the unconditional refresh afterwards shows the true resulting state.
func (c *Client) Add(ctx context.Context, index int) {
	if entry, ok := c.status.Entry(index); ok {
		if _, err := c.runner.Run(ctx, c.bin, []string{"add", entry.Path}, c.workingCopy); err != nil {
			log.Printf("add %s failed: %v", entry.Path, err)
			c.notify(fmt.Sprintf("svn add failed: %v", err), "warning")
		}
	}
	c.Refresh(ctx)
}

// Revert discards local changes to the file at index. Same error policy
// as Add.
func (c *Client) Revert(ctx context.Context, index int) {
	if entry, ok := c.status.Entry(index); ok {
		if _, err := c.runner.Run(ctx, c.bin, []string{"revert", entry.Path}, c.workingCopy); err != nil {
			log.Printf("revert %s failed: %v", entry.Path, err)
			c.notify(fmt.Sprintf("svn revert failed: %v", err), "warning")
		}
	}
	c.Refresh(ctx)
}

// Commit commits the selected files with the current commit message.
// Preconditions are checked before the command runs: a non-blank message
// first, then a non-empty selection. The status list is refreshed
// unconditionally afterwards.
func (c *Client) Commit(ctx context.Context) error {
	if strings.TrimSpace(c.status.CommitMessage()) == "" {
		return ErrEmptyCommitMessage
	}
	if c.status.SelectionCount() == 0 {
		return ErrNoFilesSelected
	}

	args := append([]string{"commit", "-m", c.status.CommitMessage()}, c.status.SelectedPaths()...)
	_, err := c.runner.Run(ctx, c.bin, args, c.workingCopy)
	c.Refresh(ctx)
	if err != nil {
		return &CommitError{Output: diagnosticText(err)}
	}
	return nil
}

// Info queries svn info for the working copy header. On failure only the
// local path is populated.
func (c *Client) Info(ctx context.Context) models.WorkingCopyInfo {
	info := models.WorkingCopyInfo{Path: c.workingCopy}
	out, err := c.runner.Run(ctx, c.bin, []string{"info"}, c.workingCopy)
	if err != nil {
		log.Printf("info query failed: %v", err)
		return info
	}

	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "URL":
			info.URL = value
		case "Revision":
			info.Revision = value
		}
	}
	return info
}

// parseStatus parses svn status output. Each line is expected to be
// "<state-token><whitespace><path>"; lines that do not split into two
// tokens are dropped. The result is sorted by path.
func parseStatus(out string) []models.StatusEntry {
	var entries []models.StatusEntry
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		cut := strings.IndexFunc(line, unicode.IsSpace)
		if cut <= 0 {
			continue
		}
		state := line[:cut]
		path := strings.TrimSpace(line[cut:])
		if path == "" {
			continue
		}
		entries = append(entries, models.StatusEntry{Path: path, State: state})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}

// diagnosticText extracts the captured command output from an error.
func diagnosticText(err error) string {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Output
	}
	return err.Error()
}
