package extract

import (
	"context"
	"encoding/json"
	"os/exec"
	"time"

	"github.com/depscope/depscope/pkg/deps"
	"github.com/depscope/depscope/pkg/errors"
)

// DefaultToolTimeout bounds one ast-grep invocation.
const DefaultToolTimeout = 30 * time.Second

// AstGrep matches import patterns by invoking the ast-grep binary once per
// (file, pattern) pair. Every invocation is bounded by a fixed timeout; a
// timeout is reported as [errors.ErrCodeToolTimeout] and treated upstream
// exactly like "no match". Non-zero exits and malformed JSON output are
// silently "no match" as well.
//
// Patterns without an ast-grep rule (builtin-only variants) fall back to the
// in-process engine so both engines recognize the same construct set.
type AstGrep struct {
	bin     string
	timeout time.Duration
	builtin Builtin
}

// NewAstGrep creates an ast-grep engine invoking bin with the given
// per-invocation timeout. Empty bin defaults to "ast-grep"; a non-positive
// timeout defaults to [DefaultToolTimeout].
func NewAstGrep(bin string, timeout time.Duration) *AstGrep {
	if bin == "" {
		bin = "ast-grep"
	}
	if timeout <= 0 {
		timeout = DefaultToolTimeout
	}
	return &AstGrep{bin: bin, timeout: timeout}
}

// LookPath reports whether the engine's binary is resolvable, so callers can
// fail fast on an explicit engine selection instead of silently producing an
// empty report.
func (a *AstGrep) LookPath() error {
	if _, err := exec.LookPath(a.bin); err != nil {
		return errors.Wrap(errors.ErrCodeToolNotFound, err, "%s not found in PATH", a.bin)
	}
	return nil
}

// astGrepMatch mirrors the subset of ast-grep's --json output we consume.
// metaVariables appears in two shapes across ast-grep versions: nested under
// "single" or flat at the top level. Both are handled.
type astGrepMatch struct {
	MetaVariables astGrepMeta `json:"metaVariables"`
	Range         struct {
		Start struct {
			Line int `json:"line"` // 0-based
		} `json:"start"`
	} `json:"range"`
}

type astGrepMeta struct {
	Single map[string]astGrepVar `json:"single"`
	Flat   map[string]astGrepVar `json:"-"`
}

type astGrepVar struct {
	Text string `json:"text"`
}

// UnmarshalJSON accepts both metaVariable shapes.
func (m *astGrepMeta) UnmarshalJSON(data []byte) error {
	type nested struct {
		Single map[string]astGrepVar `json:"single"`
	}
	var n nested
	if err := json.Unmarshal(data, &n); err == nil && len(n.Single) > 0 {
		m.Single = n.Single
		return nil
	}
	var flat map[string]astGrepVar
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	m.Flat = flat
	return nil
}

// ref returns the captured $REF text from either shape.
func (m astGrepMeta) ref() string {
	if v, ok := m.Single["REF"]; ok {
		return v.Text
	}
	if v, ok := m.Flat["REF"]; ok {
		return v.Text
	}
	return ""
}

// Find invokes ast-grep for the pattern and decodes its JSON match list.
func (a *AstGrep) Find(ctx context.Context, f File, p deps.ImportPattern) ([]Match, error) {
	if p.AstGrep == "" {
		return a.builtin.Find(ctx, f, p)
	}

	runCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, a.bin,
		"run", "-p", p.AstGrep, "--lang", f.Language.AstGrepID, "--json", f.Path)
	out, err := cmd.Output()
	if runCtx.Err() == context.DeadlineExceeded {
		return nil, errors.New(errors.ErrCodeToolTimeout, "%s timed out on %s", a.bin, f.RelPath)
	}
	if err != nil {
		// non-zero exit means the pattern produced nothing for this file
		return nil, nil
	}

	var raw []astGrepMatch
	if err := json.Unmarshal(out, &raw); err != nil {
		// malformed output is treated as "no match", never propagated
		return nil, nil
	}

	matches := make([]Match, 0, len(raw))
	for _, m := range raw {
		matches = append(matches, Match{
			Ref:  m.MetaVariables.ref(),
			Line: m.Range.Start.Line + 1,
		})
	}
	return matches, nil
}
