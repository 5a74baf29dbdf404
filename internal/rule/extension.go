package rule

import (
	"fmt"
	"strings"

	"github.com/backmassage/batchren/internal/naming"
)

// ExtensionOptions configures [Extension]. Names are left alone until
// Change is set. Limit is the longest extension (dot excluded) still
// recognized as one; [naming.NoLimit] disables it.
type ExtensionOptions struct {
	Change bool
	NewExt string
	Limit  int
}

// DefaultExtensionOptions changes nothing and uses no limit.
func DefaultExtensionOptions() ExtensionOptions {
	return ExtensionOptions{Limit: naming.NoLimit}
}

// Extension replaces file extensions.
type Extension struct{ opts ExtensionOptions }

// NewExtension returns an extension rule with opts.
func NewExtension(opts ExtensionOptions) Extension { return Extension{opts: opts} }

// Options returns the rule's configuration.
func (r Extension) Options() ExtensionOptions { return r.opts }

func (r Extension) Kind() Kind { return KindExtension }

func (r Extension) Affect(batch naming.Batch) naming.Batch {
	return batch.Map(func(_ int, name string) string { return r.apply(name) })
}

func (r Extension) apply(name string) string {
	if !r.opts.Change {
		return name
	}
	stem, _ := naming.SplitExt(name, r.opts.Limit)
	if r.opts.NewExt == "" {
		return stem
	}
	return stem + "." + r.opts.NewExt
}

func (r Extension) Describe() string {
	s := "keep the original extensions"
	if r.opts.Change {
		if r.opts.NewExt == "" {
			s = "remove extensions"
		} else {
			s = fmt.Sprintf("change extensions to `%s'", r.opts.NewExt)
		}
	}
	if r.opts.Limit < 0 {
		return s + " not using limit"
	}
	return fmt.Sprintf("%s limiting to %d character%s", s, r.opts.Limit, plural(r.opts.Limit))
}

func (r Extension) Commands() []Command {
	return []Command{
		{
			Spec: "change to $",
			Help: "change extensions of files to <NEWEXT>",
			Run: func(args []string) (Result, error) {
				o := r.opts
				o.Change = true
				o.NewExt = strings.TrimPrefix(args[0], ".")
				return Result{Rule: Extension{opts: o}, Message: fmt.Sprintf("file extensions will change to `%s'", o.NewExt)}, nil
			},
		},
		{
			Spec: "limit #",
			Help: "not considered an extension if longer than <N>; `limit off' disables",
			Run: func(args []string) (Result, error) {
				o := r.opts
				if strings.EqualFold(strings.TrimSpace(args[0]), "off") {
					o.Limit = naming.NoLimit
					return Result{Rule: Extension{opts: o}, Message: "every extension will be affected"}, nil
				}
				n, err := parseCount(args[0], "limit value")
				if err != nil {
					o.Limit = naming.NoLimit
					return Result{Rule: Extension{opts: o}}, err
				}
				o.Limit = n
				return Result{
					Rule:    Extension{opts: o},
					Message: fmt.Sprintf("extensions with more than %d character%s will not be affected", n, plural(n)),
				}, nil
			},
		},
	}
}
