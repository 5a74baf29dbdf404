package pipeline

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/batchren/internal/config"
	"github.com/backmassage/batchren/internal/fsys"
	"github.com/backmassage/batchren/internal/naming"
)

// Discover collects the names cfg designates, orders them by cfg.Sort, and
// builds the initial batch. It also returns the names skipped because they
// do not exist.
func Discover(cfg *config.Config, fs fsys.FS) (naming.Batch, []string, error) {
	names := cfg.Files
	if cfg.FileList != "" {
		var err error
		if names, err = ReadFileList(fs, cfg.FileList); err != nil {
			return nil, nil, err
		}
	}
	names = append([]string(nil), names...)
	SortNames(names, cfg.Sort)
	batch, missing := BuildBatch(fs, names)
	return batch, missing, nil
}

// ReadFileList reads one name per line from path. Blank lines are dropped.
func ReadFileList(fs fsys.FS, path string) ([]string, error) {
	lines, err := fs.ReadLines(path)
	if err != nil {
		return nil, err
	}
	names := lines[:0]
	for _, l := range lines {
		if l != "" {
			names = append(names, l)
		}
	}
	return names, nil
}

// SortNames orders names in place. SortNone leaves them as given.
func SortNames(names []string, mode config.SortMode) {
	switch mode {
	case config.SortAlpha:
		sort.Strings(names)
	case config.SortNatural:
		sort.SliceStable(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })
	}
}

// BuildBatch cleans every name, splits it into directory and base name,
// and keeps the first occurrence of each existing file. "." and ".." are
// dropped silently; missing files are returned in the second result.
func BuildBatch(fs fsys.FS, names []string) (naming.Batch, []string) {
	var (
		batch   naming.Batch
		missing []string
	)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		clean := filepath.Clean(name)
		dir, file := filepath.Dir(clean), filepath.Base(clean)
		if file == "." || file == ".." || file == naming.Separator {
			continue
		}
		rec := naming.NewRecord(dir, file)
		if !fs.Exists(rec.Full()) {
			missing = append(missing, rec.Full())
			continue
		}
		if seen[rec.Full()] {
			continue
		}
		seen[rec.Full()] = true
		batch = append(batch, rec)
	}
	return batch, missing
}

// naturalLess compares digit runs by numeric value and everything else
// byte-wise with ASCII letters folded to lower case. Equal numbers with
// more leading zeros sort later.
func naturalLess(a, b string) bool {
	ai, bi, la, lb := 0, 0, len(a), len(b)
	for ai < la && bi < lb {
		ca, cb := a[ai], b[bi]
		if isDigit(ca) && isDigit(cb) {
			startA, startB := ai, bi
			for ai < la && isDigit(a[ai]) {
				ai++
			}
			for bi < lb && isDigit(b[bi]) {
				bi++
			}
			numA := strings.TrimLeft(a[startA:ai], "0")
			numB := strings.TrimLeft(b[startB:bi], "0")
			if len(numA) != len(numB) {
				return len(numA) < len(numB)
			}
			if numA != numB {
				return numA < numB
			}
			if lenA, lenB := ai-startA, bi-startB; lenA != lenB {
				return lenA < lenB
			}
			continue
		}
		if fa, fb := lowerASCII(ca), lowerASCII(cb); fa != fb {
			return fa < fb
		}
		ai++
		bi++
	}
	return la-ai < lb-bi
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
