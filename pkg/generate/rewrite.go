package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/stubgen-io/stubgen/pkg/filesystem"
)

// Rewriter rewrites namespaced import references in generated modules so that
// the modules form a self-consistent package tree once relocated into the
// flat stub packages. Matching is driven by two explicit tables: a prefix
// table, which strips a known namespace prefix while preserving a single
// trailing path segment, and a direct table, which replaces exact import
// paths. Import lines matching neither table are left byte-for-byte
// untouched, which also makes the rewrite idempotent: rewritten targets begin
// with the repo-local import path and match no table entry on a second pass.
type Rewriter struct {
	// prefixes are the known namespace prefixes, ordered longest first so
	// that the most specific prefix wins.
	prefixes []string
	// prefixReplacements maps each known prefix to its repo-local import
	// path.
	prefixReplacements map[string]string
	// direct maps exact import paths to repo-local import paths.
	direct map[string]string
}

// NewRewriter creates a rewriter from the specified manifest's rewrite
// tables.
func NewRewriter(manifest *Manifest) *Rewriter {
	// Order the prefixes from longest to shortest, breaking length ties
	// lexically, so that matching is deterministic.
	prefixes := make([]string, 0, len(manifest.RewritePrefixes))
	for prefix := range manifest.RewritePrefixes {
		prefixes = append(prefixes, prefix)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})

	// Create the rewriter.
	return &Rewriter{
		prefixes:           prefixes,
		prefixReplacements: manifest.RewritePrefixes,
		direct:             manifest.RewriteDirect,
	}
}

// rewriteTarget rewrites a single quoted import target. It returns the target
// unchanged if it matches no table entry. A target that extends a known
// prefix by more than one path segment is a hard mismatch error, since no
// transformation can be guessed for it.
func (r *Rewriter) rewriteTarget(target string) (string, error) {
	// Check the direct table first.
	if replacement, ok := r.direct[target]; ok {
		return replacement, nil
	}

	// Check the prefix table.
	for _, prefix := range r.prefixes {
		if target == prefix {
			return r.prefixReplacements[prefix], nil
		}
		if strings.HasPrefix(target, prefix+"/") {
			trailer := target[len(prefix)+1:]
			if strings.ContainsRune(trailer, '/') {
				return "", fmt.Errorf("import %q extends known prefix %q by more than one segment", target, prefix)
			}
			return r.prefixReplacements[prefix] + "/" + trailer, nil
		}
	}

	// No match.
	return target, nil
}

// RewriteFile rewrites the import statements of a single file in place,
// returning the number of imports rewritten. Processing is line-oriented:
// only lines within import declarations are candidates, and non-matching
// lines pass through unmodified. If any import is rewritten, the file is
// replaced atomically.
func (r *Rewriter) RewriteFile(path string) (int, error) {
	// Read the file.
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("unable to read file: %w", err)
	}

	// Process lines.
	lines := strings.Split(string(data), "\n")
	var rewritten int
	var inBlock bool
	for l, line := range lines {
		// Track import declaration boundaries and skip non-import lines.
		trimmed := strings.TrimSpace(line)
		if !inBlock {
			if trimmed == "import (" {
				inBlock = true
				continue
			} else if !strings.HasPrefix(trimmed, "import ") {
				continue
			}
		} else if trimmed == ")" {
			inBlock = false
			continue
		} else if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		// Extract the quoted import target.
		begin := strings.IndexByte(line, '"')
		if begin < 0 {
			continue
		}
		length := strings.IndexByte(line[begin+1:], '"')
		if length < 0 {
			return 0, fmt.Errorf("malformed import on line %d of %s", l+1, path)
		}
		target := line[begin+1 : begin+1+length]

		// Rewrite the target, preserving everything else on the line.
		replacement, err := r.rewriteTarget(target)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		} else if replacement == target {
			continue
		}
		lines[l] = line[:begin+1] + replacement + line[begin+1+length:]
		rewritten++
	}

	// If any imports were rewritten, replace the file atomically so that an
	// interrupted rewrite never leaves a half-written module.
	if rewritten > 0 {
		content := []byte(strings.Join(lines, "\n"))
		if err := filesystem.WriteFileAtomic(path, content, 0644); err != nil {
			return 0, fmt.Errorf("unable to write file: %w", err)
		}
	}

	// Done.
	return rewritten, nil
}

// rewrite applies the import rewrite to every generated module beneath the
// stub root's destination packages.
func (g *Generator) rewrite() error {
	// Create a sublogger.
	logger := g.logger.Sublogger("rewrite")

	// Create the rewriter.
	rewriter := NewRewriter(g.manifest)

	// Process each destination package.
	for _, group := range g.manifest.Groups {
		directory := filepath.Join(g.stubRootPath(), group.Package)
		entries, err := os.ReadDir(directory)
		if err != nil {
			return fmt.Errorf("unable to read destination package %s: %w", group.Package, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if matched, err := doublestar.Match(generatedModulePattern, entry.Name()); err != nil {
				return fmt.Errorf("unable to match module pattern: %w", err)
			} else if !matched {
				continue
			}
			count, err := rewriter.RewriteFile(filepath.Join(directory, entry.Name()))
			if err != nil {
				return err
			}
			if count > 0 {
				logger.Printf("rewrote %d imports in %s/%s", count, group.Package, entry.Name())
			}
		}
	}

	// Success.
	return nil
}
