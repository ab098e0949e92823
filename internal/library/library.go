package library

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/ytget/pdf-viewer/internal/model"
)

// Search tuning
const (
	MinQueryLength = 2
	SearchDebounce = 300 * time.Millisecond
	// MaxWordDistanceRatio is the largest edit distance, relative to the
	// longer word, at which a query word still matches a title word
	MaxWordDistanceRatio = 0.4
	// MaxScanDepth limits how deep Scan descends below the library folder
	MaxScanDepth = 4
)

// ErrQueryTooShort is returned for non-empty queries below MinQueryLength
var ErrQueryTooShort = fmt.Errorf("search query must be at least %d characters", MinQueryLength)

// DocumentExtension is the only file type listed in the library
const DocumentExtension = ".pdf"

// Scan lists the PDF files under dir, sorted by title. Hidden files and
// folders are skipped, unreadable subfolders are logged and skipped.
func Scan(dir string) ([]*model.DocumentEntry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("library directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("library directory: %s is not a directory", dir)
	}

	root := filepath.Clean(dir)
	var entries []*model.DocumentEntry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Printf("library: skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if depth(root, path) > MaxScanDepth {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), DocumentExtension) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			log.Printf("library: skipping %s: %v", path, err)
			return nil
		}
		entries = append(entries, model.NewDocumentEntry(uuid.New().String(), path, fi.Size(), fi.ModTime()))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan library: %w", err)
	}

	sortByTitle(entries)
	return entries, nil
}

func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return len(strings.Split(rel, string(filepath.Separator)))
}

func sortByTitle(entries []*model.DocumentEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ti, tj := strings.ToLower(entries[i].Title), strings.ToLower(entries[j].Title)
		if ti != tj {
			return ti < tj
		}
		return entries[i].Path < entries[j].Path
	})
}

// Search filters entries by query. An empty query returns every entry.
// Titles containing the query rank first, then titles whose words are all
// close to the query words.
func Search(entries []*model.DocumentEntry, query string) ([]*model.DocumentEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries, nil
	}
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil, ErrQueryTooShort
	}

	type hit struct {
		entry *model.DocumentEntry
		score float64
	}
	var hits []hit
	for _, entry := range entries {
		if score, ok := Match(entry.Title, query); ok {
			hits = append(hits, hit{entry: entry, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score < hits[j].score
	})

	result := make([]*model.DocumentEntry, len(hits))
	for i, h := range hits {
		result[i] = h.entry
	}
	return result, nil
}

// Match reports whether title matches query and a score where lower is better.
// A substring match scores 0.
func Match(title, query string) (float64, bool) {
	title = strings.ToLower(title)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 0, true
	}
	if strings.Contains(title, query) {
		return 0, true
	}

	titleWords := strings.Fields(title)
	if len(titleWords) == 0 {
		return 0, false
	}

	total := 0.0
	queryWords := strings.Fields(query)
	for _, qw := range queryWords {
		best := -1.0
		for _, tw := range titleWords {
			if strings.HasPrefix(tw, qw) {
				best = 0
				break
			}
			ratio := wordDistance(qw, tw)
			if best < 0 || ratio < best {
				best = ratio
			}
		}
		if best > MaxWordDistanceRatio {
			return 0, false
		}
		total += best
	}
	// Keep fuzzy hits strictly behind substring hits
	return total/float64(len(queryWords)) + 0.01, true
}

func wordDistance(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}

// IsQueryTooShort reports whether err came from a query below MinQueryLength
func IsQueryTooShort(err error) bool {
	return errors.Is(err, ErrQueryTooShort)
}
