// Package classification suggests categories for imported transactions from
// their descriptions.
package classification

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/Veraticus/budget-buzz/internal/model"
)

// Pattern maps descriptions matching Regex to the category named Category.
// Only transactions of the same Type are considered.
type Pattern struct {
	Name       string
	Category   string
	Regex      string
	Type       model.TransactionType
	Priority   int     // Higher priority patterns are checked first
	Confidence float64 // Base confidence when pattern matches (0.0-1.0)
}

// CompiledPattern holds a compiled regex pattern with metadata.
type CompiledPattern struct {
	compiledRegex *regexp.Regexp
	Pattern
}

// PatternDetector classifies transactions by pattern. It is safe for concurrent use.
type PatternDetector struct {
	patterns []CompiledPattern
	mu       sync.RWMutex
}

// NewPatternDetector creates a detector for the given patterns.
func NewPatternDetector(patterns []Pattern) (*PatternDetector, error) {
	pd := &PatternDetector{}
	if err := pd.UpdatePatterns(patterns); err != nil {
		return nil, err
	}
	return pd, nil
}

// Match is the pattern that classified a transaction.
type Match struct {
	PatternName string
	Category    string
	Confidence  float64
}

// Classify returns the highest-priority pattern matching txn, or nil.
func (pd *PatternDetector) Classify(_ context.Context, txn model.Transaction) *Match {
	pd.mu.RLock()
	defer pd.mu.RUnlock()

	searchText := strings.ToLower(txn.Description + " " + txn.Note)

	for _, pattern := range pd.patterns {
		if pattern.Type != txn.Type || !pattern.compiledRegex.MatchString(searchText) {
			continue
		}

		confidence := pattern.Confidence
		if strings.Contains(searchText, strings.ToLower(pattern.Name)) {
			confidence = min(confidence+0.1, 1.0)
		}
		return &Match{
			PatternName: pattern.Name,
			Category:    pattern.Category,
			Confidence:  confidence,
		}
	}
	return nil
}

// Suggest returns the category among categories that the matching pattern
// names. The boolean is false when no pattern matches or the named category
// no longer exists.
func (pd *PatternDetector) Suggest(ctx context.Context, txn model.Transaction, categories []model.Category) (model.Category, bool) {
	match := pd.Classify(ctx, txn)
	if match == nil {
		return model.Category{}, false
	}
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, match.Category) {
			return cat, true
		}
	}
	return model.Category{}, false
}

// UpdatePatterns replaces the detector's patterns.
func (pd *PatternDetector) UpdatePatterns(patterns []Pattern) error {
	compiled := make([]CompiledPattern, 0, len(patterns))

	for _, p := range patterns {
		regexStr := p.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return fmt.Errorf("failed to compile pattern %s: %w", p.Name, err)
		}

		compiled = append(compiled, CompiledPattern{
			Pattern:       p,
			compiledRegex: regex,
		})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	pd.mu.Lock()
	pd.patterns = compiled
	pd.mu.Unlock()

	return nil
}

// PatternCount returns the number of loaded patterns.
func (pd *PatternDetector) PatternCount() int {
	pd.mu.RLock()
	defer pd.mu.RUnlock()
	return len(pd.patterns)
}
