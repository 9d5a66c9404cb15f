// Package dictionary provides the word/prefix membership structure the
// search engine prunes against.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type node struct {
	children map[rune]*node
	word     bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a prefix tree over lower-cased words. By construction it keeps
// the contract the solver relies on: every prefix of a contained word is a
// contained prefix.
type Trie struct {
	root  *node
	count int
	byLen map[int][]string
}

// New builds a Trie containing the given words.
func New(words ...string) *Trie {
	t := &Trie{root: newNode(), byLen: make(map[int][]string)}
	for _, w := range words {
		t.Add(w)
	}
	return t
}

// Add inserts a word, lower-casing it first. Empty strings are ignored.
func (t *Trie) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.word {
		cur.word = true
		t.count++
		n := len([]rune(word))
		t.byLen[n] = append(t.byLen[n], word)
	}
}

func (t *Trie) walk(s string) (*node, bool) {
	cur := t.root
	for _, r := range s {
		next, ok := cur.children[r]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// IsWord reports exact membership of the lower-cased candidate.
func (t *Trie) IsWord(candidate string) bool {
	n, ok := t.walk(strings.ToLower(candidate))
	return ok && n.word
}

// IsPrefix reports whether some contained word starts with the candidate.
func (t *Trie) IsPrefix(candidate string) bool {
	_, ok := t.walk(strings.ToLower(candidate))
	return ok
}

// WordsOfLength returns the contained words of exactly n runes, in
// insertion order. The returned slice is shared; callers must not mutate it.
func (t *Trie) WordsOfLength(n int) []string {
	return t.byLen[n]
}

// Len returns the number of distinct words contained.
func (t *Trie) Len() int { return t.count }

// Load reads a word list, one word per line, skipping blank lines and
// lines starting with '#'.
func Load(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	t := New()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t.Add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return t, nil
}
