package cli

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// Stats records what happened while a trie was loaded and written.
type Stats struct {
	Files    int           // input files read
	Input    int           // words read, duplicates included
	Words    int           // distinct words stored
	Nodes    int           // nodes without the root
	Depth    int           // longest word in runes
	Output   int           // entries written by an export
	LoadTime time.Duration // reading and inserting
}

func (s *Stats) update(t *trie.Trie) {
	s.Words = t.Len()
	s.Nodes = t.NodeCount()
	s.Depth = t.Depth()
}

// Render prints the statistics as a table.
func (s *Stats) Render(out io.Writer) {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(out)
	outputTable.AppendHeader(table.Row{"Metric", "Value"})
	outputTable.AppendRows([]table.Row{
		{"Files", s.Files},
		{"Words read", s.Input},
		{"Distinct words", s.Words},
		{"Nodes", s.Nodes},
		{"Max depth", s.Depth},
		{"Load time", s.LoadTime.Round(time.Microsecond)},
	})
	outputTable.Render()
}
