// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/evencycle/core"
)

// Format names accepted by Read and ReadFile.
const (
	FormatAuto   = "auto"
	FormatGraph6 = "graph6"
	FormatEdges  = "edges"
)

// Read decodes a graph collection in the given format. FormatAuto looks
// at the first data line: a nauty header or marker, or a line made only of
// graph6 characters, selects graph6; anything else the edge-list grammar.
func Read(r io.Reader, format string) ([]*core.Graph, error) {
	switch format {
	case FormatGraph6:
		return ReadGraph6(r)
	case FormatEdges:
		return ReadEdgeLists(r)
	case FormatAuto, "":
		br := bufio.NewReader(r)
		data, err := io.ReadAll(br)
		if err != nil {
			return nil, errors.Wrap(err, "graphio: read")
		}
		if Sniff(data) == FormatGraph6 {
			return ReadGraph6(bytes.NewReader(data))
		}
		return ReadEdgeLists(bytes.NewReader(data))
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// Sniff names the format of data. Input with no data line counts as
// edge lists.
func Sniff(data []byte) string {
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, graph6Header) || strings.ContainsRune(":;&", rune(line[0])) {
			return FormatGraph6
		}
		for i := 0; i < len(line); i++ {
			if line[i] < g6Bias || line[i] > g6Wide {
				return FormatEdges
			}
		}
		return FormatGraph6
	}

	return FormatEdges
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path, format string) ([]*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "graphio: open")
	}
	defer f.Close()

	graphs, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: %s", path)
	}

	return graphs, nil
}
