// SPDX-License-Identifier: MIT

// Package graphio reads and writes graph collections.
//
// Two text formats are supported, one graph per line:
//
//   - graph6, the compact format of nauty and House of Graphs, for
//     simple graphs. Vertex IDs are "0".."n-1". An optional >>graph6<<
//     header is accepted.
//
//   - edge lists, a small grammar for multigraphs:
//
//     [N ":"] run ("," run)*     run = v ("-" v)+
//
//     "4: 0-1-2-3-0" is the 4-cycle, "0-1,0-1" a doubled edge and "0-0" a
//     loop. N declares vertices 0..N-1 so isolated ones survive. Blank
//     lines and lines starting with '#' are skipped.
//
// ReadFile picks the format from the first data line when asked to.
package graphio
