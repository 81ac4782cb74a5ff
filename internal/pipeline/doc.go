// Package pipeline turns FASTA files into motif diagrams, one image per file.
//
// Each file is an independent pass: read records, scan motifs, build the
// palette, lay out, rasterize. The palette is built before any track of a
// pass is laid out and every pass uses the same sorted motif set, so a
// motif has the same color in every image. Passes may run in parallel;
// nothing inside a pass is concurrent.
//
// A run has two phases. Every pass is prepared in memory first; files are
// written only once all passes succeeded.
package pipeline
