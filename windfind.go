// Package windfind discovers windsurfing schools and rental shops in an
// area, filters the discovered web domains for relevance, categorizes
// their subpages, and extracts structured business facts from page text,
// merging the partial facts gathered across subpages into one
// consolidated record per domain. A persistent cache sits in front of
// every costly external call so repeated runs over the same inputs avoid
// re-incurring cost and latency.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., tavily/,
// gemini/, fs/, sqlite/).
package windfind
