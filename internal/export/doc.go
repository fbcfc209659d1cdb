// Package export renders notes as markdown files with a YAML frontmatter
// header and reads them back.
//
// A file looks like:
//
//	---
//	id: 7f0c...
//	title: Groceries
//	tags:
//	  - home
//	archived: false
//	created_at: 2026-01-02T10:00:00Z
//	updated_at: 2026-01-03T08:30:00Z
//	---
//	milk, eggs
package export
