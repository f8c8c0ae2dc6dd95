// Package importer migrates a mirrored static website into structured content
// for a new site generator. It classifies pages by content type, extracts
// metadata from the site's fixed template family, converts HTML bodies to
// markdown, relocalizes remote images, and writes markdown files with YAML
// frontmatter or a single JSON export.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, convert/, fs/).
package importer
