// Package unitext extracts plain text from local PDF files and from web
// pages. PDFs are parsed locally; web pages are read by a hosted language
// model that returns the page's main text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., pdf/, gemini/, trafilatura/).
package unitext
