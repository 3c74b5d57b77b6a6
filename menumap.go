// Package menumap extracts a prioritized list of important pages (the
// menu/navigation structure) from a website root URL. The result drives
// downstream automated screenshot capture.
//
// Extraction combines a structured source (sitemap files), an
// unstructured source (rendered-DOM navigation analysis aided by a
// language model), and a verification pass that merges, deduplicates,
// re-weights, and truncates candidate pages, with a bounded retry loop
// driven by quality checks.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// gemini/, http/); orchestration lives in pipeline/.
package menumap
