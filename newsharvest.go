// Package newsharvest turns arbitrary HTML news-article pages into clean
// blocks of body text across differently-structured websites. It fetches
// pages, runs a cascading sequence of extraction strategies (site-specific
// selector profiles, generic structural heuristics, paragraph aggregation,
// whole-document salvage), normalizes the result, and persists accepted
// articles into per-source collections deduplicated by URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, fs/).
package newsharvest
