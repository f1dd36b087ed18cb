// Package wixbook fetches multi-page works (serials, stories, manuals)
// from hosting platforms that keep page text behind a content-delivery
// API instead of in the served markup, and rebuilds every page as a
// normalized chapter document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/) or the
// platform they understand (wix/).
package wixbook
