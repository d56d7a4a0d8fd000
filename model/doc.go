// Package model defines the format-agnostic report document consumed by
// every renderer: a titled, ordered list of sections whose content is
// free text, two-dimensional tables, or images.
//
// A Document is owned by the caller that assembles it and is treated as
// immutable once handed to a renderer; renderers never mutate it.
package model
