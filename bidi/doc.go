// Package bidi holds the directional-run model consumed by caret motion.
//
// An Order lists a line's runs in visual left-to-right order; each Run covers
// a half-open range of rune indices and carries an embedding level whose
// parity gives its direction. Resolver is a small run provider good enough
// for mixed Latin/Hebrew/Arabic lines with numbers; callers with a full
// bidi implementation supply their own Provider.
package bidi
