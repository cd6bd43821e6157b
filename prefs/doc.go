/*
Package prefs stores and resolves the values users choose for waymark's
configuration options.

# Overview

A stored configuration is a flat [Values] map: one entry per [Key],
every value kept as its stored string form. An [Option] pairs one Key
with the family declaring its legal values and with a default, so
everything about reading an option safely travels together.

	mode := prefs.BrailleTetherTo.Resolve(vals, l)

Resolving never fails: a missing entry yields the option's default
silently, while a present but corrupt entry logs a warning and yields
the default. Writing through [Option.Set] validates first, so a Values
map only ever accumulates declared members.

# Storage backends

Values round-trip through a YAML file with [FileStore], the usual home
of a local configuration. Named profiles with their settings persist to
PostgreSQL through [DBStore]. Per-session overrides ride a cookie or
Redis backed [SessionStore], and [Cacher] implementations memoize
resolved profiles.
*/
package prefs
