/*
Package settings declares the option families the application persists and
renders: each is a [waymark.Family] plus the typed constants naming its
members.

Compare raw configuration values against the constants; render controls from
the family's Choices; convert into other subsystems' vocabularies through
the methods each member type carries. Families verify themselves at
declaration, so a defective member panics the process at startup rather than
surfacing later as a wrong lookup; [Verify] re-runs the whole catalog's
checks for boot-time sweeps.
*/
package settings
