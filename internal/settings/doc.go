// Package settings holds the state behind the settings screen that does not
// belong to a device controller: the tab list, the PIN gate in front of the
// bluetooth, volume, system and account tabs, volume limits and theme
// presets.
package settings
