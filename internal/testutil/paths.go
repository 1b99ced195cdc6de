package testutil

// Fixture paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// FixtureTorrent is a bencoded metainfo document with binary piece hashes.
	FixtureTorrent = "testdata/suite/sample.torrent"

	// FixtureSettings is a pretty-printed JSON settings document.
	FixtureSettings = "testdata/suite/settings.json"

	// FixtureSettingsOverlay is a JSON-with-comments overlay for FixtureSettings.
	FixtureSettingsOverlay = "testdata/suite/settings.jsonc"
)
