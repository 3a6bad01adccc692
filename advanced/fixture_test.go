package advanced

import (
	"embed"
	"log"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each holds exactly one <polygon> or <polyline>. Closed fixtures are returned
// counterclockwise. If anything goes wrong, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Path {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	paths, err := ParseSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(paths) == 0 {
		log.Fatalf("No paths found in fixture %q", name)
	}
	if len(paths) > 1 {
		log.Fatalf("More than one path found in fixture %q", name)
	}

	result := paths[0]
	if result.Closed && !result.IsCCW() {
		result = result.Reverse()
	}
	return result
}
