package context

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ImportantNames is the allow-list of files whose contents are inlined
// into the packet: the README plus the project manifests of the common
// ecosystems.
var ImportantNames = map[string]bool{
	"README.md":        true,
	"README":           true,
	"go.mod":           true,
	"package.json":     true,
	"Cargo.toml":       true,
	"pyproject.toml":   true,
	"requirements.txt": true,
	"Makefile":         true,
}

// BuildPacket renders the workspace context block that is prepended to
// the model's system instruction: a header naming the working
// directory, the ordered structure listing, inlined contents of the
// important files, and a trailer when the listing is incomplete.
//
// When enabled is false it returns the empty string without touching
// the filesystem at all. Scan or read failures degrade to an empty or
// partial packet; they never abort the request.
func BuildPacket(workingDir string, limits ScanLimits, enabled bool) string {
	if !enabled {
		return ""
	}

	scan, err := Scan(workingDir, limits)
	if err != nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Working directory: %s\n", workingDir)
	b.WriteString("\nProject structure:\n")
	for _, c := range scan.Candidates {
		fmt.Fprintf(&b, "  %s\n", c.RelPath)
	}

	for _, c := range scan.Candidates {
		if !ImportantNames[filepath.Base(c.RelPath)] {
			continue
		}
		content, readErr := os.ReadFile(c.Path)
		if readErr != nil {
			// Vanished or unreadable since the scan: leave it out.
			continue
		}
		if len(content) > limits.MaxFileBytes {
			continue
		}
		fmt.Fprintf(&b, "\n--- %s ---\n%s\n", c.RelPath, strings.TrimSpace(string(content)))
	}

	if len(scan.Candidates) < scan.TotalSeen {
		fmt.Fprintf(&b, "\n(Showing %d of %d total files)\n", len(scan.Candidates), scan.TotalSeen)
	}

	return b.String()
}
