// Package deps reports whether the tools the generated build scripts invoke
// are installed.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement names an external program the generated scripts call.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Requirement
	Available bool
	Path      string
	Detail    string
}

// BuildRequirements lists the programs the build scripts need. Doxygen is
// only listed when the documentation build is enabled.
func BuildRequirements(buildDoc bool) []Requirement {
	reqs := []Requirement{
		{Name: "CMake", Command: "cmake", Description: "configures and builds YYCC"},
	}
	if buildDoc {
		reqs = append(reqs, Requirement{
			Name:        "Doxygen",
			Command:     "doxygen",
			Description: "renders the YYCC documentation",
			Optional:    true,
		})
	}
	return reqs
}

// CheckBinaries looks every requirement up on PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		req.Command = strings.TrimSpace(req.Command)
		status := Status{Requirement: req}
		if req.Command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(req.Command)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", req.Command)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}

// Missing returns the unavailable statuses that are not optional.
func Missing(statuses []Status) []Status {
	var out []Status
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			out = append(out, s)
		}
	}
	return out
}
