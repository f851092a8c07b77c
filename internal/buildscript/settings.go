package buildscript

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultCppVersion is the C++ standard used when none is requested.
const DefaultCppVersion = "17"

// ErrInvalidCppVersion is returned for C++ standard values that are not plain
// decimal numbers.
var ErrInvalidCppVersion = errors.New("invalid version of C++ standard")

var cppVersionPattern = regexp.MustCompile(`^[0-9]+$`)

// Settings are the build options baked into the generated scripts. A Settings
// value is built once by NewSettings and never modified afterwards.
type Settings struct {
	cppVersion string
	buildDoc   bool
	pic        bool
	repoRoot   string
}

// NewSettings validates the options and returns an immutable Settings value.
func NewSettings(cppVersion string, buildDoc, pic bool, repoRoot string) (Settings, error) {
	cppVersion = strings.TrimSpace(cppVersion)
	if cppVersion == "" {
		cppVersion = DefaultCppVersion
	}
	if err := ValidateCppVersion(cppVersion); err != nil {
		return Settings{}, err
	}
	if strings.TrimSpace(repoRoot) == "" {
		return Settings{}, errors.New("repository root must be set")
	}
	root, err := filepath.Abs(repoRoot)
	if err != nil {
		return Settings{}, fmt.Errorf("resolve repository root: %w", err)
	}
	return Settings{cppVersion: cppVersion, buildDoc: buildDoc, pic: pic, repoRoot: root}, nil
}

// ValidateCppVersion accepts decimal C++ standard numbers such as 17 or 20.
func ValidateCppVersion(value string) error {
	if !cppVersionPattern.MatchString(value) {
		return fmt.Errorf("%w: %q", ErrInvalidCppVersion, value)
	}
	return nil
}

func (s Settings) CppVersion() string { return s.cppVersion }

func (s Settings) BuildDoc() bool { return s.buildDoc }

func (s Settings) PIC() bool { return s.pic }

func (s Settings) RepoRoot() string { return s.repoRoot }
