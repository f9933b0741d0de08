package shell

import (
	"fmt"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/quillcli/quill/internal/qerrors"
)

// minBashVersion is the oldest bash release with the nosort completion
// option.
const minBashVersion = "4.4.0"

var bashVersionRe = regexp.MustCompile(`\d+\.\d+\.\d+`)

// probeBashVersion asks the local bash for its version banner. The probe is
// advisory; any failure yields an empty string.
func probeBashVersion() string {
	out, err := exec.Command("bash", "--version").Output()
	if err != nil {
		return ""
	}
	return string(out)
}

// checkBashVersion rejects bash releases older than minBashVersion. Output
// that carries no parseable version passes, keeping the probe advisory.
func checkBashVersion(output string) error {
	match := bashVersionRe.FindString(output)
	if match == "" {
		return nil
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil
	}
	if v.LessThan(semver.MustParse(minBashVersion)) {
		return qerrors.NewShellVersionError("bash", fmt.Sprintf(
			"shell completion requires bash %s or newer, found %s", minBashVersion, match))
	}
	return nil
}
